// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/ik5/spconv/audio"
	"github.com/ik5/spconv/resample"
)

// Config holds the settings of one normalizer run. It is built once and
// passed by value; nothing mutates it after Validate.
type Config struct {
	// Extensions is the allow-list of eligible file extensions, matched
	// case-sensitively and including the leading dot.
	Extensions []string `yaml:"extensions"`
	// Suffix is inserted before the extension of every output file and
	// appended to the name of a mirrored output directory.
	Suffix    string `yaml:"suffix"`
	Recursive bool   `yaml:"recursive"`
	// Sort orders discovered files by relative path.
	Sort    bool `yaml:"sort"`
	Workers int  `yaml:"workers"`

	Engine           string `yaml:"engine"`
	Quality          string `yaml:"quality"`
	ParallelChannels bool   `yaml:"parallel_channels"`

	Target audio.Target `yaml:"-"`
}

// Default returns the settings the tool runs with when nothing overrides
// them.
func Default() Config {
	return Config{
		Extensions: []string{".wav", ".flac", ".ogg", ".mp3"},
		Suffix:     "-SPC",
		Recursive:  true,
		Sort:       false,
		Workers:    1,
		Engine:     resample.EngineSoxr,
		Quality:    string(resample.QualityHigh),
		Target:     audio.CanonicalTarget(),
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty and then the SPCONV_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
	}

	cfg, err := cfg.WithEnv()
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithEnv returns a copy of c with the SPCONV_* environment variables
// applied.
func (c Config) WithEnv() (Config, error) {
	c.Extensions = envList("SPCONV_EXTENSIONS", c.Extensions)
	c.Suffix = envStr("SPCONV_SUFFIX", c.Suffix)
	c.Engine = envStr("SPCONV_ENGINE", c.Engine)
	c.Quality = envStr("SPCONV_QUALITY", c.Quality)

	var err error
	if c.Recursive, err = envBool("SPCONV_RECURSIVE", c.Recursive); err != nil {
		return Config{}, err
	}
	if c.Sort, err = envBool("SPCONV_SORT", c.Sort); err != nil {
		return Config{}, err
	}
	if c.ParallelChannels, err = envBool("SPCONV_PARALLEL_CHANNELS", c.ParallelChannels); err != nil {
		return Config{}, err
	}
	if c.Workers, err = envInt("SPCONV_WORKERS", c.Workers); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	if c.Suffix == "" || strings.ContainsAny(c.Suffix, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidSuffix, c.Suffix)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}

	if _, err := resample.NewEngine(c.Engine, resample.Quality(c.Quality)); err != nil {
		return err
	}

	if c.Target.SampleRate <= 0 || c.Target.Channels <= 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidTarget, c.Target)
	}

	return nil
}

// Allowed reports whether ext (with its dot) is on the allow-list.
func (c Config) Allowed(ext string) bool {
	return slices.Contains(c.Extensions, ext)
}

// NewEngine builds the resampling engine the config names.
func (c Config) NewEngine() (resample.Engine, error) {
	return resample.NewEngine(c.Engine, resample.Quality(c.Quality))
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, v)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, v)
	}
	return b, nil
}
