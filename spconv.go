// SPDX-License-Identifier: EPL-2.0

package spconv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ik5/spconv/audio"
	"github.com/ik5/spconv/batch"
	"github.com/ik5/spconv/config"
	"github.com/ik5/spconv/converter"
	"github.com/ik5/spconv/formats/aiff"
	"github.com/ik5/spconv/formats/flac"
	"github.com/ik5/spconv/formats/mp3"
	"github.com/ik5/spconv/formats/vorbis"
	"github.com/ik5/spconv/formats/wav"
	"github.com/ik5/spconv/resample"
	"github.com/ik5/spconv/utils"
)

// DefaultRegistry returns a registry holding every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(audio.WAV, wav.Decoder{})
	reg.Register(audio.FLAC, flac.Decoder{})
	reg.Register(audio.OGG, vorbis.Decoder{})
	reg.Register(audio.MP3, mp3.Decoder{})
	reg.Register(audio.AIFF, aiff.Decoder{})

	return reg
}

// NewTransformer builds the sample transform selected by cfg.
func NewTransformer(cfg config.Config) (*resample.Transformer, error) {
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}

	t := resample.NewTransformer(engine, cfg.Target)
	t.Parallel = cfg.ParallelChannels

	return t, nil
}

// NewConverter wires the default registry and the transform selected by cfg
// into a file converter.
func NewConverter(cfg config.Config, logger *slog.Logger) (*converter.Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t, err := NewTransformer(cfg)
	if err != nil {
		return nil, err
	}

	return converter.New(DefaultRegistry(), t, logger), nil
}

// Normalize converts the file or directory tree at root. Per-file failures
// are in the report; the error is only set when root cannot be processed at
// all.
func Normalize(ctx context.Context, root string, cfg config.Config, reporter batch.Reporter, logger *slog.Logger) (batch.Report, error) {
	conv, err := NewConverter(cfg, logger)
	if err != nil {
		return batch.Report{}, err
	}

	return batch.NewRunner(conv, reporter, cfg.Workers, logger).Run(ctx, root, cfg)
}

// ResampleTo16 drains src, runs it through t and returns the result as
// interleaved 16-bit PCM along with its sample rate. The source is not
// closed.
//
//	src, _ := wav.Decoder{}.Decode(f)
//	pcm, rate, err := spconv.ResampleTo16(src, t)
func ResampleTo16(src audio.Source, t *resample.Transformer) ([]int16, int, error) {
	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, 0, fmt.Errorf("reading source: %w", err)
	}

	out, err := t.Transform(buf)
	if err != nil {
		return nil, 0, fmt.Errorf("transforming: %w", err)
	}

	return utils.QuantizePCM16(out.Samples), out.SampleRate, nil
}
