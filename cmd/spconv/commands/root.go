// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/spconv"
	"github.com/ik5/spconv/config"
)

// ErrFilesFailed is returned in strict mode when at least one file failed.
var ErrFilesFailed = errors.New("some files failed to convert")

type options struct {
	configPath string
	recursive  bool
	workers    int
	engine     string
	quality    string
	suffix     string
	sort       bool
	verbose    bool
	strict     bool
}

// Execute runs the root command.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "spconv [flags] <path>",
		Short: "Normalize audio files to 48 kHz stereo 16-bit PCM WAV",
		Long: `spconv - normalize audio to 48000 Hz, 2 channels, 16-bit PCM, WAV.

A single file is converted next to itself:
  song.mp3     -> song-SPC.mp3
A directory is mirrored into a sibling tree:
  X/a.wav      -> X-SPC/a-SPC.wav
  X/sub/b.flac -> X-SPC/sub/b-SPC.flac

Files that are already 16-bit PCM are copied unchanged. Converted files
always contain WAV data, whatever their extension.

Settings come from the defaults, then --config (YAML), then SPCONV_*
environment variables, then flags.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.BoolVarP(&opts.recursive, "recursive", "r", true, "descend into subdirectories")
	flags.IntVarP(&opts.workers, "workers", "w", 1, "files converted at once")
	flags.StringVar(&opts.engine, "engine", "", "resampler engine (soxr, cubic)")
	flags.StringVar(&opts.quality, "quality", "", "soxr quality (quick, low, medium, high, veryhigh)")
	flags.StringVar(&opts.suffix, "suffix", "", "suffix inserted before each output extension")
	flags.BoolVar(&opts.sort, "sort", false, "convert files in path order")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.strict, "strict", false, "exit non-zero when any file fails")

	return cmd
}

func run(cmd *cobra.Command, opts *options, root string) error {
	start := time.Now()
	out := cmd.OutOrStdout()

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	slog.SetDefault(logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = applyFlags(cmd, opts, cfg)

	report, err := spconv.Normalize(cmd.Context(), root, cfg, newConsoleReporter(out), logger)
	if err != nil {
		return err
	}

	if report.Canceled > 0 {
		fmt.Fprintf(out, "Interrupted: %d files not converted\n", report.Canceled)
	}
	fmt.Fprintf(out, "Execution Time: %d microseconds\n", time.Since(start).Microseconds())

	logger.Debug("batch finished",
		slog.Int("converted", report.Converted),
		slog.Int("copied", report.Copied),
		slog.Int("failed", report.Failed),
		slog.Int("canceled", report.Canceled),
	)

	if opts.strict && (report.Failed > 0 || report.Canceled > 0) {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, report.Failed+report.Canceled, len(report.Results))
	}

	return nil
}

// applyFlags overlays the flags given on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg config.Config) config.Config {
	flags := cmd.Flags()

	if flags.Changed("recursive") {
		cfg.Recursive = opts.recursive
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("engine") {
		cfg.Engine = opts.engine
	}
	if flags.Changed("quality") {
		cfg.Quality = opts.quality
	}
	if flags.Changed("suffix") {
		cfg.Suffix = opts.suffix
	}
	if flags.Changed("sort") {
		cfg.Sort = opts.sort
	}

	return cfg
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
