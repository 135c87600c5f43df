// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ik5/spconv/audio"
	"github.com/ik5/spconv/formats/detect"
	"github.com/ik5/spconv/formats/wav"
	"github.com/ik5/spconv/resample"
	"github.com/ik5/spconv/utils"
)

// Outcome is what Convert did with one file.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeConverted
	OutcomeCopied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeCopied:
		return "copied"
	default:
		return "failed"
	}
}

// Converter normalizes single files. It holds no per-file state and is safe
// for concurrent use.
type Converter struct {
	Registry    *audio.Registry
	Transformer *resample.Transformer
	Logger      *slog.Logger
}

func New(registry *audio.Registry, transformer *resample.Transformer, logger *slog.Logger) *Converter {
	return &Converter{
		Registry:    registry,
		Transformer: transformer,
		Logger:      logger,
	}
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Convert writes a normalized rendition of input to output. Files whose
// subformat is already 16-bit PCM are copied verbatim; everything else is
// decoded, resampled, folded to the target channel count and written as
// 16-bit PCM WAV, whatever the extension of output. Errors are *Error values.
func (c *Converter) Convert(ctx context.Context, input, output string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return OutcomeFailed, err
	}

	src, err := c.open(input)
	if err != nil {
		return OutcomeFailed, NewError(KindInputOpen, input, err)
	}
	defer src.Close()

	desc := src.Descriptor()
	log := c.logger().With(slog.String("input", input))
	log.Debug("decoded header",
		slog.Int("rate", desc.SampleRate),
		slog.Int("channels", desc.Channels),
		slog.Int64("frames", desc.Frames),
		slog.String("format", desc.Format.String()),
		slog.String("container", desc.Container.String()),
	)

	if audio.Classify(desc) == audio.AlreadyCanonicalSubformat {
		log.Debug("copying already canonical subformat", slog.String("output", output))

		if err := copyFile(input, output); err != nil {
			return OutcomeFailed, NewError(KindCopy, output, err)
		}
		return OutcomeCopied, nil
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		return OutcomeFailed, NewError(KindInputOpen, input, err)
	}

	if err := ctx.Err(); err != nil {
		return OutcomeFailed, err
	}

	out, err := c.Transformer.Transform(buf)
	if err != nil {
		return OutcomeFailed, NewError(KindTransform, input, err)
	}
	log.Debug("transformed",
		slog.Int("in_frames", buf.Frames()),
		slog.Int("out_frames", out.Frames()),
		slog.String("engine", engineName(c.Transformer)),
	)

	samples := utils.QuantizePCM16(out.Samples)
	err = writeAtomic(output, func(f *os.File) error {
		return wav.WritePCM16(f, out.SampleRate, out.Channels, samples)
	})
	if err != nil {
		return OutcomeFailed, NewError(KindOutputOpen, output, err)
	}

	return OutcomeConverted, nil
}

// open detects the container of path and decodes its header. The returned
// source owns the file handle.
func (c *Converter) open(path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	container, err := detect.Container(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}

	dec, ok := c.Registry.Get(container)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("%w: %s", audio.ErrUnknownContainer, container)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", container, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// fileSource closes the decoder and then the file beneath it.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	fErr := s.f.Close()
	if srcErr != nil {
		return srcErr
	}

	return fErr
}

func engineName(t *resample.Transformer) string {
	if t == nil || t.Engine == nil {
		return "none"
	}

	return t.Engine.Name()
}
