// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/spconv/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// flacReader is the part of flac.Stream used by source, to allow testing
type flacReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream  flacReader
	desc    audio.Descriptor
	scale   float32
	pending []int32 // interleaved samples of the current frame
	pos     int
}

func (s *source) Descriptor() audio.Descriptor { return s.desc }
func (s *source) BufSize() int                 { return 4096 - 4096%s.desc.Channels }
func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("closing flac stream: %w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) {
		if s.pos >= len(s.pending) {
			if err := s.nextFrame(); err != nil {
				if n > 0 && errors.Is(err, io.EOF) {
					return n, nil
				}
				return n, err
			}
			continue
		}

		c := min(len(dst)-n, len(s.pending)-s.pos)
		for i := range c {
			dst[n+i] = float32(s.pending[s.pos+i]) / s.scale
		}
		n += c
		s.pos += c
	}

	return n, nil
}

// nextFrame decodes one FLAC frame and interleaves its subframes.
func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}

	channels := len(f.Subframes)
	if channels != s.desc.Channels {
		return fmt.Errorf("%w: frame has %d channels, stream %d", ErrCorruptFrame, channels, s.desc.Channels)
	}

	blockSize := int(f.BlockSize)
	if cap(s.pending) < blockSize*channels {
		s.pending = make([]int32, blockSize*channels)
	}
	s.pending = s.pending[:blockSize*channels]

	for c, sub := range f.Subframes {
		for i := range min(blockSize, len(sub.Samples)) {
			s.pending[i*channels+c] = sub.Samples[i]
		}
	}
	s.pos = 0

	return nil
}

// Decoder decodes FLAC streams of any bit depth and channel count.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.BitsPerSample == 0 {
		stream.Close()
		return nil, ErrInvalidStreamInfo
	}

	bitDepth := int(info.BitsPerSample)
	frames := int64(-1)
	if info.NSamples > 0 {
		// NSamples counts inter-channel samples, i.e. frames
		frames = int64(info.NSamples)
	}

	return &source{
		stream: stream,
		desc: audio.Descriptor{
			SampleRate: int(info.SampleRate),
			Channels:   int(info.NChannels),
			Frames:     frames,
			Format:     audio.PCMFormat(bitDepth),
			Container:  audio.FLAC,
		},
		scale: float32(int64(1) << (bitDepth - 1)),
	}, nil
}
