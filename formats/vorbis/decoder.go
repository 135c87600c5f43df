// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/spconv/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	desc     audio.Descriptor
	frameBuf []float32
}

func (s *source) Descriptor() audio.Descriptor { return s.desc }
func (s *source) Close() error                 { return nil }
func (s *source) BufSize() int                 { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	channels := s.desc.Channels
	want := len(dst) - len(dst)%channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	// oggvorbis counts interleaved values, always whole frames
	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}

	copy(dst, s.frameBuf[:n])

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

// Decoder decodes Ogg Vorbis streams with any channel count.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec)
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() <= 0 {
		return nil, ErrNoChannels
	}

	frames := int64(-1)
	if l := dec.Length(); l > 0 {
		frames = l
	}

	return &source{
		dec: dec,
		desc: audio.Descriptor{
			SampleRate: dec.SampleRate(),
			Channels:   dec.Channels(),
			Frames:     frames,
			Format:     audio.Vorbis,
			Container:  audio.OGG,
		},
		frameBuf: make([]float32, 4096-4096%dec.Channels()),
	}, nil
}
