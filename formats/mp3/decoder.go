// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/spconv/audio"
)

// go-mp3 always yields 16-bit little-endian stereo
const (
	outChannels = 2
	frameBytes  = 2 * outChannels
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec  mp3Reader
	desc audio.Descriptor
	buf  []byte
}

func (s *source) Descriptor() audio.Descriptor { return s.desc }
func (s *source) Close() error                 { return nil }
func (s *source) BufSize() int                 { return cap(s.buf) / 2 } // samples, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	if err != nil {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, nil
}

// Decoder decodes MPEG-1/2 Layer III streams. Mono files come out as
// duplicated stereo, which is what go-mp3 produces.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	frames := int64(-1)
	if l := dec.Length(); l >= 0 {
		frames = l / frameBytes
	}

	return &source{
		dec: dec,
		desc: audio.Descriptor{
			SampleRate: dec.SampleRate(),
			Channels:   outChannels,
			Frames:     frames,
			Format:     audio.MPEG,
			Container:  audio.MP3,
		},
		buf: make([]byte, 8192),
	}
}
