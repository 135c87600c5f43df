// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/spconv/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec    aiffReader
	desc   audio.Descriptor
	scale  float32
	intBuf *goaudio.IntBuffer
}

func (s *source) Descriptor() audio.Descriptor { return s.desc }
func (s *source) Close() error                 { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	// AIFF samples are signed at every depth
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / s.scale
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	// short read without error means the sound chunk is exhausted
	if n < len(dst) {
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads uncompressed AIFF files with 8, 16, 24 or 32 bit samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	sampleFormat := audio.PCMFormat(bitDepth)
	if sampleFormat == audio.FormatUnknown {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec: dec,
		desc: audio.Descriptor{
			SampleRate: format.SampleRate,
			Channels:   format.NumChannels,
			Frames:     -1,
			Format:     sampleFormat,
			Container:  audio.AIFF,
		},
		scale: float32(int64(1) << (bitDepth - 1)),
	}, nil
}
