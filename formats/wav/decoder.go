// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/spconv/audio"
)

const (
	formatPCM        = 0x0001
	formatIEEEFloat  = 0x0003
	formatExtensible = 0xFFFE
)

// pcmReader is the part of wav.Decoder used after the header was parsed, to
// allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec    pcmReader
	desc   audio.Descriptor
	scale  float32
	offset int
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
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
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

	if s.desc.Format == audio.Float32 {
		for i := range n {
			dst[i] = math.Float32frombits(uint32(int32(s.intBuf.Data[i])))
		}
	} else {
		for i := range n {
			dst[i] = float32(s.intBuf.Data[i]-s.offset) / s.scale
		}
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

// Decoder reads RIFF/WAVE files holding integer PCM (8, 16, 24 or 32 bit) or
// 32-bit IEEE float samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	bitDepth := int(dec.BitDepth)
	format, err := sampleFormat(dec.WavAudioFormat, bitDepth)
	if err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	if dec.PCMLen() == 0 {
		streaming, err := streamingSize(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
		}
		if streaming {
			// go-audio rounds the odd size up to 0; the payload runs to EOF
			dec.PCMChunk.R = rs
		}
	}

	channels := int(dec.NumChans)
	frames := int64(-1)
	if blockAlign := int64(bitDepth/8) * int64(channels); blockAlign > 0 && dec.PCMLen() > 0 {
		frames = dec.PCMLen() / blockAlign
	}

	src := &source{
		dec: dec,
		desc: audio.Descriptor{
			SampleRate: int(dec.SampleRate),
			Channels:   channels,
			Frames:     frames,
			Format:     format,
			Container:  audio.WAV,
		},
		scale: float32(int64(1) << (bitDepth - 1)),
	}
	if bitDepth == 8 {
		// 8-bit WAV is unsigned
		src.offset = 128
	}

	return src, nil
}

// streamingSize reports whether the data chunk whose payload rs is positioned
// at carries the 0xFFFFFFFF size left by writers that never seek back.
func streamingSize(rs io.ReadSeeker) (bool, error) {
	if _, err := rs.Seek(-4, io.SeekCurrent); err != nil {
		return false, fmt.Errorf("seeking to data size: %w", err)
	}

	var size uint32
	if err := binary.Read(rs, binary.LittleEndian, &size); err != nil {
		return false, fmt.Errorf("reading data size: %w", err)
	}

	return size == math.MaxUint32, nil
}

func sampleFormat(wavFormat uint16, bitDepth int) (audio.SampleFormat, error) {
	switch wavFormat {
	case formatPCM, formatExtensible:
		f := audio.PCMFormat(bitDepth)
		if f == audio.FormatUnknown {
			return f, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
		}
		return f, nil
	case formatIEEEFloat:
		if bitDepth != 32 {
			return audio.FormatUnknown, fmt.Errorf("%w: %d bit float", ErrUnsupportedBitDepth, bitDepth)
		}
		return audio.Float32, nil
	default:
		return audio.FormatUnknown, fmt.Errorf("%w: format tag 0x%04x", ErrUnsupportedEncoding, wavFormat)
	}
}
