// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// SineFrames builds interleaved frames where channel c carries a sine at
// freqs[c].
func SineFrames(sampleRate, frames int, freqs ...float64) []float64 {
	out := make([]float64, frames*len(freqs))
	for f := range frames {
		for c, hz := range freqs {
			out[f*len(freqs)+c] = 0.5 * Sine(f, sampleRate, hz)
		}
	}

	return out
}

// WriteWAV writes interleaved samples in [-1,1] as an integer PCM WAV file of
// the given bit depth (8, 16, 24 or 32). Parent directories are created.
func WriteWAV(t testing.TB, path string, sampleRate, channels, bitDepth int, samples []float64) {
	t.Helper()

	scale := float64(int(1)<<(bitDepth-1) - 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		v := int(math.Round(s * scale))
		if bitDepth == 8 {
			// 8-bit WAV is unsigned
			v += 128
		}
		data[i] = v
	}

	writeWAV(t, path, sampleRate, channels, bitDepth, wavFormatPCM, data)
}

// WriteFloatWAV writes interleaved samples as a 32-bit IEEE float WAV file.
func WriteFloatWAV(t testing.TB, path string, sampleRate, channels int, samples []float64) {
	t.Helper()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(int32(math.Float32bits(float32(s))))
	}

	writeWAV(t, path, sampleRate, channels, 32, wavFormatFloat, data)
}

func writeWAV(t testing.TB, path string, sampleRate, channels, bitDepth, format int, data []int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating fixture dir: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, format)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing fixture samples: %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("closing fixture encoder: %v", err)
	}
}

// WriteFile writes raw bytes, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating fixture dir: %v", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

// FLACHeader returns a FLAC stream holding only a STREAMINFO block that
// claims the given layout and sample count, with no audio frames after it.
func FLACHeader(sampleRate, channels, bitDepth int, samples uint64) []byte {
	out := []byte("fLaC")
	// last metadata block, type STREAMINFO, 34 bytes
	out = append(out, 0x80, 0, 0, 34)
	// min and max block size 4096, frame sizes unknown
	out = append(out, 0x10, 0x00, 0x10, 0x00, 0, 0, 0, 0, 0, 0)

	packed := uint64(sampleRate)<<44 |
		uint64(channels-1)<<41 |
		uint64(bitDepth-1)<<36 |
		samples&(1<<36-1)
	out = binary.BigEndian.AppendUint64(out, packed)

	// MD5 unknown
	return append(out, make([]byte, 16)...)
}
