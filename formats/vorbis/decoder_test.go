// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/spconv/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	length       int64
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }
func (m *mockOggVorbisReader) Length() int64   { return m.length }

// Read mirrors oggvorbis: the count is in values, whole frames only.
func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.samples)-m.offset)
	n -= n % m.channels
	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not Ogg Vorbis data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotVorbisFile) {
				t.Errorf("Decode() error = %v, want ErrNotVorbisFile", err)
			}
		})
	}
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		length     int64
		wantFrames int64
		wantErr    error
	}{
		{"stereo known length", 2, 1000, 1000, nil},
		{"mono unknown length", 1, 0, -1, nil},
		{"six channels", 6, 48000, 48000, nil},
		{"no channels", 0, 10, 0, ErrNoChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: tt.channels, length: tt.length})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("newSource() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			d := src.Descriptor()
			if d.Channels != tt.channels || d.Frames != tt.wantFrames {
				t.Errorf("Descriptor() = %+v, want %d channels, %d frames", d, tt.channels, tt.wantFrames)
			}
			if d.Format != audio.Vorbis || d.Container != audio.OGG {
				t.Errorf("Descriptor() format/container = %v/%v, want vorbis/ogg", d.Format, d.Container)
			}
			if src.BufSize()%tt.channels != 0 {
				t.Errorf("BufSize() = %d, not a multiple of %d channels", src.BufSize(), tt.channels)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	src, err := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: testSamples})
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	for i := range n {
		if dst[i] != testSamples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}

	if _, err := src.ReadSamples(dst); !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end error = %v, want io.EOF", err)
	}
}

func TestSource_ReadSamples_PartialFrameBuffer(t *testing.T) {
	t.Parallel()

	src, err := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 3, samples: make([]float32, 30)})
	if err != nil {
		t.Fatal(err)
	}

	// 7 values fit two whole frames
	n, err := src.ReadSamples(make([]float32, 7))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}

	if n, _ := src.ReadSamples(make([]float32, 2)); n != 0 {
		t.Errorf("ReadSamples() with less than a frame n = %d, want 0", n)
	}
}

func TestSource_ReadAll_Channels(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{1, 2, 6} {
		samples := make([]float32, 5000*channels)
		for i := range samples {
			samples[i] = float32(i%channels) / 10
		}

		src, err := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: channels, samples: samples})
		if err != nil {
			t.Fatal(err)
		}

		buf, err := audio.ReadAll(src)
		if err != nil {
			t.Fatalf("%d channels: ReadAll() error = %v", channels, err)
		}

		if buf.Frames() != 5000 {
			t.Errorf("%d channels: Frames() = %d, want 5000", channels, buf.Frames())
		}

		for i, s := range buf.Samples {
			if want := float64(float32(i%channels) / 10); s != want {
				t.Fatalf("%d channels: sample %d = %v, want %v", channels, i, s, want)
			}
		}
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src, err := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, returnErrors: true})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := src.ReadSamples(make([]float32, 16)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	mock := &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: make([]float32, 4096)}
	src, err := newSource(mock)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		mock.offset = 0
		if _, err := src.ReadSamples(dst); err != nil {
			b.Fatal(err)
		}
	}
}
