// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/spconv/audio"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface.
type MockSource struct {
	desc      audio.Descriptor
	generated int // Frames generated so far
	waveform  func(sample int, channel int) float32
	closed    bool
	failAfter int // Frames after which ReadSamples fails; 0 disables
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		desc: audio.Descriptor{
			SampleRate: sampleRate,
			Channels:   channels,
			Frames:     int64(totalSamples),
			Format:     audio.Float32,
			Container:  audio.WAV,
		},
		waveform: waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(Sine(sample, sampleRate, frequency))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// Sine returns sample i of a unit sine at frequency Hz.
func Sine(i, sampleRate int, frequency float64) float64 {
	t := float64(i) / float64(sampleRate)
	return math.Sin(2 * math.Pi * frequency * t)
}

// WithFormat overrides the reported sample format.
func (m *MockSource) WithFormat(f audio.SampleFormat) *MockSource {
	m.desc.Format = f
	return m
}

// FailAfter makes ReadSamples return io.ErrUnexpectedEOF once frames frames
// were produced.
func (m *MockSource) FailAfter(frames int) *MockSource {
	m.failAfter = frames
	return m
}

func (m *MockSource) Descriptor() audio.Descriptor { return m.desc }
func (m *MockSource) BufSize() int                 { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	total := int(m.desc.Frames)
	if m.failAfter > 0 && m.generated >= m.failAfter {
		return 0, io.ErrUnexpectedEOF
	}
	if m.generated >= total {
		return 0, io.EOF
	}

	channels := m.desc.Channels
	framesToWrite := min(len(dst)/channels, total-m.generated)
	if m.failAfter > 0 {
		framesToWrite = min(framesToWrite, m.failAfter-m.generated)
	}

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range channels {
			dst[frame*channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * channels

	if m.generated >= total {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
