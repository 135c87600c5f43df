// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Buffer is an owned block of interleaved samples in [-1,1].
type Buffer struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// Frames returns the number of frames held by the buffer.
func (b Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}

	return len(b.Samples) / b.Channels
}

// Validate checks that the buffer can be handed to a transform.
func (b Buffer) Validate() error {
	switch {
	case b.Channels <= 0:
		return ErrNoChannels
	case b.SampleRate <= 0:
		return ErrInvalidRate
	case len(b.Samples) == 0:
		return ErrEmptyBuffer
	case len(b.Samples)%b.Channels != 0:
		return ErrInvalidBuffer
	}

	return nil
}

// Deinterleave splits the buffer into one slice per channel.
func (b Buffer) Deinterleave() [][]float64 {
	frames := b.Frames()
	planes := make([][]float64, b.Channels)
	for c := range planes {
		planes[c] = make([]float64, frames)
	}

	for f := range frames {
		base := f * b.Channels
		for c := range b.Channels {
			planes[c][f] = b.Samples[base+c]
		}
	}

	return planes
}

// Interleave builds a Buffer from equally long channel planes.
func Interleave(planes [][]float64, sampleRate int) (Buffer, error) {
	if len(planes) == 0 {
		return Buffer{}, ErrNoChannels
	}

	frames := len(planes[0])
	for c, p := range planes {
		if len(p) != frames {
			return Buffer{}, fmt.Errorf("channel %d has %d frames, want %d: %w", c, len(p), frames, ErrInvalidBuffer)
		}
	}

	channels := len(planes)
	out := make([]float64, frames*channels)
	for f := range frames {
		base := f * channels
		for c := range channels {
			out[base+c] = planes[c][f]
		}
	}

	return Buffer{Samples: out, SampleRate: sampleRate, Channels: channels}, nil
}

const (
	// maxEmptyReads bounds consecutive (0, nil) reads, mirroring bufio.
	maxEmptyReads = 100
	// maxPreallocSamples caps the capacity ReadAll trusts a header for
	// (8 MiB of float64).
	maxPreallocSamples = 1 << 20
)

// ReadAll drains src into a single Buffer. The source is not closed.
// A source whose header does not declare an empty stream but which yields no
// whole frame fails with ErrNoFrames.
func ReadAll(src Source) (Buffer, error) {
	d := src.Descriptor()
	if d.Channels <= 0 {
		return Buffer{}, ErrNoChannels
	}

	chunk := src.BufSize()
	if chunk < d.Channels {
		chunk = 4096
	}
	// ReadSamples implementations expect whole frames
	chunk -= chunk % d.Channels

	var samples []float64
	if d.Frames > 0 {
		// Frames comes from the header and may be corrupt; append grows
		// past the cap when the stream really is that long
		hint := min(d.Frames, maxPreallocSamples/int64(d.Channels)) * int64(d.Channels)
		samples = make([]float64, 0, hint)
	}

	buf := make([]float32, chunk)
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			samples = append(samples, float64(buf[i]))
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Buffer{}, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return Buffer{}, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
		}
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%d.Channels]
	if len(samples) == 0 && d.Frames != 0 {
		// only a header that declares zero frames may yield nothing
		return Buffer{}, fmt.Errorf("%w: header declares %d frames", ErrNoFrames, d.Frames)
	}

	return Buffer{Samples: samples, SampleRate: d.SampleRate, Channels: d.Channels}, nil
}
