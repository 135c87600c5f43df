// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// chunkFrames bounds how many frames are handed to the encoder per Write.
const chunkFrames = 8192

// WritePCM16 writes interleaved int16 samples as a 16-bit PCM WAV file with
// the given rate and channel count. The encoder patches the RIFF and data
// sizes on completion, hence the io.WriteSeeker. w is not closed.
func WritePCM16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrMisalignedSamples, len(samples), channels)
	}

	enc := wav.NewEncoder(w, sampleRate, 16, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), chunkFrames*channels)),
		SourceBitDepth: 16,
	}

	step := chunkFrames * channels
	for i := 0; i < len(samples); i += step {
		end := min(i+step, len(samples))

		buf.Data = buf.Data[:0]
		for _, s := range samples[i:end] {
			buf.Data = append(buf.Data, int(s))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing pcm data: %w", err)
		}
	}

	if len(samples) == 0 {
		// still emit a header and an empty data chunk
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing pcm data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
