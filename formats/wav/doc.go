// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 and 32 bits (including the
// WAVE_FORMAT_EXTENSIBLE tag) and 32-bit IEEE float. The returned source
// reports the stored subformat in its Descriptor, so a 16-bit file is
// recognised as already canonical by audio.Classify:
//
//	f, _ := os.Open("input.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, wav.ErrNotWavFile) etc.
//	}
//	fmt.Println(src.Descriptor().Format) // pcm24
//
// Samples are delivered as float32 in [-1.0, 1.0]. Readers that cannot seek
// are buffered in memory first.
//
// # Encoding
//
// WritePCM16 writes interleaved int16 samples for any rate and channel count.
// It needs an io.WriteSeeker because the header sizes are patched once all
// data is written:
//
//	f, _ := os.Create("output.wav")
//	err := wav.WritePCM16(f, 48000, 2, samples)
package wav
