// SPDX-License-Identifier: EPL-2.0

// Package audio holds the types shared by every stage of a conversion.
//
// A Decoder opens a container and returns a Source. The Source reports a
// Descriptor (sample rate, channels, frame count, sample format, container)
// and yields interleaved float32 samples in [-1,1]:
//
//	registry := audio.NewRegistry()
//	registry.Register(audio.WAV, wav.Decoder{})
//	dec, _ := registry.Get(audio.WAV)
//	src, err := dec.Decode(f)
//
// # Classification
//
// Classify looks at the sample format only. A 16-bit PCM stream is
// AlreadyCanonicalSubformat whatever its rate or channel count, and is copied
// byte for byte by the converter. Everything else, MP3 and Vorbis included,
// RequiresTransform.
//
// # Buffers
//
// ReadAll drains a Source into a Buffer of float64 samples. Deinterleave and
// Interleave convert between the interleaved layout and per-channel planes,
// and FoldChannels maps planes onto the target channel count.
//
// Sources return io.EOF once exhausted, possibly together with the last
// samples.
package audio
