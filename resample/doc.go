// SPDX-License-Identifier: EPL-2.0

// Package resample converts in-memory sample buffers to a target rate and
// channel count.
//
// A Transformer deinterleaves the buffer, hands every channel to an Engine on
// its own, trims or pads each result to the exact expected frame count, folds
// the channels to the target layout and interleaves again:
//
//	engine, _ := resample.NewEngine(resample.EngineSoxr, resample.QualityHigh)
//	t := resample.NewTransformer(engine, audio.CanonicalTarget())
//	out, err := t.Transform(buf)
//
// Two engines are available:
//   - Soxr: polyphase FIR filtering via github.com/tphakala/go-audio-resampling
//   - Cubic: Catmull-Rom interpolation with a one-pole anti-alias filter
//
// Buffers already at the target rate skip the engine and are passed through
// bit-exact.
package resample
