// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"
	"sync"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Quality selects the filter preset of the Soxr engine.
type Quality string

const (
	QualityQuick    Quality = "quick"
	QualityLow      Quality = "low"
	QualityMedium   Quality = "medium"
	QualityHigh     Quality = "high"
	QualityVeryHigh Quality = "veryhigh"
)

func (q Quality) spec() (resampling.QualitySpec, error) {
	switch q {
	case QualityQuick:
		return resampling.QualitySpec{Preset: resampling.QualityQuick}, nil
	case QualityLow:
		return resampling.QualitySpec{Preset: resampling.QualityLow}, nil
	case QualityMedium:
		return resampling.QualitySpec{Preset: resampling.QualityMedium}, nil
	case QualityHigh, "":
		return resampling.QualitySpec{Preset: resampling.QualityHigh}, nil
	case QualityVeryHigh:
		return resampling.QualitySpec{Preset: resampling.QualityVeryHigh}, nil
	default:
		return resampling.QualitySpec{}, fmt.Errorf("%w: %q", ErrUnknownQuality, q)
	}
}

// Soxr is a polyphase FIR resampler built on the pure Go port of libsoxr.
// Each call runs a fresh single-channel resampler, so one Soxr value can be
// shared by concurrent channel workers.
//
// The library drops part of the filter warm-up at the start of a stream and
// loses samples still queued between stages at flush. Resample therefore
// surrounds the input with silence and cuts the output window where the
// input actually lands, as measured once per preset and rate pair by
// passing an impulse through the same pipeline.
type Soxr struct {
	Quality Quality
}

// Name implements Engine.
func (Soxr) Name() string { return EngineSoxr }

// Resample implements Engine.
func (s Soxr) Resample(in []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}

	quality, err := s.Quality.spec()
	if err != nil {
		return nil, err
	}

	shift, err := s.shift(quality, srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	r, err := newResampler(quality, srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	pad := padLength(r, srcRate)
	padded := make([]float64, pad+len(in)+pad)
	copy(padded[pad:], in)

	raw, err := drain(r, padded)
	if err != nil {
		return nil, err
	}

	ratio := float64(dstRate) / float64(srcRate)
	start := int(math.Round(float64(pad)*ratio + shift))

	return window(raw, start, OutputLength(len(in), srcRate, dstRate)), nil
}

type alignKey struct {
	quality resampling.QualityPreset
	src     int
	dst     int
}

// alignments caches the measured output offset, in output samples, of each
// preset and rate pair.
var alignments sync.Map

// impulseAt is where the calibration impulse sits after the leading pad.
const impulseAt = 64

// shift reports how far the pipeline places an input sample from its ideal
// output position dst/src times its index.
func (s Soxr) shift(quality resampling.QualitySpec, srcRate, dstRate int) (float64, error) {
	key := alignKey{quality: quality.Preset, src: srcRate, dst: dstRate}
	if v, ok := alignments.Load(key); ok {
		return v.(float64), nil
	}

	r, err := newResampler(quality, srcRate, dstRate)
	if err != nil {
		return 0, err
	}

	pad := padLength(r, srcRate)
	in := make([]float64, pad+2*impulseAt+pad)
	in[pad+impulseAt] = 1

	raw, err := drain(r, in)
	if err != nil {
		return 0, err
	}

	peak := 0
	for i, v := range raw {
		if math.Abs(v) > math.Abs(raw[peak]) {
			peak = i
		}
	}

	ratio := float64(dstRate) / float64(srcRate)
	shift := float64(peak) - float64(pad+impulseAt)*ratio
	alignments.Store(key, shift)

	return shift, nil
}

func newResampler(quality resampling.QualitySpec, srcRate, dstRate int) (resampling.Resampler, error) {
	r, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    quality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	return r, nil
}

// padLength is the silence placed on each side of the input: 100 ms plus
// twice the reported filter latency.
func padLength(r resampling.Resampler, srcRate int) int {
	return srcRate/10 + 2*max(r.GetLatency(), 0)
}

func drain(r resampling.Resampler, in []float64) ([]float64, error) {
	out, err := r.Process(in)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}

	tail, err := r.Flush()
	if err != nil {
		return nil, fmt.Errorf("resample flush error: %w", err)
	}

	return append(out, tail...), nil
}

// window returns raw[start:start+n], zero-filling whatever lies outside raw.
func window(raw []float64, start, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if j := start + i; j >= 0 && j < len(raw) {
			out[i] = raw[j]
		}
	}

	return out
}
