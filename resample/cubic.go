// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"github.com/ik5/spconv/utils"
)

// Cubic resamples with Catmull-Rom interpolation over four neighbouring
// samples. When downsampling, input first passes a one-pole low-pass filter
// as basic anti-aliasing.
type Cubic struct{}

// Name implements Engine.
func (Cubic) Name() string { return EngineCubic }

// Resample implements Engine.
func (Cubic) Resample(in []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}

	// how many source samples per output sample
	ratio := float64(srcRate) / float64(dstRate)

	src := in
	if ratio > 1.0 {
		src = lowPass(in, 0.5)
	}

	n := OutputLength(len(in), srcRate, dstRate)
	out := make([]float64, n)

	at := func(i int) float64 {
		// duplicate edge frames outside the signal
		if i < 0 {
			return src[0]
		}
		if i >= len(src) {
			return src[len(src)-1]
		}
		return src[i]
	}

	for i := range n {
		pos := float64(i) * ratio
		idx := int(pos)
		alpha := pos - float64(idx)

		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), alpha)
	}

	return out, nil
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with the first
// sample to avoid a warm-up transient.
func lowPass(in []float64, alpha float64) []float64 {
	out := make([]float64, len(in))
	state := in[0]
	for i, x := range in {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}
