// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"
)

const (
	EngineSoxr  = "soxr"
	EngineCubic = "cubic"
)

// Engine converts one channel plane from srcRate to dstRate.
type Engine interface {
	Name() string
	Resample(in []float64, srcRate, dstRate int) ([]float64, error)
}

// NewEngine returns the engine registered under name.
func NewEngine(name string, quality Quality) (Engine, error) {
	switch name {
	case EngineSoxr, "":
		if _, err := quality.spec(); err != nil {
			return nil, err
		}
		return Soxr{Quality: quality}, nil
	case EngineCubic:
		return Cubic{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// OutputLength is the number of frames n input frames occupy at dstRate.
// Any non-empty input yields at least one frame.
func OutputLength(n, srcRate, dstRate int) int {
	if n <= 0 || srcRate <= 0 || dstRate <= 0 {
		return 0
	}

	out := int(math.Round(float64(n) * float64(dstRate) / float64(srcRate)))

	return max(out, 1)
}

// fit trims or zero-pads plane to exactly n samples.
func fit(plane []float64, n int) []float64 {
	if len(plane) >= n {
		return plane[:n]
	}

	out := make([]float64, n)
	copy(out, plane)

	return out
}
