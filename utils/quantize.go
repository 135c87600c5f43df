// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM, rounding to
// the nearest step.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for both signs keeps the scale symmetric and avoids overflow
	return int16(math.Round(x * math.MaxInt16))
}

// QuantizePCM16 converts a whole interleaved float buffer to int16 PCM.
func QuantizePCM16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = Float64ToInt16(s)
	}

	return out
}
