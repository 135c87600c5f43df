// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16384}, // 16383.5 rounds away from zero
		{name: "half negative", input: -0.5, want: -16384},
		{name: "quarter positive", input: 0.25, want: 8192},
		{name: "small positive", input: 0.001, want: 33},
		{name: "small negative", input: -0.001, want: -33},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float64ToInt16(tt.input); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat64ToInt16Symmetry tests that conversion is symmetric
func TestFloat64ToInt16Symmetry(t *testing.T) {
	t.Parallel()

	for _, val := range []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0} {
		pos := Float64ToInt16(val)
		neg := Float64ToInt16(-val)

		if pos != -neg {
			t.Errorf("Float64ToInt16 not symmetric: +%v=%v, -%v=%v", val, pos, val, neg)
		}
	}
}

// TestFloat64ToInt16Monotonic tests that function is monotonic
func TestFloat64ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float64ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float64ToInt16(f)
		if curr < prev {
			t.Errorf("Float64ToInt16 not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestQuantizePCM16(t *testing.T) {
	t.Parallel()

	got := QuantizePCM16([]float64{0, 1, -1, 2, 0.5})
	want := []int16{0, math.MaxInt16, -math.MaxInt16, math.MaxInt16, 16384}

	if len(got) != len(want) {
		t.Fatalf("QuantizePCM16() len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("QuantizePCM16()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// BenchmarkQuantizePCM16 simulates converting one second of stereo 48kHz audio
func BenchmarkQuantizePCM16(b *testing.B) {
	samples := make([]float64, 96000)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.01)
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = QuantizePCM16(samples)
	}
}
