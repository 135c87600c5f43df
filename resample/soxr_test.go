// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"
	"testing"
)

var allQualities = []Quality{QualityQuick, QualityLow, QualityMedium, QualityHigh, QualityVeryHigh}

func argmaxAbs(s []float64) int {
	peak := 0
	for i, v := range s {
		if math.Abs(v) > math.Abs(s[peak]) {
			peak = i
		}
	}
	return peak
}

func TestSoxr_ImpulsePosition(t *testing.T) {
	t.Parallel()

	for _, q := range allQualities {
		for _, src := range []int{22050, 44100, 96000} {
			t.Run(fmt.Sprintf("%s/%d", q, src), func(t *testing.T) {
				t.Parallel()

				n := src / 10
				for _, at := range []int{n / 2, 3, n - 4} {
					in := make([]float64, n)
					in[at] = 1

					out, err := Soxr{Quality: q}.Resample(in, src, 48000)
					if err != nil {
						t.Fatalf("Resample() error = %v", err)
					}

					if want := OutputLength(n, src, 48000); len(out) != want {
						t.Fatalf("len = %d, want %d", len(out), want)
					}

					want := int(math.Round(float64(at) * 48000 / float64(src)))
					if got := argmaxAbs(out); got < want-2 || got > want+2 {
						t.Errorf("impulse at %d: peak at %d, want %d±2", at, got, want)
					}
				}
			})
		}
	}
}

func TestSoxr_KeepsEdges(t *testing.T) {
	t.Parallel()

	for _, q := range allQualities {
		t.Run(string(q), func(t *testing.T) {
			t.Parallel()

			const src = 22050
			n := src / 5 // 200 ms
			burst := src / 20
			in := make([]float64, n)
			// 50 ms of DC at both ends
			for i := range burst {
				in[i] = 0.5
				in[n-1-i] = 0.5
			}

			out, err := Soxr{Quality: q}.Resample(in, src, 48000)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}

			outBurst := OutputLength(burst, src, 48000) // 2400
			// skip the step response around each edge of the burst
			const settle = 200
			check := func(lo, hi int) {
				for i := lo; i < hi; i++ {
					if math.Abs(out[i]-0.5) > 0.05 {
						t.Fatalf("out[%d] = %.3f, want ≈0.5", i, out[i])
					}
				}
			}
			check(settle, outBurst-settle)
			check(len(out)-outBurst+settle, len(out)-settle)

			mid := len(out) / 2
			if math.Abs(out[mid]) > 0.05 {
				t.Errorf("out[%d] = %.3f in the silent middle", mid, out[mid])
			}
		})
	}
}

func TestSoxr_AlignmentIsCached(t *testing.T) {
	t.Parallel()

	s := Soxr{Quality: QualityMedium}
	spec, err := s.Quality.spec()
	if err != nil {
		t.Fatal(err)
	}

	first, err := s.shift(spec, 32000, 48000)
	if err != nil {
		t.Fatalf("shift() error = %v", err)
	}
	if _, ok := alignments.Load(alignKey{quality: spec.Preset, src: 32000, dst: 48000}); !ok {
		t.Fatal("shift() did not cache its measurement")
	}

	second, err := s.shift(spec, 32000, 48000)
	if err != nil || second != first {
		t.Errorf("cached shift = %v (err %v), want %v", second, err, first)
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	raw := []float64{1, 2, 3, 4}

	tests := []struct {
		start, n int
		want     []float64
	}{
		{1, 2, []float64{2, 3}},
		{-1, 3, []float64{0, 1, 2}},
		{3, 3, []float64{4, 0, 0}},
	}

	for _, tt := range tests {
		got := window(raw, tt.start, tt.n)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("window(%d, %d) = %v, want %v", tt.start, tt.n, got, tt.want)
				break
			}
		}
	}
}
