// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"errors"
	"testing"
)

func TestOutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, src, dst int
		want        int
	}{
		{44100, 44100, 48000, 48000},
		{1001, 22050, 48000, 2179},
		{48000, 96000, 48000, 24000},
		{3, 96000, 8000, 1},
		{1, 8000, 48000, 6},
		{0, 44100, 48000, 0},
		{100, 0, 48000, 0},
		{100, 44100, -1, 0},
	}

	for _, tt := range tests {
		if got := OutputLength(tt.n, tt.src, tt.dst); got != tt.want {
			t.Errorf("OutputLength(%d, %d, %d) = %d, want %d", tt.n, tt.src, tt.dst, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2, 3}

	if got := fit(in, 2); len(got) != 2 || got[1] != 2 {
		t.Errorf("fit() trim = %v, want [1 2]", got)
	}

	got := fit(in, 5)
	want := []float64{1, 2, 3, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("fit() pad length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fit() pad [%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		engine   string
		quality  Quality
		wantName string
		wantErr  error
	}{
		{"default", "", "", EngineSoxr, nil},
		{"soxr high", EngineSoxr, QualityHigh, EngineSoxr, nil},
		{"soxr veryhigh", EngineSoxr, QualityVeryHigh, EngineSoxr, nil},
		{"soxr quick", EngineSoxr, QualityQuick, EngineSoxr, nil},
		{"cubic", EngineCubic, "", EngineCubic, nil},
		{"cubic ignores quality", EngineCubic, "bogus", EngineCubic, nil},
		{"bad quality", EngineSoxr, "ultra", "", ErrUnknownQuality},
		{"bad engine", "linear", QualityHigh, "", ErrUnknownEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := NewEngine(tt.engine, tt.quality)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewEngine() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if e.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", e.Name(), tt.wantName)
			}
		})
	}
}

func TestEngines_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, e := range []Engine{Soxr{Quality: QualityLow}, Cubic{}} {
		if _, err := e.Resample(nil, 44100, 48000); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("%s: Resample(nil) error = %v, want ErrEmptyInput", e.Name(), err)
		}
		if _, err := e.Resample([]float64{1}, 0, 48000); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("%s: Resample(rate 0) error = %v, want ErrInvalidRate", e.Name(), err)
		}
	}
}
