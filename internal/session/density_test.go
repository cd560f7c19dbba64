package session

import (
	"math"
	"testing"
)

func TestClampDensity(t *testing.T) {
	tests := []struct {
		in   float64
		want Density
	}{
		{1.0, 1.0},
		{0.2, 0.2},
		{2.5, 2.5},
		{0.0, 0.2},
		{-3, 0.2},
		{9.9, 2.5},
		{math.Inf(1), 2.5},
		{math.Inf(-1), 0.2},
		{1.04, 1.0},
		{1.06, 1.1},
		{0.26, 0.3},
		{2.46, 2.5},
		{0.1 + 0.2, 0.3},
	}
	for _, tt := range tests {
		got, ok := ClampDensity(tt.in)
		if !ok {
			t.Errorf("ClampDensity(%v) rejected", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("ClampDensity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampDensityRejectsNaN(t *testing.T) {
	if _, ok := ClampDensity(math.NaN()); ok {
		t.Error("NaN should be rejected")
	}
}

func TestClampDensityIsOnGrid(t *testing.T) {
	for v := -1.0; v < 3.0; v += 0.037 {
		d, _ := ClampDensity(v)
		if d < MinDensity || d > MaxDensity {
			t.Fatalf("ClampDensity(%v) = %v out of range", v, d)
		}
		steps := float64(d) * 10
		if math.Abs(steps-math.Round(steps)) > 1e-9 {
			t.Fatalf("ClampDensity(%v) = %v not on a 0.1 step", v, d)
		}
	}
}

func TestFraction(t *testing.T) {
	if MinDensity.Fraction() != 0 {
		t.Errorf("expected 0 at min, got %v", MinDensity.Fraction())
	}
	if math.Abs(MaxDensity.Fraction()-1) > 1e-9 {
		t.Errorf("expected 1 at max, got %v", MaxDensity.Fraction())
	}
}
