package astro

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 1.5, 1.5},
		{"full turn", TwoPi, 0},
		{"negative", -math.Pi / 2, 3 * math.Pi / 2},
		{"several turns", 5*TwoPi + 0.25, 0.25},
		{"several negative turns", -3*TwoPi - 0.25, TwoPi - 0.25},
		{"tiny negative", -1e-20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if got < 0 || got >= TwoPi {
				t.Fatalf("NormalizeAngle(%v) = %v, outside [0, 2π)", tt.in, got)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-4.55343205, 355.44656795},
		{720, 0},
		{359.5, 359.5},
	}

	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 30, 90, 180, 270, 359.999} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-12 {
			t.Errorf("roundtrip(%v) = %v", deg, got)
		}
	}
	if DegToRad(180) != math.Pi {
		t.Errorf("DegToRad(180) = %v, want π", DegToRad(180))
	}
}
