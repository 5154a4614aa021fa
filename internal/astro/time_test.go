package astro

import (
	"math"
	"testing"
	"time"
)

func TestDaysSinceJ2000(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"epoch", J2000, 0},
		{"midnight before epoch", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), -0.5},
		{"one day later", time.Date(2000, 1, 2, 12, 0, 0, 0, time.UTC), 1},
		{"leap day 2000", time.Date(2000, 3, 1, 12, 0, 0, 0, time.UTC), 60},
		{"one Julian century", time.Date(2100, 1, 1, 12, 0, 0, 0, time.UTC), 36525},
		{"before epoch", time.Date(1999, 12, 31, 12, 0, 0, 0, time.UTC), -1},
		{"zone offset ignored", time.Date(2000, 1, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysSinceJ2000(tt.t)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("DaysSinceJ2000(%v) = %.9f, want %.9f", tt.t, got, tt.want)
			}
		})
	}
}

func TestTimeFromDaysRoundTrip(t *testing.T) {
	instants := []time.Time{
		J2000,
		time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC),
		time.Date(1987, 7, 14, 23, 59, 30, 0, time.UTC),
		time.Date(2049, 12, 31, 0, 0, 1, 0, time.UTC),
	}

	for _, want := range instants {
		got := TimeFromDays(DaysSinceJ2000(want))
		if d := got.Sub(want); d > time.Millisecond || d < -time.Millisecond {
			t.Errorf("roundtrip(%v) = %v (off by %v)", want, got, d)
		}
		if got.Location() != time.UTC {
			t.Errorf("TimeFromDays returned zone %v, want UTC", got.Location())
		}
	}
}

func TestCenturiesSinceJ2000(t *testing.T) {
	if got := CenturiesSinceJ2000(36525); got != 1 {
		t.Errorf("CenturiesSinceJ2000(36525) = %v, want 1", got)
	}
	if got := CenturiesSinceJ2000(-18262.5); got != -0.5 {
		t.Errorf("CenturiesSinceJ2000(-18262.5) = %v, want -0.5", got)
	}
}
