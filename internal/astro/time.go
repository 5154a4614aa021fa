package astro

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the reference epoch 2000-01-01T12:00:00Z.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = base.JulianCentury

// DaysSinceJ2000 returns the signed, fractional number of days from J2000
// to t. UTC is used as the time scale; the difference to TT is ignored.
func DaysSinceJ2000(t time.Time) float64 {
	// julian.TimeToJD ignores the zone offset, so normalize first
	return julian.TimeToJD(t.UTC()) - base.J2000
}

// TimeFromDays converts a day offset from J2000 back to a UTC instant,
// rounded to the nearest millisecond.
func TimeFromDays(days float64) time.Time {
	return julian.JDToTime(base.J2000 + days).UTC().Round(time.Millisecond)
}

// CenturiesSinceJ2000 converts a day offset into Julian centuries.
func CenturiesSinceJ2000(days float64) float64 {
	return days / DaysPerCentury
}
