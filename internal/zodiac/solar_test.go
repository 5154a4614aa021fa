package zodiac

import (
	"math"
	"testing"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/litescript/ls-orbitor/internal/orbit"
)

// precessionDegPerCentury is the general precession in longitude.
const precessionDegPerCentury = 5029.0966 / 3600

// TestSunAgainstMeeus checks the Kepler Sun against Meeus' solar theory.
// Meeus works in the equinox of date, so precession is taken out before
// comparing with the fixed J2000 ecliptic.
func TestSunAgainstMeeus(t *testing.T) {
	eng := orbit.NewEngine(orbit.DefaultConfig())

	for _, days := range []float64{-3652.5, -365, -180, 0, 45, 91, 137, 182, 228, 273, 319, 365, 730, 3652.5} {
		obs, err := Observe(eng, orbit.Sun, days)
		if err != nil {
			t.Fatalf("day %v: %v", days, err)
		}

		T := base.J2000Century(base.J2000 + days)
		trueLon, _ := solar.True(T)
		want := math.Mod(trueLon.Deg()-precessionDegPerCentury*T, 360)
		if want < 0 {
			want += 360
		}

		diff := math.Mod(obs.Degrees()-want+540, 360) - 180
		if math.Abs(diff) > 0.01 {
			t.Errorf("day %v: Sun at %.4f°, Meeus %.4f° (diff %.4f°)", days, obs.Degrees(), want, diff)
		}
	}
}
