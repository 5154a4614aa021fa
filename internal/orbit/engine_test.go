package orbit

import (
	"math"
	"testing"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/errors"
)

func assertVec(t *testing.T, label string, got, want astro.Vec3, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol || math.Abs(got.Z-want.Z) > tol {
		t.Errorf("%s = (%.12f, %.12f, %.12g), want (%.12f, %.12f, %.12g)",
			label, got.X, got.Y, got.Z, want.X, want.Y, want.Z)
	}
}

func TestHeliocentricGolden(t *testing.T) {
	eng := NewEngine(DefaultConfig())

	tests := []struct {
		body Body
		days float64
		want astro.Vec3
	}{
		{Earth, 0, astro.Vec3{X: -0.17717124910462473, Y: 0.9672144849669474, Z: -2.58449294189565e-07}},
		{Earth, 3652.5, astro.Vec3{X: -0.1760596047586583, Y: 0.9674237543960518, Z: -2.211862454714939e-05}},
		{Earth, -36525, astro.Vec3{X: -0.18827609261234268, Y: 0.9650537387211287, Z: 0.00021780779113635726}},
		{Mars, 0, astro.Vec3{X: 1.3906677476780218, Y: -0.013391064158331467, Z: -0.034461259223305805}},
		{Jupiter, 0, astro.Vec3{X: 3.9983209397841497, Y: 2.945710911068505, Z: -0.10171781461585178}},
		{Neptune, 0, astro.Vec3{X: 16.804762811918863, Y: -24.992709860239795, Z: 0.12740321008663316}},
	}

	for _, tt := range tests {
		pos, err := eng.Heliocentric(tt.body, tt.days)
		if err != nil {
			t.Fatalf("Heliocentric(%v, %v): %v", tt.body, tt.days, err)
		}
		if pos.Frame != Heliocentric || pos.Body != tt.body || pos.Days != tt.days {
			t.Errorf("Heliocentric(%v) tagged %v/%v/%v", tt.body, pos.Body, pos.Frame, pos.Days)
		}
		assertVec(t, tt.body.String(), pos.Vec, tt.want, 1e-9)
	}
}

func TestEarthAtJ2000(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	pos, err := eng.Heliocentric(Earth, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d := pos.Distance(); math.Abs(d-0.9833) > 1e-4 {
		t.Errorf("|Earth| = %.5f AU, want ~0.9833", d)
	}
	if math.Abs(pos.Vec.Z) > 1e-5 {
		t.Errorf("Earth z = %g, want ~0", pos.Vec.Z)
	}
}

func TestSunIsOrigin(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	pos, err := eng.Heliocentric(Sun, 1234)
	if err != nil {
		t.Fatal(err)
	}
	if pos.Vec != (astro.Vec3{}) {
		t.Errorf("Sun heliocentric = %v, want origin", pos.Vec)
	}
}

func TestGeocentricSunIsNegatedEarth(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	for _, days := range []float64{-500, 0, 42.25, 9000} {
		sun, err := eng.Geocentric(Sun, days)
		if err != nil {
			t.Fatal(err)
		}
		earth, _ := eng.Heliocentric(Earth, days)
		if sun.Vec != earth.Vec.Neg() {
			t.Errorf("day %v: geocentric Sun %v, want %v", days, sun.Vec, earth.Vec.Neg())
		}
		if sun.Frame != Geocentric {
			t.Errorf("frame = %v", sun.Frame)
		}
	}
}

func TestMoonFrames(t *testing.T) {
	eng := NewEngine(DefaultConfig())

	geo, err := eng.Geocentric(Moon, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "geocentric Moon", geo.Vec,
		astro.Vec3{X: -0.0019601147519206796, Y: -0.0018016291965077796, Z: 0.00023765662798342464}, 1e-12)

	km := astro.AUToKm(geo.Distance())
	if km < 356000 || km > 407000 {
		t.Errorf("Earth-Moon distance = %.0f km, outside perigee/apogee range", km)
	}

	helio, err := eng.Heliocentric(Moon, 0)
	if err != nil {
		t.Fatal(err)
	}
	earth, _ := eng.Heliocentric(Earth, 0)
	roundTrip := ToGeocentric(helio, earth)
	assertVec(t, "round-trip Moon", roundTrip.Vec, geo.Vec, 1e-15)
}

func TestGeocentricMatchesToGeocentric(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	for _, b := range []Body{Mercury, Venus, Mars, Saturn, Uranus} {
		geo, err := eng.Geocentric(b, 777.7)
		if err != nil {
			t.Fatal(err)
		}
		helio, _ := eng.Heliocentric(b, 777.7)
		earth, _ := eng.Heliocentric(Earth, 777.7)
		if want := helio.Vec.Sub(earth.Vec); geo.Vec != want {
			t.Errorf("%v: Geocentric = %v, want %v", b, geo.Vec, want)
		}
	}
}

func TestHeliocentricIdempotent(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	for _, b := range Bodies {
		first, err := eng.Heliocentric(b, 1e4+0.123)
		if err != nil {
			t.Fatal(err)
		}
		second, _ := eng.Heliocentric(b, 1e4+0.123)
		if first != second {
			t.Errorf("%v: %v != %v", b, first, second)
		}
	}
}

func TestOrbitRadiusWithinApsides(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	for _, b := range []Body{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune} {
		el, _ := ElementsFor(b)
		peri := el.SemiMajorAU * (1 - el.Eccentricity)
		apo := el.SemiMajorAU * (1 + el.Eccentricity)
		for days := 0.0; days < b.Period(); days += b.Period() / 17 {
			pos, err := eng.Heliocentric(b, days)
			if err != nil {
				t.Fatal(err)
			}
			if r := pos.Distance(); r < peri*0.999 || r > apo*1.001 {
				t.Errorf("%v at day %.1f: r = %.5f outside [%.5f, %.5f]", b, days, r, peri, apo)
			}
		}
	}
}

func TestEngineSolverFailurePropagates(t *testing.T) {
	eng := &Engine{cfg: Config{Tolerance: 1e-30, MaxIterations: 1}}
	_, err := eng.Heliocentric(Mercury, 10)
	if !errors.Is(err, errors.ErrConvergenceFailure) {
		t.Errorf("err = %v, want CONVERGENCE_FAILURE", err)
	}
	_, err = eng.Geocentric(Mars, 10)
	if !errors.Is(err, errors.ErrConvergenceFailure) {
		t.Errorf("geocentric err = %v, want CONVERGENCE_FAILURE", err)
	}
}

func TestUnknownBodyPropagates(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	if _, err := eng.Heliocentric(Body(50), 0); !errors.Is(err, errors.ErrUnknownBody) {
		t.Errorf("err = %v, want UNKNOWN_BODY", err)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	cfg := NewEngine(Config{}).Config()
	if cfg != DefaultConfig() {
		t.Errorf("NewEngine(zero).Config() = %+v, want defaults", cfg)
	}
}

func TestProjectPlanarMatches3D(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	for _, b := range Bodies {
		for _, pair := range [][2]Mode{{Helio2D, Helio3D}, {Geo2D, Geo3D}} {
			flat, err := eng.Locate(b, 321.5, pair[0])
			if err != nil {
				t.Fatal(err)
			}
			full, _ := eng.Locate(b, 321.5, pair[1])

			p2 := flat.Project(pair[0])
			p3 := full.Project(pair[1])
			if len(p2) != 2 || len(p3) != 3 {
				t.Fatalf("projection lengths %d/%d", len(p2), len(p3))
			}
			if p2[0] != p3[0] || p2[1] != p3[1] {
				t.Errorf("%v %v: 2D %v vs 3D %v", b, pair[0], p2, p3)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Helio2D, Helio3D, Geo2D, Geo3D} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseMode(" GEO3D "); err != nil || got != Geo3D {
		t.Errorf("ParseMode(GEO3D) = %v, %v", got, err)
	}
	if _, err := ParseMode("polar"); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("ParseMode(polar) err = %v", err)
	}
	if Geo2D.Frame() != Geocentric || Helio3D.Frame() != Heliocentric {
		t.Error("mode frames")
	}
}

func TestSnapshotOrder(t *testing.T) {
	eng := NewEngine(DefaultConfig())
	bodies := []Body{Saturn, Moon, Sun}
	got, err := eng.Snapshot(bodies, 100, Geo3D)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range got {
		if p.Body != bodies[i] || p.Frame != Geocentric {
			t.Errorf("snapshot[%d] = %v/%v", i, p.Body, p.Frame)
		}
	}
}
