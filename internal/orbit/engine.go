package orbit

import (
	"math"

	"github.com/litescript/ls-orbitor/internal/astro"
)

// Config holds the Kepler solver settings used by an Engine.
type Config struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultConfig returns the default solver settings.
func DefaultConfig() Config {
	return Config{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Engine places bodies at a time offset from J2000. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine. Zero fields in cfg take their defaults.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's solver settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Heliocentric returns body's position relative to the Sun. The Sun sits
// at the origin; the Moon is its Earth-relative offset added to Earth.
func (e *Engine) Heliocentric(body Body, days float64) (Position, error) {
	pos := Position{Body: body, Frame: Heliocentric, Days: days}

	switch body {
	case Sun:
		return pos, nil
	case Moon:
		earth, err := e.orbitVector(Earth, days)
		if err != nil {
			return Position{}, err
		}
		offset, err := e.orbitVector(Moon, days)
		if err != nil {
			return Position{}, err
		}
		pos.Vec = earth.Add(offset)
		return pos, nil
	}

	v, err := e.orbitVector(body, days)
	if err != nil {
		return Position{}, err
	}
	pos.Vec = v
	return pos, nil
}

// Geocentric returns body's position relative to Earth. The Moon's
// Earth-relative offset is returned directly; the Sun comes out as Earth's
// heliocentric vector negated.
func (e *Engine) Geocentric(body Body, days float64) (Position, error) {
	if body == Moon {
		v, err := e.orbitVector(Moon, days)
		if err != nil {
			return Position{}, err
		}
		return Position{Body: Moon, Frame: Geocentric, Days: days, Vec: v}, nil
	}

	helio, err := e.Heliocentric(body, days)
	if err != nil {
		return Position{}, err
	}
	earth, err := e.Heliocentric(Earth, days)
	if err != nil {
		return Position{}, err
	}
	return ToGeocentric(helio, earth), nil
}

// Locate returns body's position in the frame selected by mode.
func (e *Engine) Locate(body Body, days float64, mode Mode) (Position, error) {
	if mode.Frame() == Geocentric {
		return e.Geocentric(body, days)
	}
	return e.Heliocentric(body, days)
}

// Snapshot returns the positions of bodies in order, in the frame selected
// by mode.
func (e *Engine) Snapshot(bodies []Body, days float64, mode Mode) ([]Position, error) {
	out := make([]Position, 0, len(bodies))
	for _, b := range bodies {
		p, err := e.Locate(b, days, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// orbitVector propagates body's elements and returns its position relative
// to its parent.
func (e *Engine) orbitVector(body Body, days float64) (astro.Vec3, error) {
	el, err := ElementsFor(body)
	if err != nil {
		return astro.Vec3{}, err
	}
	if el.Static() {
		return astro.Vec3{}, nil
	}

	t := astro.CenturiesSinceJ2000(days)
	a := el.SemiMajorAU + el.SemiMajorRate*t
	ecc := el.Eccentricity + el.EccentricityRate*t
	incl := astro.NormalizeAngle(el.Inclination + el.InclinationRate*t)
	node := astro.NormalizeAngle(el.Node + el.NodeRate*t)
	argp := astro.NormalizeAngle(el.ArgPeriapsis + el.ArgPeriapsisRate*t)
	mean := astro.NormalizeAngle(el.MeanAnomaly + el.MeanMotion*t)

	ea, err := SolveKepler(mean, ecc, e.cfg.Tolerance, e.cfg.MaxIterations)
	if err != nil {
		return astro.Vec3{}, err
	}

	nu := 2 * math.Atan2(math.Sqrt(1+ecc)*math.Sin(ea/2), math.Sqrt(1-ecc)*math.Cos(ea/2))
	r := a * (1 - ecc*math.Cos(ea))
	ox, oy := r*math.Cos(nu), r*math.Sin(nu)

	return rotateToEcliptic(ox, oy, argp, incl, node), nil
}

// rotateToEcliptic applies Rz(Ω)·Rx(i)·Rz(ω) to an orbital-plane point.
func rotateToEcliptic(ox, oy, argp, incl, node float64) astro.Vec3 {
	cw, sw := math.Cos(argp), math.Sin(argp)
	ci, si := math.Cos(incl), math.Sin(incl)
	cn, sn := math.Cos(node), math.Sin(node)

	return astro.Vec3{
		X: ox*(cw*cn-sw*ci*sn) - oy*(sw*cn+cw*ci*sn),
		Y: ox*(cw*sn+sw*ci*cn) + oy*(cw*ci*cn-sw*sn),
		Z: ox*sw*si + oy*cw*si,
	}
}
