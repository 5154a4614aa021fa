package orbit

import (
	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/errors"
)

// Elements are classical orbital elements at J2000 with linear rates.
// Angles are in radians; rates are per Julian century.
type Elements struct {
	SemiMajorAU  float64 // a
	Eccentricity float64 // e
	Inclination  float64 // i
	Node         float64 // Ω, longitude of the ascending node
	ArgPeriapsis float64 // ω
	MeanAnomaly  float64 // M0 at epoch

	SemiMajorRate    float64 // AU/century
	EccentricityRate float64 // 1/century
	InclinationRate  float64
	NodeRate         float64
	ArgPeriapsisRate float64
	MeanMotion       float64 // dM/dt
}

// MeanLongitudeRate is the rate of L = M + ω + Ω in radians per century.
func (el Elements) MeanLongitudeRate() float64 {
	return el.MeanMotion + el.ArgPeriapsisRate + el.NodeRate
}

// jplElements converts a row of the JPL approximate-positions table
// (a, e, I, L, ϖ, Ω and their per-century rates, angles in degrees)
// into classical elements.
func jplElements(a, e, incl, meanLon, periLon, node, da, de, dIncl, dMeanLon, dPeriLon, dNode float64) Elements {
	return Elements{
		SemiMajorAU:  a,
		Eccentricity: e,
		Inclination:  astro.DegToRad(incl),
		Node:         astro.DegToRad(node),
		ArgPeriapsis: astro.DegToRad(astro.NormalizeDegrees(periLon - node)),
		MeanAnomaly:  astro.DegToRad(astro.NormalizeDegrees(meanLon - periLon)),

		SemiMajorRate:    da,
		EccentricityRate: de,
		InclinationRate:  astro.DegToRad(dIncl),
		NodeRate:         astro.DegToRad(dNode),
		ArgPeriapsisRate: astro.DegToRad(dPeriLon - dNode),
		MeanMotion:       astro.DegToRad(dMeanLon - dPeriLon),
	}
}

// Lunar elements are Earth-centred ecliptic elements. The published daily
// series is referenced to 2000 Jan 0.0 UT, which is 1.5 days before J2000.
const (
	lunarEpochShift = 1.5

	lunarNode0     = 125.1228
	lunarNodeRate  = -0.0529538083
	lunarArgPeri0  = 318.0634
	lunarArgRate   = 0.1643573223
	lunarMean0     = 115.3654
	lunarMeanRate  = 13.0649929509
	lunarSemiMajor = 384400.0 // km
)

func lunarElements() Elements {
	perCentury := func(degPerDay float64) float64 {
		return astro.DegToRad(degPerDay * astro.DaysPerCentury)
	}
	return Elements{
		SemiMajorAU:  astro.KmToAU(lunarSemiMajor),
		Eccentricity: 0.0549,
		Inclination:  astro.DegToRad(5.1454),
		Node:         astro.DegToRad(lunarNode0 + lunarNodeRate*lunarEpochShift),
		ArgPeriapsis: astro.DegToRad(lunarArgPeri0 + lunarArgRate*lunarEpochShift),
		MeanAnomaly:  astro.DegToRad(lunarMean0 + lunarMeanRate*lunarEpochShift),

		NodeRate:         perCentury(lunarNodeRate),
		ArgPeriapsisRate: perCentury(lunarArgRate),
		MeanMotion:       perCentury(lunarMeanRate),
	}
}

// elementTable is built once at package init and never written afterwards.
// Planet rows: JPL "Keplerian Elements for Approximate Positions of the
// Major Planets", table 1 (valid 1800-2050 AD).
var elementTable = map[Body]Elements{
	Mercury: jplElements(0.38709843, 0.20563661, 7.00559432, 252.25166724, 77.45771895, 48.33961819,
		0.00000000, 0.00002123, -0.00590158, 149472.67486623, 0.15940013, -0.12214182),
	Venus: jplElements(0.72333566, 0.00677672, 3.39467605, 181.97970850, 131.76755713, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.05679648, -0.27769418),
	Earth: jplElements(1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37306329, 0.32327364, 0.0),
	Mars: jplElements(1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343),
	Jupiter: jplElements(5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106),
	Saturn: jplElements(9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794),
	Uranus: jplElements(19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589),
	Neptune: jplElements(30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664),
	Moon: lunarElements(),
}

// ElementsFor returns the J2000 elements for body. The Sun's entry is the
// zero value: it sits at the origin and is never propagated.
func ElementsFor(body Body) (Elements, error) {
	if body == Sun {
		return Elements{}, nil
	}
	el, ok := elementTable[body]
	if !ok {
		return Elements{}, errors.NewUnknownBody(body.String())
	}
	return el, nil
}

// Static reports whether the elements describe a fixed point (the Sun).
func (el Elements) Static() bool {
	return el.SemiMajorAU == 0
}

// Period returns the sidereal period of b about its parent in days,
// or 0 for the Sun.
func (b Body) Period() float64 {
	el, ok := elementTable[b]
	if !ok {
		return 0
	}
	return astro.TwoPi / el.MeanLongitudeRate() * astro.DaysPerCentury
}
