package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/unit"
)

// Star is a cataloged star with J2000 equatorial position and brightness.
type Star struct {
	Name   string  // Common name (e.g., "Regulus")
	RAdeg  float64 // Right Ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
	Mag    float64 // Apparent visual magnitude (lower = brighter)
}

// Ecliptic returns the star's ecliptic longitude in [0, 2π) and latitude,
// both in radians, for the J2000 mean obliquity.
func (s Star) Ecliptic() (lon, lat float64) {
	l, b := coord.EqToEcl(unit.RAFromDeg(s.RAdeg), unit.AngleFromDeg(s.DecDeg),
		math.Sin(obliquityRad), math.Cos(obliquityRad))
	return NormalizeAngle(l.Rad()), b.Rad()
}

// StarCatalog holds a collection of stars for rendering.
type StarCatalog struct {
	Stars []Star
}

// ZodiacalStars returns the catalog stars within maxLatDeg of the ecliptic.
func (c StarCatalog) ZodiacalStars(maxLatDeg float64) []Star {
	limit := DegToRad(maxLatDeg)
	var out []Star
	for _, s := range c.Stars {
		if _, lat := s.Ecliptic(); math.Abs(lat) <= limit {
			out = append(out, s)
		}
	}
	return out
}

// DefaultStarCatalog returns bright stars along the zodiac band, used as
// background markers. Data from the Yale Bright Star Catalog.
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{
		Stars: defaultStars,
	}
}

// defaultStars is ordered by right ascension.
var defaultStars = []Star{
	{"Sheratan", 28.660, 20.808, 2.64},
	{"Hamal", 31.793, 23.463, 2.00},
	{"Alcyone", 56.871, 24.105, 2.87},
	{"Aldebaran", 68.980, 16.509, 0.85},
	{"Elnath", 81.573, 28.608, 1.65},
	{"Propus", 93.719, 22.506, 3.28},
	{"Tejat", 95.740, 22.513, 2.88},
	{"Alhena", 99.428, 16.399, 1.93},
	{"Mebsuta", 100.983, 25.131, 3.06},
	{"Wasat", 110.031, 21.982, 3.53},
	{"Castor", 113.650, 31.889, 1.58},
	{"Pollux", 116.329, 28.026, 1.14},
	{"Asellus Australis", 131.171, 18.154, 3.94},
	{"Acubens", 134.622, 11.858, 4.25},
	{"Algieba", 146.463, 19.842, 2.08},
	{"Regulus", 152.093, 11.967, 1.35},
	{"Chertan", 168.560, 15.430, 3.33},
	{"Denebola", 177.265, 14.572, 2.13},
	{"Zavijava", 177.674, 1.765, 3.61},
	{"Porrima", 190.415, -1.449, 2.74},
	{"Spica", 201.298, -11.161, 0.97},
	{"Zubenelgenubi", 222.720, -16.042, 2.75},
	{"Zubeneschamali", 229.252, -9.383, 2.61},
	{"Dschubba", 240.083, -22.622, 2.32},
	{"Acrab", 241.359, -19.805, 2.62},
	{"Antares", 247.352, -26.432, 0.96},
	{"Sabik", 257.595, -15.725, 2.43},
	{"Shaula", 263.402, -37.104, 1.63},
	{"Kaus Australis", 276.043, -34.384, 1.85},
	{"Nunki", 283.816, -26.297, 2.02},
	{"Aldhanab", 319.966, -16.127, 3.00},
	{"Sadalsuud", 322.890, -5.571, 2.91},
	{"Enif", 326.046, 9.875, 2.39},
	{"Sadalmelik", 331.446, -0.320, 2.96},
	{"Fomalhaut", 344.413, -29.622, 1.16},
	{"Markab", 346.190, 15.205, 2.49},
}
