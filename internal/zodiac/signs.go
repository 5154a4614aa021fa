// Package zodiac maps geocentric ecliptic longitudes onto the twelve 30°
// signs and searches forward in time for sign ingresses.
package zodiac

import (
	"fmt"
	"math"
	"strings"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/errors"
	"github.com/litescript/ls-orbitor/internal/orbit"
)

// Sign is one of the twelve zodiac signs. Sign k owns the longitude
// interval [k·30°, (k+1)·30°).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of signs.
const SignCount = 12

// SignWidth is the angular width of one sign in radians.
const SignWidth = astro.TwoPi / SignCount

// Signs lists every sign in longitude order.
var Signs = []Sign{Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces}

// Element is the classical element a sign belongs to.
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

type signInfo struct {
	name  string
	glyph string
}

var signTable = [SignCount]signInfo{
	Aries:       {"Aries", "♈"},
	Taurus:      {"Taurus", "♉"},
	Gemini:      {"Gemini", "♊"},
	Cancer:      {"Cancer", "♋"},
	Leo:         {"Leo", "♌"},
	Virgo:       {"Virgo", "♍"},
	Libra:       {"Libra", "♎"},
	Scorpio:     {"Scorpio", "♏"},
	Sagittarius: {"Sagittarius", "♐"},
	Capricorn:   {"Capricorn", "♑"},
	Aquarius:    {"Aquarius", "♒"},
	Pisces:      {"Pisces", "♓"},
}

// String returns the sign name.
func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signTable[s].name
}

// Valid reports whether s is inside the enumeration.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Glyph returns the Unicode symbol for the sign.
func (s Sign) Glyph() string {
	if !s.Valid() {
		return "?"
	}
	return signTable[s].glyph
}

// Element returns the sign's element. Elements cycle fire, earth, air,
// water starting at Aries.
func (s Sign) Element() Element {
	switch s % 4 {
	case 0:
		return ElementFire
	case 1:
		return ElementEarth
	case 2:
		return ElementAir
	default:
		return ElementWater
	}
}

// StartDegrees returns the ecliptic longitude at which the sign begins.
func (s Sign) StartDegrees() float64 {
	return float64(s) * 30
}

// Next returns the following sign, wrapping from Pisces to Aries.
func (s Sign) Next() Sign {
	return (s + 1) % SignCount
}

// ParseSign resolves a sign name, ignoring case and surrounding whitespace.
func ParseSign(name string) (Sign, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Signs {
		if strings.ToLower(signTable[s].name) == key {
			return s, nil
		}
	}
	return 0, errors.NewUnknownSign(name)
}

// SignOfLongitude returns the sign containing the ecliptic longitude lon
// (radians, any range). A boundary belongs to the sign that starts there.
func SignOfLongitude(lon float64) Sign {
	x := astro.NormalizeAngle(lon) / SignWidth
	idx := int(math.Floor(x))
	// Boundaries built from degrees or atan2 on an axis divide out a few
	// ulps short of k; within signSnap they belong to sign k.
	if r := math.Round(x); math.Abs(x-r) < signSnap {
		idx = int(r)
	}
	return Sign(idx % SignCount)
}

// signSnap is the boundary tolerance in units of one sign, about 0.0001″.
const signSnap = 1e-9

// SignOf returns the sign of a geocentric position.
func SignOf(pos orbit.Position) Sign {
	return SignOfLongitude(pos.Longitude())
}

// Observation is a body's apparent place as seen from Earth.
type Observation struct {
	Body      orbit.Body
	Days      float64
	Longitude float64 // radians, [0, 2π)
	Latitude  float64 // radians
	Distance  float64 // AU
	Sign      Sign
}

// Degrees returns the longitude in degrees.
func (o Observation) Degrees() float64 {
	return astro.RadToDeg(o.Longitude)
}

// DegreesInSign returns how far into its sign the body is, in degrees.
func (o Observation) DegreesInSign() float64 {
	d := o.Degrees() - o.Sign.StartDegrees()
	// A longitude snapped up onto a boundary sits at its start
	if d < 0 || d >= 30 {
		return 0
	}
	return d
}

// Observe returns body's geocentric longitude and sign. Earth has no
// direction as seen from itself and is rejected with UNKNOWN_BODY.
func Observe(eng *orbit.Engine, body orbit.Body, days float64) (Observation, error) {
	if body == orbit.Earth {
		return Observation{}, errors.NewNoGeocentricDirection(body.String())
	}
	pos, err := eng.Geocentric(body, days)
	if err != nil {
		return Observation{}, err
	}
	lon := pos.Longitude()
	return Observation{
		Body:      body,
		Days:      days,
		Longitude: lon,
		Latitude:  pos.Latitude(),
		Distance:  pos.Distance(),
		Sign:      SignOfLongitude(lon),
	}, nil
}
