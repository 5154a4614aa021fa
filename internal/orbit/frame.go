package orbit

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/errors"
)

// Frame identifies the origin of a Position.
type Frame int

const (
	Heliocentric Frame = iota
	Geocentric
)

// String returns the frame name.
func (f Frame) String() string {
	if f == Geocentric {
		return "geocentric"
	}
	return "heliocentric"
}

// Position is a body's ecliptic Cartesian position in AU at a time offset
// (days from J2000) in a given frame.
type Position struct {
	Body  Body
	Frame Frame
	Days  float64
	Vec   astro.Vec3
}

// Distance returns the distance from the frame origin in AU.
func (p Position) Distance() float64 {
	return p.Vec.Norm()
}

// Longitude returns the ecliptic longitude in radians, in [0, 2π).
func (p Position) Longitude() float64 {
	return astro.EclipticLongitude(p.Vec)
}

// Latitude returns the ecliptic latitude in radians.
func (p Position) Latitude() float64 {
	return astro.EclipticLatitude(p.Vec)
}

// ToGeocentric re-expresses a heliocentric position relative to Earth.
func ToGeocentric(helio, earth Position) Position {
	return Position{
		Body:  helio.Body,
		Frame: Geocentric,
		Days:  helio.Days,
		Vec:   helio.Vec.Sub(earth.Vec),
	}
}

// Mode selects a frame and a dimensionality for position output.
type Mode int

const (
	Helio2D Mode = iota
	Helio3D
	Geo2D
	Geo3D
)

var modeNames = [...]string{
	Helio2D: "helio2d",
	Helio3D: "helio3d",
	Geo2D:   "geo2d",
	Geo3D:   "geo3d",
}

// String returns the mode name as accepted by ParseMode.
func (m Mode) String() string {
	if m < Helio2D || m > Geo3D {
		return "unknown"
	}
	return modeNames[m]
}

// Frame returns the frame the mode is expressed in.
func (m Mode) Frame() Frame {
	if m == Geo2D || m == Geo3D {
		return Geocentric
	}
	return Heliocentric
}

// Planar reports whether the mode drops the z axis.
func (m Mode) Planar() bool {
	return m == Helio2D || m == Geo2D
}

// ParseMode resolves a mode name such as "geo3d", ignoring case.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == key {
			return Mode(m), nil
		}
	}
	return 0, errors.NewInvalidRequest(fmt.Sprintf("unknown mode %q (want helio2d, helio3d, geo2d or geo3d)", s))
}

// Project returns [x, y] for planar modes, projecting onto the ecliptic,
// and [x, y, z] otherwise. The frame of p is not changed.
func (p Position) Project(m Mode) []float64 {
	if m.Planar() {
		return []float64{p.Vec.X, p.Vec.Y}
	}
	return []float64{p.Vec.X, p.Vec.Y, p.Vec.Z}
}
