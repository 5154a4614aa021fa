// Package orbit propagates J2000 Keplerian elements and places solar-system
// bodies in heliocentric and geocentric ecliptic frames.
package orbit

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-orbitor/internal/errors"
)

// Body is one of the supported solar-system bodies.
type Body int

const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Moon
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// Bodies lists every supported body in display order.
var Bodies = []Body{Sun, Mercury, Venus, Earth, Moon, Mars, Jupiter, Saturn, Uranus, Neptune}

var bodyNames = [...]string{
	Sun:     "Sun",
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Moon:    "Moon",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// String returns the body name.
func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Valid reports whether b is inside the enumeration.
func (b Body) Valid() bool {
	return b >= Sun && b <= Neptune
}

// Parent returns the body b orbits: Earth for the Moon, the Sun otherwise.
// The Sun is its own parent.
func (b Body) Parent() Body {
	if b == Moon {
		return Earth
	}
	return Sun
}

// IsGiant reports whether b is one of the outer gas/ice giants.
func (b Body) IsGiant() bool {
	return b >= Jupiter && b <= Neptune
}

// ParseBody resolves a body name, ignoring case and surrounding whitespace.
func ParseBody(name string) (Body, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range Bodies {
		if strings.ToLower(bodyNames[b]) == key {
			return b, nil
		}
	}
	return 0, errors.NewUnknownBody(name)
}

// ParseBodies resolves a list of names, failing on the first unknown one.
func ParseBodies(names []string) ([]Body, error) {
	out := make([]Body, 0, len(names))
	for _, n := range names {
		b, err := ParseBody(n)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
