// Package astro provides vector, angle and time primitives shared by the
// orbit engine, the zodiac mapper and the renderers.
package astro

import (
	"fmt"
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Neg returns the vector pointing the opposite way.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// ProjectedPoint represents a 2D projected position with metadata.
type ProjectedPoint struct {
	X float64 // Display X (toward vernal equinox)
	Y float64 // Display Y
	R float64 // Original radial distance in AU
	Z float64 // Original Z offset above the ecliptic
}

// ScaleMode defines how radial distances are mapped to display space.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic scaling: r_display = log10(r_AU + 1)
	ScaleLogR ScaleMode = iota

	// ScaleInner uses linear scaling optimized for 0-5 AU
	ScaleInner

	// ScaleOuter uses linear scaling to 5 AU, compressed beyond
	ScaleOuter

	// ScaleLunar uses linear scaling out to a few lunar distances
	ScaleLunar
)

// scaleModeCount is the number of ScaleMode values, for cycling.
const scaleModeCount = 4

// Next returns the following scale mode, wrapping around.
func (m ScaleMode) Next() ScaleMode {
	return (m + 1) % scaleModeCount
}

// String returns the scale mode name.
func (m ScaleMode) String() string {
	switch m {
	case ScaleLogR:
		return "log"
	case ScaleInner:
		return "inner"
	case ScaleOuter:
		return "outer"
	case ScaleLunar:
		return "lunar"
	default:
		return "unknown"
	}
}

// ParseScaleMode parses a scale mode name. Unknown names fall back to log.
func ParseScaleMode(s string) ScaleMode {
	switch s {
	case "inner":
		return ScaleInner
	case "outer":
		return ScaleOuter
	case "lunar":
		return ScaleLunar
	default:
		return ScaleLogR
	}
}

// ProjectionConfig configures the top-down ecliptic projection.
type ProjectionConfig struct {
	Scale float64   // Base scale factor
	Mode  ScaleMode // Scaling mode
}

// DefaultProjectionConfig returns a reasonable default configuration.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Scale: 1.0,
		Mode:  ScaleLogR,
	}
}

// ProjectEclipticTopDown projects a 3D ecliptic vector onto the ecliptic
// plane, looking down from ecliptic north. X points toward the vernal
// equinox; Z is dropped from the display coordinates but kept as metadata.
func ProjectEclipticTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	rAU := math.Hypot(v.X, v.Y)
	rDisplay := scaleRadius(rAU, cfg)
	angle := math.Atan2(v.Y, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		Z: v.Z,
	}
}

// DisplayExtent returns the display radius that the given mode maps its
// natural outer boundary to, so renderers can fit the chart to the canvas.
func DisplayExtent(mode ScaleMode) float64 {
	switch mode {
	case ScaleInner:
		return 5
	case ScaleOuter:
		return scaleRadius(35, ProjectionConfig{Mode: ScaleOuter})
	case ScaleLunar:
		return scaleRadius(3*lunarDistanceAU, ProjectionConfig{Mode: ScaleLunar})
	default:
		return math.Log10(35 + 1)
	}
}

// lunarDistanceAU is the Moon's mean distance from Earth in AU.
const lunarDistanceAU = 384400 / AU

// scaleRadius applies the configured scaling mode to a radial distance.
func scaleRadius(rAU float64, cfg ProjectionConfig) float64 {
	switch cfg.Mode {
	case ScaleLogR:
		// log10(r + 1) gives 0 at origin, ~0.78 at 5 AU, ~1.49 at 30 AU
		return math.Log10(rAU + 1)

	case ScaleInner:
		if rAU > 5 {
			return 5
		}
		return rAU

	case ScaleOuter:
		if rAU <= 5 {
			return rAU / 5 * 0.5
		}
		return 0.5 + math.Log10(rAU/5+1)*0.5

	case ScaleLunar:
		// One lunar distance maps to 1.0; anything past three is pinned
		r := rAU / lunarDistanceAU
		if r > 3 {
			return 3
		}
		return r

	default:
		return math.Log10(rAU + 1)
	}
}

// Separation returns the angle between two direction vectors in radians,
// in [0, π]. A zero vector gives 0.
func Separation(a, b Vec3) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	cross := Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z
	return math.Atan2(cross.Norm(), dot)
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AU
}

// AUToKm converts Astronomical Units to kilometers.
func AUToKm(au float64) float64 {
	return au * AU
}

// EclipticLatitude returns the ecliptic latitude of a vector in radians.
func EclipticLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return math.Asin(v.Z / r)
}

// EclipticLongitude returns the ecliptic longitude of a vector in radians,
// normalized into [0, 2π).
func EclipticLongitude(v Vec3) float64 {
	return NormalizeAngle(math.Atan2(v.Y, v.X))
}

// obliquityRad is the mean obliquity of the ecliptic at J2000 in radians.
const obliquityRad = 23.439291 * math.Pi / 180

// EclipticToEquatorial converts ecliptic XYZ to equatorial XYZ.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	// Rotation about X by -obliquity
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

// RADec returns right ascension and declination in degrees for an
// ecliptic vector. RA is in [0, 360).
func RADec(ecl Vec3) (raDeg, decDeg float64) {
	eq := EclipticToEquatorial(ecl)
	r := eq.Norm()
	if r == 0 {
		return 0, 0
	}
	raDeg = RadToDeg(NormalizeAngle(math.Atan2(eq.Y, eq.X)))
	decDeg = RadToDeg(math.Asin(eq.Z / r))
	return raDeg, decDeg
}

// LightTimeFromAU returns the one-way light time in seconds for a distance in AU.
func LightTimeFromAU(au float64) float64 {
	// Light travels 1 AU in ~499.005 seconds
	return au * 499.005
}

// FormatLightTime formats light time in seconds to a human-readable string.
func FormatLightTime(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	if seconds < 3600 {
		mins := int(seconds / 60)
		secs := int(seconds) % 60
		return fmt.Sprintf("%dm%ds", mins, secs)
	}
	hours := int(seconds / 3600)
	mins := (int(seconds) % 3600) / 60
	return fmt.Sprintf("%dh%dm", hours, mins)
}
