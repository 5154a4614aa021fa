// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Interactive orrery with signs panel, zodiacal star backdrop
// 0.2.0 - Sign ingress search, ephemeris tables, JSON output
// 0.1.0 - Initial release: Kepler engine, positions, signs
