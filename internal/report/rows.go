// Package report turns engine results into rows for tables and JSON.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/errors"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

// MaxEphemerisRows caps the number of samples in one ephemeris.
const MaxEphemerisRows = 100000

// PositionRow is one body's position with derived sky coordinates.
type PositionRow struct {
	Body       string    `json:"body"`
	Frame      string    `json:"frame"`
	Time       time.Time `json:"time"`
	Days       float64   `json:"days_since_j2000"`
	Coords     []float64 `json:"coords_au"`
	DistanceAU float64   `json:"distance_au"`
	LonDeg     float64   `json:"ecliptic_lon_deg"`
	LatDeg     float64   `json:"ecliptic_lat_deg"`
	RADeg      float64   `json:"ra_deg"`
	DecDeg     float64   `json:"dec_deg"`
	LightTime  float64   `json:"light_time_s"` // one-way, from Earth
}

// SignRow is one body's apparent longitude and sign.
type SignRow struct {
	Body      string  `json:"body"`
	Days      float64 `json:"days_since_j2000"`
	LonDeg    float64 `json:"longitude_deg"`
	InSignDeg float64 `json:"degrees_in_sign"`
	Sign      string  `json:"sign"`
	Glyph     string  `json:"glyph"`
	Element   string  `json:"element"`
	// ElongationDeg is the angle between the body and the Sun as seen
	// from Earth.
	ElongationDeg float64 `json:"elongation_deg"`
}

// IngressRow is one sign change.
type IngressRow struct {
	Body string    `json:"body"`
	Time time.Time `json:"time"`
	Days float64   `json:"days_since_j2000"`
	From string    `json:"from,omitempty"`
	To   string    `json:"to"`
}

// PositionRows computes a row per body in the frame selected by mode.
func PositionRows(eng *orbit.Engine, bodies []orbit.Body, days float64, mode orbit.Mode) ([]PositionRow, error) {
	rows := make([]PositionRow, 0, len(bodies))
	for _, b := range bodies {
		row, err := positionRow(eng, b, days, mode)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func positionRow(eng *orbit.Engine, body orbit.Body, days float64, mode orbit.Mode) (PositionRow, error) {
	pos, err := eng.Locate(body, days, mode)
	if err != nil {
		return PositionRow{}, err
	}
	// Sky coordinates are always as seen from Earth
	geo := pos
	if pos.Frame != orbit.Geocentric {
		if geo, err = eng.Geocentric(body, days); err != nil {
			return PositionRow{}, err
		}
	}
	ra, dec := astro.RADec(geo.Vec)

	return PositionRow{
		Body:       body.String(),
		Frame:      pos.Frame.String(),
		Time:       astro.TimeFromDays(days),
		Days:       days,
		Coords:     pos.Project(mode),
		DistanceAU: pos.Distance(),
		LonDeg:     astro.RadToDeg(pos.Longitude()),
		LatDeg:     astro.RadToDeg(pos.Latitude()),
		RADeg:      ra,
		DecDeg:     dec,
		LightTime:  astro.LightTimeFromAU(geo.Distance()),
	}, nil
}

// SignRows computes each body's apparent sign. Earth is rejected.
func SignRows(eng *orbit.Engine, bodies []orbit.Body, days float64) ([]SignRow, error) {
	sun, err := eng.Geocentric(orbit.Sun, days)
	if err != nil {
		return nil, err
	}
	rows := make([]SignRow, 0, len(bodies))
	for _, b := range bodies {
		obs, err := zodiac.Observe(eng, b, days)
		if err != nil {
			return nil, err
		}
		geo, err := eng.Geocentric(b, days)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SignRow{
			Body:          b.String(),
			Days:          days,
			LonDeg:        obs.Degrees(),
			InSignDeg:     obs.DegreesInSign(),
			Sign:          obs.Sign.String(),
			Glyph:         obs.Sign.Glyph(),
			Element:       string(obs.Sign.Element()),
			ElongationDeg: astro.RadToDeg(astro.Separation(geo.Vec, sun.Vec)),
		})
	}
	return rows, nil
}

// IngressRows converts search results.
func IngressRows(ingresses []zodiac.Ingress) []IngressRow {
	rows := make([]IngressRow, 0, len(ingresses))
	for _, in := range ingresses {
		rows = append(rows, IngressRow{
			Body: in.Body.String(),
			Time: astro.TimeFromDays(in.Days),
			Days: in.Days,
			From: in.From.String(),
			To:   in.To.String(),
		})
	}
	return rows
}

// NextRows runs count successive NextOccurrence searches for target and
// returns one row per hit. From is left empty.
func NextRows(s *zodiac.Searcher, body orbit.Body, target zodiac.Sign, start float64, count int) ([]IngressRow, error) {
	if count < 1 {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("count %d: want at least 1", count))
	}
	rows := make([]IngressRow, 0, count)
	t := start
	for i := 0; i < count; i++ {
		next, err := s.NextOccurrence(body, target, t)
		if err != nil {
			return nil, err
		}
		rows = append(rows, IngressRow{
			Body: body.String(),
			Time: astro.TimeFromDays(next),
			Days: next,
			To:   target.String(),
		})
		t = next
	}
	return rows, nil
}

// EphemerisRows samples body from start to end inclusive every step days.
func EphemerisRows(eng *orbit.Engine, body orbit.Body, start, end, step float64, mode orbit.Mode) ([]PositionRow, error) {
	if step <= 0 {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("step %g: want > 0", step))
	}
	if end < start {
		return nil, errors.NewInvalidRequest("ephemeris end is before start")
	}
	// Bound the count as a float; wide windows overflow int and NaN
	// compares false.
	count := math.Floor((end-start)/step) + 1
	if !(count <= MaxEphemerisRows) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("ephemeris would have %g rows (max %d)", count, MaxEphemerisRows))
	}
	n := int(count)

	rows := make([]PositionRow, 0, n)
	for i := 0; i < n; i++ {
		row, err := positionRow(eng, body, start+float64(i)*step, mode)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
