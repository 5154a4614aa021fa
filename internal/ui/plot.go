package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

// LabelMode controls which bodies get a name label on the chart.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only the focused body
	LabelAll                      // Every body
)

// Next cycles to the following label mode.
func (l LabelMode) Next() LabelMode {
	return (l + 1) % 3
}

// String returns the short name shown in the HUD.
func (l LabelMode) String() string {
	switch l {
	case LabelNone:
		return "off"
	case LabelAll:
		return "all"
	default:
		return "focus"
	}
}

// ParseLabelMode parses "off", "focus" or "all". Anything else is focus.
func ParseLabelMode(s string) LabelMode {
	switch strings.ToLower(s) {
	case "off", "none":
		return LabelNone
	case "all":
		return LabelAll
	default:
		return LabelFocused
	}
}

// trailSamples is the number of points drawn along one orbit trail.
const trailSamples = 96

// Scene is a set of body positions in one frame, with optional trails.
type Scene struct {
	Frame  orbit.Frame
	Days   float64
	Bodies []orbit.Position
	// Trails is parallel to Bodies. Entries are nil when not sampled.
	Trails [][]astro.Vec3
}

// OriginBody returns the body sitting at the origin of frame.
func OriginBody(frame orbit.Frame) orbit.Body {
	if frame == orbit.Geocentric {
		return orbit.Earth
	}
	return orbit.Sun
}

// BuildScene places bodies at days in frame. The frame's origin body is
// skipped since the chart always draws it at the center. With trails set,
// each body's path is sampled back over one period.
func BuildScene(eng *orbit.Engine, bodies []orbit.Body, days float64, frame orbit.Frame, trails bool) (Scene, error) {
	mode := orbit.Helio3D
	if frame == orbit.Geocentric {
		mode = orbit.Geo3D
	}
	origin := OriginBody(frame)

	var visible []orbit.Body
	for _, b := range bodies {
		if b != origin {
			visible = append(visible, b)
		}
	}
	positions, err := eng.Snapshot(visible, days, mode)
	if err != nil {
		return Scene{}, err
	}

	s := Scene{Frame: frame, Days: days, Bodies: positions}
	for _, b := range visible {
		var trail []astro.Vec3
		if trails {
			period := b.Period()
			if frame == orbit.Geocentric {
				period = zodiac.ApparentPeriod(b)
			}
			trail = make([]astro.Vec3, 0, trailSamples)
			for i := 0; i < trailSamples; i++ {
				p, err := eng.Locate(b, days-period*float64(i)/trailSamples, mode)
				if err != nil {
					return Scene{}, err
				}
				trail = append(trail, p.Vec)
			}
		}
		s.Trails = append(s.Trails, trail)
	}
	return s, nil
}

// Find returns the position of body in the scene.
func (s Scene) Find(body orbit.Body) (orbit.Position, bool) {
	for _, p := range s.Bodies {
		if p.Body == body {
			return p, true
		}
	}
	return orbit.Position{}, false
}

// Chart renders a Scene as a top-down view of the ecliptic plane, with
// the vernal equinox to the right.
type Chart struct {
	Width, Height int
	Scale         astro.ScaleMode
	Zoom          float64
	PanX, PanY    float64 // in projected units, before zoom
	Labels        LabelMode
	Focus         orbit.Body
	Stars         bool // zodiac star ring and sign ticks
	Plain         bool // no ANSI styling
}

// aspect compensates for terminal cells being about twice as tall as wide.
const aspect = 0.5

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

// grid geometry shared by the drawing helpers.
type canvas struct {
	cells            [][]rune
	w, h             int
	cx, cy           int
	originX, originY int
	displayScale     float64
	rimR             float64
}

func (c *canvas) put(x, y int, r rune, overwrite bool) bool {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return false
	}
	if !overwrite && c.cells[y][x] != ' ' {
		return false
	}
	c.cells[y][x] = r
	return true
}

// project returns the screen cell of a vector.
func (c Chart) project(cv *canvas, v astro.Vec3) (int, int) {
	p := astro.ProjectEclipticTopDown(v, c.projection())
	x := cv.originX + int(math.Round(p.X*cv.displayScale))
	y := cv.originY - int(math.Round(p.Y*cv.displayScale*aspect))
	return x, y
}

// CenterOn returns the pan offsets that put v in the middle of the chart.
func (c Chart) CenterOn(v astro.Vec3) (panX, panY float64) {
	p := astro.ProjectEclipticTopDown(v, c.projection())
	return -p.X, -p.Y
}

func (c Chart) projection() astro.ProjectionConfig {
	cfg := astro.DefaultProjectionConfig()
	cfg.Mode = c.Scale
	return cfg
}

// Render draws the scene.
func (c Chart) Render(s Scene) string {
	cv := c.layout()

	if c.Stars {
		c.drawBackdrop(cv)
	}
	for i := range s.Bodies {
		if i < len(s.Trails) {
			for _, v := range s.Trails[i] {
				x, y := c.project(cv, v)
				cv.put(x, y, '·', false)
			}
		}
	}

	var positions []bodyPos
	for _, pos := range s.Bodies {
		x, y := c.project(cv, pos.Vec)
		focused := pos.Body == c.Focus
		if !cv.put(x, y, bodyGlyph(pos.Body, focused), true) {
			continue
		}
		positions = append(positions, bodyPos{x: x, y: y, name: pos.Body.String(), isFocused: focused})
	}

	// Origin last so it is always visible
	origin := OriginBody(s.Frame)
	if cv.put(cv.originX, cv.originY, originGlyph(s.Frame), true) {
		positions = append(positions, bodyPos{
			x:         cv.originX,
			y:         cv.originY,
			name:      origin.String(),
			isFocused: c.Focus == origin,
		})
	}

	c.renderLabels(cv, positions)
	if c.Plain {
		return plainGrid(cv.cells)
	}
	return renderGrid(cv.cells)
}

func (c Chart) layout() *canvas {
	w, h := c.Width, c.Height
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}

	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	cx, cy := w/2, h/2
	rimR := float64(min(cx, cy*2)) * 0.95
	displayScale := rimR * 0.95 / astro.DisplayExtent(c.Scale) * zoom

	return &canvas{
		cells:        cells,
		w:            w,
		h:            h,
		cx:           cx,
		cy:           cy,
		originX:      cx + int(math.Round(c.PanX*displayScale)),
		originY:      cy - int(math.Round(c.PanY*displayScale*aspect)),
		displayScale: displayScale,
		rimR:         rimR,
	}
}

// drawBackdrop puts zodiacal stars and sign boundary ticks on a ring at the
// edge of the chart. Stars are at infinity, so the ring ignores pan and zoom.
func (c Chart) drawBackdrop(cv *canvas) {
	rim := func(lon float64) (int, int) {
		x := cv.cx + int(math.Round(cv.rimR*math.Cos(lon)))
		y := cv.cy - int(math.Round(cv.rimR*math.Sin(lon)*aspect))
		return x, y
	}
	for _, sg := range zodiac.Signs {
		x, y := rim(astro.DegToRad(sg.StartDegrees()))
		cv.put(x, y, '+', false)
	}
	for _, star := range astro.DefaultStarCatalog().ZodiacalStars(15) {
		lon, _ := star.Ecliptic()
		x, y := rim(lon)
		if g := starGlyph(star.Mag); g != ' ' {
			cv.put(x, y, g, false)
		}
	}
}

// starGlyph returns a subtle glyph based on star magnitude.
func starGlyph(mag float64) rune {
	switch {
	case mag <= 1.0:
		return '∗'
	case mag <= 2.5:
		return '⋅'
	case mag <= 3.5:
		return '˙'
	default:
		return ' '
	}
}

func bodyGlyph(b orbit.Body, focused bool) rune {
	switch {
	case b == orbit.Sun:
		return '☉'
	case b == orbit.Earth:
		return '⊕'
	case b == orbit.Moon:
		return '☾'
	case b.IsGiant():
		if focused {
			return '◉'
		}
		return '○'
	case focused:
		return '●'
	default:
		return '•'
	}
}

func originGlyph(frame orbit.Frame) rune {
	return bodyGlyph(OriginBody(frame), false)
}

// renderLabels draws body labels to the right of their glyphs.
func (c Chart) renderLabels(cv *canvas, positions []bodyPos) {
	if c.Labels == LabelNone {
		return
	}
	for _, pos := range positions {
		if c.Labels == LabelFocused && !pos.isFocused {
			continue
		}
		text := pos.name
		if pos.isFocused {
			text = "◄ " + pos.name
		}
		x := pos.x + 2
		for _, r := range text {
			if x >= cv.w {
				break
			}
			// Only write over empty cells and trails
			if cv.cells[pos.y][x] == ' ' || cv.cells[pos.y][x] == '·' {
				cv.cells[pos.y][x] = r
			}
			x++
		}
	}
}

func plainGrid(grid [][]rune) string {
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteRune('\n')
	}
	return b.String()
}

func renderGrid(grid [][]rune) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	earthStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	moonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	planetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	giantStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			var style lipgloss.Style
			switch ch {
			case ' ':
				b.WriteRune(ch)
				continue
			case '·', '+':
				style = dimStyle
			case '∗', '⋅', '˙':
				style = starStyle
			case '☉':
				style = sunStyle
			case '⊕':
				style = earthStyle
			case '☾':
				style = moonStyle
			case '•':
				style = planetStyle
			case '○':
				style = giantStyle
			case '●', '◉', '◄':
				style = focusStyle
			default:
				style = labelStyle
			}
			b.WriteString(style.Render(string(ch)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}
