package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/logging"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

// playInterval is the wall-clock delay between animation steps.
const playInterval = 200 * time.Millisecond

// OrreryTickMsg advances the clock while the orrery is playing.
type OrreryTickMsg time.Time

// OrreryOptions sets the initial orrery state.
type OrreryOptions struct {
	Bodies   []orbit.Body
	Start    float64 // days since J2000
	StepDays float64
	Frame    orbit.Frame
	Scale    astro.ScaleMode
	Labels   LabelMode
}

// OrreryModel is an animated top-down chart of the solar system.
type OrreryModel struct {
	eng    *orbit.Engine
	log    *logging.Logger
	bodies []orbit.Body
	width  int
	height int

	// Clock
	days     float64
	stepDays float64
	playing  bool

	// View state
	frame      orbit.Frame
	focusIdx   int // Index in scene bodies (-1 = origin)
	zoomLevel  int // Index into zoomLevels
	panX       float64
	panY       float64
	scaleMode  astro.ScaleMode
	labelMode  LabelMode
	userPanned bool // True if user has manually panned (disables auto-center on zoom)
	showStars  bool
	showTrails bool

	scene Scene
	err   error
}

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

const defaultZoomLevel = 3

// NewOrreryModel creates an orrery at opts.Start.
func NewOrreryModel(eng *orbit.Engine, opts OrreryOptions, log *logging.Logger) OrreryModel {
	if opts.StepDays <= 0 {
		opts.StepDays = 1
	}
	if len(opts.Bodies) == 0 {
		opts.Bodies = orbit.Bodies
	}
	m := OrreryModel{
		eng:        eng,
		log:        log.With("orrery"),
		bodies:     opts.Bodies,
		days:       opts.Start,
		stepDays:   opts.StepDays,
		frame:      opts.Frame,
		focusIdx:   -1,
		zoomLevel:  defaultZoomLevel,
		scaleMode:  opts.Scale,
		labelMode:  opts.Labels,
		showStars:  true,
		showTrails: true,
	}
	m.refresh()
	return m
}

// scale returns the current zoom scale.
func (m OrreryModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// Days returns the current chart time in days since J2000.
func (m OrreryModel) Days() float64 {
	return m.days
}

// Playing reports whether the clock is advancing on its own.
func (m OrreryModel) Playing() bool {
	return m.playing
}

// Frame returns the frame the chart is drawn in.
func (m OrreryModel) Frame() orbit.Frame {
	return m.frame
}

// Err returns the last engine error, if any.
func (m OrreryModel) Err() error {
	return m.err
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// Init starts the clock if the orrery was created playing.
func (m OrreryModel) Init() tea.Cmd {
	if m.playing {
		return orreryTickCmd()
	}
	return nil
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case OrreryTickMsg:
		if !m.playing {
			return m, nil
		}
		m.advance(m.stepDays)
		return m, orreryTickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		// Time stepping
		case ".":
			m.advance(m.stepDays)
		case ",":
			m.advance(-m.stepDays)
		case ">":
			m.advance(10 * m.stepDays)
		case "<":
			m.advance(-10 * m.stepDays)
		case " ":
			m.playing = !m.playing
			m.log.Debug("playing=%v at day %.3f", m.playing, m.days)
			if m.playing {
				return m, orreryTickCmd()
			}
		case "n":
			m.days = astro.DaysSinceJ2000(time.Now())
			m.refresh()
			m.recenter()

		// Focus navigation (j/k, or [/])
		case "j", "[":
			m.focusPrev()
		case "k", "]":
			m.focusNext()

		// Viewport panning
		case "up":
			m.panY -= 0.1 / m.scale()
			m.userPanned = true
		case "down":
			m.panY += 0.1 / m.scale()
			m.userPanned = true
		case "left":
			m.panX -= 0.1 / m.scale()
			m.userPanned = true
		case "right":
			m.panX += 0.1 / m.scale()
			m.userPanned = true
		case "c":
			m.panX, m.panY = 0, 0
			m.userPanned = false
		case "f":
			m.centerOnFocused()
			m.userPanned = false

		// Zoom (discrete levels) - only auto-center if user hasn't panned
		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				m.recenter()
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				m.recenter()
			}
		case "0":
			m.zoomLevel = defaultZoomLevel
			m.recenter()

		case "z":
			m.scaleMode = m.scaleMode.Next()
			m.recenter()
		case "g":
			if m.frame == orbit.Heliocentric {
				m.frame = orbit.Geocentric
			} else {
				m.frame = orbit.Heliocentric
			}
			m.focusIdx = -1
			m.panX, m.panY = 0, 0
			m.userPanned = false
			m.log.Debug("frame=%s", m.frame)
			m.refresh()
		case "l":
			m.labelMode = m.labelMode.Next()
		case "t":
			m.showStars = !m.showStars
		case "p":
			m.showTrails = !m.showTrails
			m.refresh()
		case "r":
			m.panX, m.panY = 0, 0
			m.zoomLevel = defaultZoomLevel
			m.userPanned = false
		}
	}
	return m, nil
}

func orreryTickCmd() tea.Cmd {
	return tea.Tick(playInterval, func(t time.Time) tea.Msg {
		return OrreryTickMsg(t)
	})
}

func (m *OrreryModel) advance(delta float64) {
	m.days += delta
	m.refresh()
	m.recenter()
}

// refresh rebuilds the scene for the current time and frame.
func (m *OrreryModel) refresh() {
	scene, err := BuildScene(m.eng, m.bodies, m.days, m.frame, m.showTrails)
	if err != nil {
		m.log.Error("scene at day %.3f: %v", m.days, err)
		m.err = err
		m.playing = false
		return
	}
	m.err = nil
	m.scene = scene
	if m.focusIdx >= len(m.scene.Bodies) {
		m.focusIdx = -1
	}
}

func (m *OrreryModel) recenter() {
	if !m.userPanned {
		m.centerOnFocused()
	}
}

func (m *OrreryModel) focusNext() {
	if len(m.scene.Bodies) == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= len(m.scene.Bodies) {
		m.focusIdx = -1 // Wrap to origin
	}
	m.centerOnFocused()
	m.userPanned = false
}

func (m *OrreryModel) focusPrev() {
	if len(m.scene.Bodies) == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = len(m.scene.Bodies) - 1
	}
	m.centerOnFocused()
	m.userPanned = false
}

// centerOnFocused pans the view to center on the currently focused body.
func (m *OrreryModel) centerOnFocused() {
	pos, ok := m.FocusedPosition()
	if !ok {
		m.panX, m.panY = 0, 0
		return
	}
	m.panX, m.panY = m.chart().CenterOn(pos.Vec)
}

// FocusedBody returns the focused body. The frame origin is returned when
// nothing else is focused.
func (m OrreryModel) FocusedBody() orbit.Body {
	if pos, ok := m.FocusedPosition(); ok {
		return pos.Body
	}
	return OriginBody(m.frame)
}

// FocusedPosition returns the focused body's position. It reports false
// when the frame origin is focused.
func (m OrreryModel) FocusedPosition() (orbit.Position, bool) {
	if m.focusIdx >= 0 && m.focusIdx < len(m.scene.Bodies) {
		return m.scene.Bodies[m.focusIdx], true
	}
	return orbit.Position{}, false
}

func (m OrreryModel) chart() Chart {
	return Chart{
		Width:  m.width,
		Height: m.height - 3, // HUD
		Scale:  m.scaleMode,
		Zoom:   m.scale(),
		PanX:   m.panX,
		PanY:   m.panY,
		Labels: m.labelMode,
		Focus:  m.FocusedBody(),
		Stars:  m.showStars,
	}
}

// View renders the orrery.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.chart().Render(m.scene), m.renderHUD())
}

func (m OrreryModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	// Header line with focus info
	body := m.FocusedBody()
	if pos, ok := m.FocusedPosition(); ok {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%c %s", bodyGlyph(body, true), body)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Distance:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f AU", pos.Distance())))
	} else {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%c %s", originGlyph(m.frame), body)))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%s origin)", m.frame)))
	}
	b.WriteString("  ")
	if obs, err := zodiac.Observe(m.eng, body, m.days); err == nil {
		b.WriteString(labelStyle.Render("Geo Lon:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f° %s %s", obs.Degrees(), obs.Sign.Glyph(), obs.Sign)))
	} else {
		b.WriteString(labelStyle.Render("Geo Lon:"))
		b.WriteString(dimStyle.Render("n/a"))
	}
	b.WriteString("\n")

	// Second line: clock
	b.WriteString(labelStyle.Render("Time:"))
	b.WriteString(valueStyle.Render(astro.TimeFromDays(m.days).Format("2006-01-02 15:04 MST")))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Day:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", m.days)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Step:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%gd", m.stepDays)))
	b.WriteString("  ")
	state := "paused"
	if m.playing {
		state = "playing"
	}
	b.WriteString(valueStyle.Render(state))
	b.WriteString("\n")

	// Third line: view settings
	starsName := "off"
	if m.showStars {
		starsName = "on"
	}
	b.WriteString(dimStyle.Render("Frame:"))
	b.WriteString(valueStyle.Render(m.frame.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Mode:"))
	b.WriteString(valueStyle.Render(m.scaleMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(m.labelMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Stars:"))
	b.WriteString(valueStyle.Render(starsName))
	if m.err != nil {
		b.WriteString("  ")
		b.WriteString(errStyle.Render("ERROR: " + m.err.Error()))
	}

	return b.String()
}
