// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orbitor/internal/logging"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/version"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewSigns
)

const viewCount = 2

// headerLines is the height of the title block and tabs.
const headerLines = 4

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	eng      *orbit.Engine
	searcher *zodiac.Searcher
	log      *logging.Logger

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Sub-models
	orrery OrreryModel
}

// New creates a new root UI model.
func New(eng *orbit.Engine, searcher *zodiac.Searcher, opts OrreryOptions, log *logging.Logger) Model {
	return Model{
		eng:      eng,
		searcher: searcher,
		log:      log,
		viewMode: ViewOrrery,
		orrery:   NewOrreryModel(eng, opts, log),
	}
}

// Orrery returns the orrery sub-model.
func (m Model) Orrery() OrreryModel {
	return m.orrery
}

// ActiveView returns the view on screen.
func (m Model) ActiveView() ViewMode {
	return m.viewMode
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.orrery.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "o":
			m.viewMode = ViewOrrery
		case "2", "s":
			m.viewMode = ViewSigns

		case "tab":
			// Cycle through views
			m.viewMode = (m.viewMode + 1) % viewCount

		default:
			// The clock keys work from every view
			m.orrery, cmd = m.orrery.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes headerLines, footer ~2 lines
		m.orrery = m.orrery.SetSize(msg.Width, msg.Height-headerLines-2)

	default:
		m.orrery, cmd = m.orrery.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orrery.View()
	case ViewSigns:
		content = m.renderSigns()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderSigns() string {
	rows, err := BuildSignsPanel(m.eng, m.searcher, m.orrery.bodies, m.orrery.Days())
	if err != nil {
		m.log.Error("signs panel: %v", err)
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27")).Render("ERROR: " + err.Error())
	}
	return "\n" + RenderZodiacBar(rows) + "\n\n" + RenderSignsPanel(rows) + "\n"
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(renderGradient("LS-ORBITOR"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  Kepler orrery · Zodiac signs · v%s", version.Version)))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	return b.String()
}

// renderGradient renders text with a horizontal truecolor gradient.
func renderGradient(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(col, len(runes)))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient.
// Blue -> purple -> magenta -> pink
func gradientColor(col, width int) string {
	xRatio := float64(col) / float64(width)

	// Blue (#3B82F6) -> Purple (#8B5CF6) -> Magenta (#D946EF) -> Pink (#EC4899)
	var r, g, b float64
	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Signs"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var help string
	switch m.viewMode {
	case ViewOrrery:
		help = ",/.: step | </>: ×10 | space: play | j/k: focus | +/-: zoom | arrows: pan | z: scale | g: frame | l: labels | t: stars | p: trails"
	case ViewSigns:
		help = ",/.: step | </>: ×10 | space: play | n: now | tab: switch view"
	}
	return "  " + dimStyle.Render(help) + "  " + dimStyle.Render("|") + "  " + dimStyle.Render("q: quit")
}
