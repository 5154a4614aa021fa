package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/report"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

// Element colors
const (
	colorFire  = "#FF6347" // Tomato
	colorEarth = "#9ACD32" // Yellow green
	colorAir   = "#FFD700" // Gold
	colorWater = "#1E90FF" // Dodger blue

	// Elongation colors
	colorElongWide   = "#7CFC00" // Green - well clear of the Sun (>=45°)
	colorElongNarrow = "#FFD700" // Gold - twilight (15-45°)
	colorElongGlare  = "#FF4500" // Orange-red - lost in the Sun's glare (<15°)
)

// ElongationTier classifies how far a body appears from the Sun.
type ElongationTier int

const (
	ElongationGlare ElongationTier = iota
	ElongationNarrow
	ElongationWide
)

// GetElongationTier returns the tier for an elongation in degrees.
func GetElongationTier(deg float64) ElongationTier {
	switch {
	case deg >= 45:
		return ElongationWide
	case deg >= 15:
		return ElongationNarrow
	default:
		return ElongationGlare
	}
}

// SignsPanelRow is a body's current sign plus its next ingress into the
// following sign.
type SignsPanelRow struct {
	report.SignRow
	Next     zodiac.Sign
	NextDays float64
	NextErr  error
}

// BuildSignsPanel computes panel rows for bodies at days. Earth is skipped.
func BuildSignsPanel(eng *orbit.Engine, s *zodiac.Searcher, bodies []orbit.Body, days float64) ([]SignsPanelRow, error) {
	var visible []orbit.Body
	for _, b := range bodies {
		if b != orbit.Earth {
			visible = append(visible, b)
		}
	}
	signRows, err := report.SignRows(eng, visible, days)
	if err != nil {
		return nil, err
	}

	rows := make([]SignsPanelRow, 0, len(signRows))
	for i, sr := range signRows {
		cur, err := zodiac.ParseSign(sr.Sign)
		if err != nil {
			return nil, err
		}
		row := SignsPanelRow{SignRow: sr, Next: cur.Next()}
		row.NextDays, row.NextErr = s.NextOccurrence(visible[i], row.Next, days)
		rows = append(rows, row)
	}
	return rows, nil
}

// RenderSignsPanel renders one line per body.
// Format:
//
//	Sun      ♑ Capricorn    280.38° (10°22')   elong   0.0°   → Aquarius 2000-01-20 18:11
func RenderSignsPanel(rows []SignsPanelRow) string {
	if len(rows) == 0 {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var lines []string
	for _, r := range rows {
		line := labelStyle.Render(fmt.Sprintf("%-9s", r.Body))
		line += colorByElement(r.Element, fmt.Sprintf("%s %-12s", r.Glyph, r.Sign))
		line += valueStyle.Render(fmt.Sprintf("%-20s", report.FormatZodiacal(r.LonDeg, r.InSignDeg)))

		if r.Body == orbit.Sun.String() {
			line += dimStyle.Render(fmt.Sprintf("%-15s", ""))
		} else {
			line += dimStyle.Render("elong ") + colorByElongation(r.ElongationDeg, fmt.Sprintf("%5.1f°   ", r.ElongationDeg))
		}

		if r.NextErr != nil {
			line += dimStyle.Render("→ " + r.Next.String() + " not found")
		} else {
			when := astro.TimeFromDays(r.NextDays).Format("2006-01-02 15:04")
			line += dimStyle.Render("→ ") + valueStyle.Render(r.Next.String()+" "+when)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderZodiacBar renders a compact strip of the twelve signs with the
// bodies in each.
// Format: ♈ Ju  ♉ Sa  ♊  ♋ ... ♑ SuMe  ♒ MaUrNe
func RenderZodiacBar(rows []SignsPanelRow) string {
	occupants := make(map[string][]string)
	for _, r := range rows {
		occupants[r.Sign] = append(occupants[r.Sign], abbreviate(r.Body))
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bodyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	var parts []string
	for _, sg := range zodiac.Signs {
		names := occupants[sg.String()]
		if len(names) == 0 {
			parts = append(parts, dimStyle.Render(sg.Glyph()))
			continue
		}
		parts = append(parts, colorByElement(string(sg.Element()), sg.Glyph())+" "+bodyStyle.Render(strings.Join(names, "")))
	}
	return strings.Join(parts, "  ")
}

// abbreviate shortens a body name to two letters.
func abbreviate(name string) string {
	r := []rune(name)
	if len(r) <= 2 {
		return name
	}
	return string(r[:2])
}

// elementToColor returns the color for a sign element name.
func elementToColor(element string) string {
	switch zodiac.Element(element) {
	case zodiac.ElementFire:
		return colorFire
	case zodiac.ElementEarth:
		return colorEarth
	case zodiac.ElementAir:
		return colorAir
	default:
		return colorWater
	}
}

// colorByElement applies element-based coloring to text.
func colorByElement(element, text string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(elementToColor(element)))
	return style.Render(text)
}

// elongationToColor returns the color for an elongation tier.
func elongationToColor(tier ElongationTier) string {
	switch tier {
	case ElongationWide:
		return colorElongWide
	case ElongationNarrow:
		return colorElongNarrow
	default:
		return colorElongGlare
	}
}

// colorByElongation colors text by how far the body is from the Sun.
func colorByElongation(deg float64, text string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(elongationToColor(GetElongationTier(deg))))
	return style.Render(text)
}
