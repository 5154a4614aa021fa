package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/litescript/ls-orbitor/internal/astro"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	numberStyle = cellStyle.Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Table is a titled grid of preformatted cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// Numeric marks right-aligned columns.
	Numeric map[int]bool
}

// WriteTable renders t with a rounded border.
func WriteTable(w io.Writer, t Table) error {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case t.Numeric[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(titleStyle.Render(t.Title))
		sb.WriteString("\n")
	}
	if len(t.Rows) == 0 {
		sb.WriteString("No results\n")
	} else {
		sb.WriteString(tbl.Render())
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PositionTable lays out position rows. Planar rows get two coordinate
// columns, spatial rows three.
func PositionTable(title string, rows []PositionRow) Table {
	dims := 3
	if len(rows) > 0 {
		dims = len(rows[0].Coords)
	}
	headers := []string{"Body", "Time (UTC)", "x AU", "y AU"}
	if dims == 3 {
		headers = append(headers, "z AU")
	}
	headers = append(headers, "r AU", "Lon °", "Lat °", "RA °", "Dec °", "Light")

	t := Table{Title: title, Headers: headers, Numeric: map[int]bool{}}
	for i := 2; i < len(headers)-1; i++ {
		t.Numeric[i] = true
	}
	for _, r := range rows {
		cells := []string{r.Body, formatTime(r.Time)}
		for _, c := range r.Coords {
			cells = append(cells, fmt.Sprintf("%.6f", c))
		}
		cells = append(cells,
			fmt.Sprintf("%.6f", r.DistanceAU),
			fmt.Sprintf("%.3f", r.LonDeg),
			fmt.Sprintf("%.3f", r.LatDeg),
			fmt.Sprintf("%.3f", r.RADeg),
			fmt.Sprintf("%.3f", r.DecDeg),
			astro.FormatLightTime(r.LightTime),
		)
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// SignTable lays out sign rows.
func SignTable(title string, rows []SignRow) Table {
	t := Table{
		Title:   title,
		Headers: []string{"Body", "Longitude", "Sign", "", "Element", "Elong °"},
		Numeric: map[int]bool{1: true, 5: true},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Body,
			FormatZodiacal(r.LonDeg, r.InSignDeg),
			r.Sign,
			r.Glyph,
			r.Element,
			fmt.Sprintf("%.1f", r.ElongationDeg),
		})
	}
	return t
}

// IngressTable lays out ingress rows.
func IngressTable(title string, rows []IngressRow) Table {
	t := Table{
		Title:   title,
		Headers: []string{"Body", "Time (UTC)", "Days", "From", "To"},
		Numeric: map[int]bool{2: true},
	}
	for _, r := range rows {
		from := r.From
		if from == "" {
			from = "-"
		}
		t.Rows = append(t.Rows, []string{
			r.Body,
			formatTime(r.Time),
			fmt.Sprintf("%.4f", r.Days),
			from,
			r.To,
		})
	}
	return t
}

// FormatZodiacal renders a longitude as "280.38° (10°22')", the second part
// being the position inside the sign.
func FormatZodiacal(lonDeg, inSignDeg float64) string {
	deg := int(inSignDeg)
	arcmin := int((inSignDeg - float64(deg)) * 60)
	return fmt.Sprintf("%.2f° (%d°%02d')", lonDeg, deg, arcmin)
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
