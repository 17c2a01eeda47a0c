package style

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// BarRune is the glyph bars are drawn with.
const BarRune = "█"

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	// Color is a hex colour; empty draws the bar unstyled.
	Color string
}

// BarChart renders bars as labelled horizontal bars. The longest bar is
// width cells wide; any positive value gets at least one cell. format
// renders the value printed after each bar.
func BarChart(title string, bars []Bar, width int, format func(float64) string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(Heading.Render(title))
		b.WriteString("\n")
	}
	if len(bars) == 0 {
		b.WriteString(Dim.Render("(sin datos)"))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := 0
	peak := 0.0
	for _, bar := range bars {
		if w := lipgloss.Width(bar.Label); w > labelWidth {
			labelWidth = w
		}
		if bar.Value > peak {
			peak = bar.Value
		}
	}

	for _, bar := range bars {
		n := 0
		if peak > 0 && bar.Value > 0 {
			n = int(math.Round(bar.Value / peak * float64(width)))
			if n == 0 {
				n = 1
			}
		}

		drawn := strings.Repeat(BarRune, n)
		if bar.Color != "" {
			drawn = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(drawn)
		}

		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(bar.Label))
		b.WriteString(bar.Label + pad + " │" + drawn + " " + format(bar.Value) + "\n")
	}
	return b.String()
}

// Table renders rows under headers with a rounded border.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Dim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return Bold.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
