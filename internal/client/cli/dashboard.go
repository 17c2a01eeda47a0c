package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wastetrack/internal/client/dashboard"
	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/reports"
	"github.com/dmitrijs2005/wastetrack/internal/client/style"
)

const chartWidth = 40

// Dashboard prints the totals, the three charts and the recent records.
func (a *App) Dashboard(ctx context.Context) error {
	records, err := a.reports.Records(ctx)
	if err != nil {
		return err
	}
	a.println(renderDashboard(dashboard.Summarize(records)))
	return nil
}

func renderDashboard(s dashboard.Summary) string {
	var b strings.Builder
	b.WriteString(style.Heading.Render("Panel de control"))
	b.WriteString("\n")
	if s.Empty {
		b.WriteString(style.Dim.Render("Los gráficos aparecerán cuando registres residuos"))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Registros: %d   Peso total: %s\n\n", s.Count, reports.FormatKg(s.Total))

	b.WriteString(style.BarChart("Residuos por tipo", bars(s.ByType), chartWidth, reports.FormatKg))
	b.WriteString("\n")
	b.WriteString(style.BarChart("Distribución por ubicación", shareBars(s.ByLocation), chartWidth, percent))
	b.WriteString("\n")
	b.WriteString(style.BarChart("Tendencia diaria", dateBars(s.ByDate), chartWidth, reports.FormatKg))
	b.WriteString("\n")

	b.WriteString(style.Heading.Render("Registros recientes"))
	b.WriteString("\n")
	b.WriteString(recordTable(s.Recent, false))
	return b.String()
}

func bars(series []dashboard.Point) []style.Bar {
	out := make([]style.Bar, len(series))
	for i, p := range series {
		out[i] = style.Bar{Label: p.Label, Value: p.Value, Color: p.Color}
	}
	return out
}

func shareBars(series []dashboard.Point) []style.Bar {
	out := make([]style.Bar, len(series))
	for i, p := range series {
		out[i] = style.Bar{Label: p.Label, Value: dashboard.Share(series, p), Color: p.Color}
	}
	return out
}

func dateBars(series []dashboard.Point) []style.Bar {
	out := bars(series)
	for i := range out {
		out[i].Label = reports.FormatRecordDate(out[i].Label)
	}
	return out
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// recordTable renders records, optionally with a leading row number.
func recordTable(records []models.WasteRecord, numbered bool) string {
	headers := []string{"Fecha", "Hora", "Tipo", "Ubicación", "Peso", "Notas"}
	if numbered {
		headers = append([]string{"#"}, headers...)
	}
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		row := []string{reports.FormatRecordDate(r.Date), r.Time, r.Type, r.Location, reports.FormatKg(r.Weight), r.Notes}
		if numbered {
			row = append([]string{fmt.Sprint(i + 1)}, row...)
		}
		rows = append(rows, row)
	}
	return style.Table(headers, rows)
}
