package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/reports"
	"github.com/dmitrijs2005/wastetrack/internal/client/style"
	"github.com/dmitrijs2005/wastetrack/internal/client/tui"
	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// allID is the picker id of the "no filter" entry.
const allID = "*"

var sortLabels = map[reports.SortKey]string{
	reports.SortDate:   "Fecha (más reciente primero)",
	reports.SortType:   "Tipo (A-Z)",
	reports.SortWeight: "Peso (mayor primero)",
}

// Report asks for a filter, prints the matching records and remembers the
// filter for export, send and delete.
func (a *App) Report(ctx context.Context) error {
	records, err := a.reports.Records(ctx)
	if err != nil {
		return err
	}

	f, err := a.askFilter(records)
	if err != nil {
		if errors.Is(err, errCancelled) {
			a.println("Reporte cancelado")
			return nil
		}
		return err
	}

	rep, err := a.reports.Run(ctx, f)
	if err != nil {
		return err
	}
	a.filter = f
	a.lastReport = rep.Records
	a.println(renderReport(rep))
	return nil
}

func (a *App) askFilter(records []models.WasteRecord) (reports.Filter, error) {
	f := a.filter

	periodItems := make([]tui.Item, len(reports.Periods))
	for i, p := range reports.Periods {
		periodItems[i] = tui.Item{ID: string(p), Label: p.Label()}
	}
	p, err := a.pickOne("Periodo", periodItems)
	if err != nil {
		return f, err
	}
	if f.Period, err = reports.ParsePeriod(p); err != nil {
		return f, err
	}

	f.Start, f.End = "", ""
	if f.Period == reports.PeriodCustom {
		if f.Start, err = a.ask("Fecha inicio (AAAA-MM-DD)"); err != nil {
			return f, err
		}
		if f.End, err = a.ask("Fecha fin (AAAA-MM-DD)"); err != nil {
			return f, err
		}
	}

	if f.Type, err = a.pickFilterValue("Tipo de residuo", "Todos los tipos", reports.DistinctTypes(records)); err != nil {
		return f, err
	}
	if f.Location, err = a.pickFilterValue("Ubicación", "Todas las ubicaciones", reports.DistinctLocations(records)); err != nil {
		return f, err
	}

	sortItems := []tui.Item{
		{ID: string(reports.SortDate), Label: sortLabels[reports.SortDate]},
		{ID: string(reports.SortType), Label: sortLabels[reports.SortType]},
		{ID: string(reports.SortWeight), Label: sortLabels[reports.SortWeight]},
	}
	s, err := a.pickOne("Ordenar por", sortItems)
	if err != nil {
		return f, err
	}
	if f.Sort, err = reports.ParseSortKey(s); err != nil {
		return f, err
	}
	return f, nil
}

// pickFilterValue offers values plus an "all" entry, which maps to "".
func (a *App) pickFilterValue(title, allLabel string, values []string) (string, error) {
	items := append([]tui.Item{{ID: allID, Label: allLabel}}, labelItems(values)...)
	v, err := a.pickOne(title, items)
	if err != nil {
		return "", err
	}
	if v == allID {
		return "", nil
	}
	return v, nil
}

func renderReport(rep reports.Report) string {
	var b strings.Builder
	b.WriteString(style.Heading.Render(fmt.Sprintf("Reporte %s", rep.Filter.Period.Label())))
	b.WriteString("\n")
	if rep.Range.Empty() {
		b.WriteString(style.Dim.Render("Rango de fechas vacío"))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Del %s al %s\n", reports.FormatDate(rep.Range.Start), reports.FormatDate(rep.Range.End))
	}
	fmt.Fprintf(&b, "Registros: %d   Peso total: %s   Promedio: %s\n",
		rep.Stats.Count, reports.FormatKg(rep.Stats.Total), reports.FormatKg(rep.Stats.Average))
	fmt.Fprintf(&b, "Tipos: %d   Ubicaciones: %d\n", rep.Stats.Types, rep.Stats.Locations)

	if len(rep.Records) == 0 {
		b.WriteString(style.Dim.Render("No hay registros para el periodo seleccionado"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(recordTable(rep.Records, true))
	return b.String()
}

// Export writes the last report query as a JSON document.
func (a *App) Export(ctx context.Context) error {
	path, doc, err := a.reports.Export(ctx, a.filter)
	if err != nil {
		return err
	}
	a.printf("%s Reporte exportado (%d registros): %s\n", style.SuccessPrefix, doc.Stats.Count, path)
	return nil
}

// Send delivers the last report query to every active recipient.
func (a *App) Send(ctx context.Context) error {
	res, err := a.reports.Send(ctx, a.filter)
	if err != nil {
		return err
	}
	a.println(style.SuccessPrefix, res.Message)
	return nil
}

// Delete removes one row of the last report after confirmation. Without a
// previous report the current filter is run first. The report is printed
// again after every deletion so row numbers always match the screen.
func (a *App) Delete(ctx context.Context) error {
	if a.lastReport == nil {
		rep, err := a.reports.Run(ctx, a.filter)
		if err != nil {
			return err
		}
		a.lastReport = rep.Records
		a.println(renderReport(rep))
	}
	if len(a.lastReport) == 0 {
		a.println("No hay registros para eliminar")
		return nil
	}

	answer, err := a.ask(fmt.Sprintf("Número de registro a eliminar (1-%d)", len(a.lastReport)))
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(a.lastReport) {
		return fmt.Errorf("número de registro inválido %q: %w", answer, common.ErrValidation)
	}
	rec := a.lastReport[n-1]

	prompt := fmt.Sprintf("Registro %d: %s\n¿Está seguro de que desea eliminar este registro?", n, describeRecord(rec))
	ok, err := Confirm(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Eliminación cancelada")
		return nil
	}

	if _, err := a.reports.Delete(ctx, rec.ID); err != nil {
		return err
	}
	rep, err := a.reports.Run(ctx, a.filter)
	if err != nil {
		return err
	}
	a.lastReport = rep.Records
	a.printf("%s Registro eliminado (%s)\n", style.SuccessPrefix, describeRecord(rec))
	a.println(renderReport(rep))
	return nil
}

func describeRecord(r models.WasteRecord) string {
	return fmt.Sprintf("%s, %s, %s, %s %s", r.Type, r.Location, reports.FormatKg(r.Weight), reports.FormatRecordDate(r.Date), r.Time)
}
