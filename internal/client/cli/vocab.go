package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wastetrack/internal/client/style"
	"github.com/dmitrijs2005/wastetrack/internal/client/vocab"
)

// Vocab prints the label differences between the desk and tablet forms
// and any stored labels neither form offers, separating the labels of the
// retired tablet layout.
func (a *App) Vocab(ctx context.Context) error {
	records, err := a.reports.Records(ctx)
	if err != nil {
		return err
	}

	labels := make([]string, 0, 2*len(records))
	for _, r := range records {
		labels = append(labels, r.Type, r.Location)
	}
	a.println(renderVocab(vocab.Drift(), vocab.Unknown(labels)))
	return nil
}

func renderVocab(drift []vocab.Difference, unknown []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tipos de residuo: %d (escritorio), %d (tableta)\n", len(vocab.DeskWasteTypes), len(vocab.TabletWasteTypes))
	fmt.Fprintf(&b, "Ubicaciones: %d (escritorio), %d (tableta)\n", len(vocab.DeskLocations), len(vocab.TabletAreas))

	if len(drift) == 0 {
		b.WriteString(style.SuccessPrefix + " Los formularios usan el mismo vocabulario\n")
	} else {
		rows := make([][]string, len(drift))
		for i, d := range drift {
			rows[i] = []string{d.Table, d.Label, d.OnlyIn}
		}
		b.WriteString(style.WarningPrefix + " Diferencias de vocabulario\n")
		b.WriteString(style.Table([]string{"Tabla", "Etiqueta", "Sólo en"}, rows))
		b.WriteString("\n")
	}

	retired := vocab.Retired(unknown)
	if len(retired) > 0 {
		b.WriteString(style.WarningPrefix + " Etiquetas retiradas de la tableta: " + strings.Join(retired, ", ") + "\n")
	}
	if other := without(unknown, retired); len(other) > 0 {
		b.WriteString(style.WarningPrefix + " Etiquetas guardadas fuera del vocabulario: " + strings.Join(other, ", ") + "\n")
	}
	return b.String()
}

func without(labels, drop []string) []string {
	skip := make(map[string]struct{}, len(drop))
	for _, l := range drop {
		skip[l] = struct{}{}
	}
	var out []string
	for _, l := range labels {
		if _, ok := skip[l]; !ok {
			out = append(out, l)
		}
	}
	return out
}
