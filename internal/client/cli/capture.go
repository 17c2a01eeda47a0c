package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wastetrack/internal/client/capture"
	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/reports"
	"github.com/dmitrijs2005/wastetrack/internal/client/style"
	"github.com/dmitrijs2005/wastetrack/internal/client/tui"
	"github.com/dmitrijs2005/wastetrack/internal/client/vocab"
	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// errCancelled is returned when the user leaves a picker without choosing.
var errCancelled = errors.New("cancelled")

type captureFlow func(ctx context.Context, a *App) error

// captureFlowFor maps every role to its capture form.
func captureFlowFor(role models.Role) captureFlow {
	switch role {
	case models.RoleAdmin:
		return deskCapture
	case models.RoleOperator:
		return tabletCapture
	default:
		return nil
	}
}

// Capture runs the capture form of the current role.
func (a *App) Capture(ctx context.Context) error {
	if a.session == nil {
		return common.ErrNotAuthenticated
	}
	flow := captureFlowFor(a.currentRole())
	if flow == nil {
		return fmt.Errorf("no capture form for role %q", a.currentRole())
	}
	err := flow(ctx, a)
	if errors.Is(err, errCancelled) {
		a.println("Captura cancelada")
		return nil
	}
	return err
}

func labelItems(labels []string) []tui.Item {
	items := make([]tui.Item, len(labels))
	for i, l := range labels {
		items[i] = tui.Item{ID: l, Label: l}
	}
	return items
}

func entryItems(entries []vocab.Entry) []tui.Item {
	items := make([]tui.Item, len(entries))
	for i, e := range entries {
		items[i] = tui.Item{ID: e.ID, Label: e.Name, Special: e.Special}
	}
	return items
}

func (a *App) pickOne(title string, items []tui.Item) (string, error) {
	ids, ok, err := a.pick(title, items, false)
	if err != nil {
		return "", err
	}
	if !ok || len(ids) == 0 {
		return "", errCancelled
	}
	return ids[0], nil
}

// askDefault prompts with a default value that an empty answer keeps.
func (a *App) askDefault(prompt, def string) (string, error) {
	v, err := a.ask(fmt.Sprintf("%s [%s]", prompt, def))
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

func deskCapture(ctx context.Context, a *App) error {
	form := capture.NewDeskForm(a.store.Records, a.session.User.ID, a.now)

	var err error
	if form.Type, err = a.pickOne("Tipo de residuo", labelItems(vocab.DeskWasteTypes)); err != nil {
		return err
	}
	if form.Location, err = a.pickOne("Ubicación", labelItems(vocab.DeskLocations)); err != nil {
		return err
	}
	if form.Weight, err = a.ask("Peso (kg)"); err != nil {
		return err
	}
	if form.Date, err = a.askDefault("Fecha (AAAA-MM-DD)", form.Date); err != nil {
		return err
	}
	if form.Time, err = a.askDefault("Hora (HH:MM)", form.Time); err != nil {
		return err
	}
	if form.Notes, err = a.ask("Notas (opcional)"); err != nil {
		return err
	}

	rec, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	a.printf("%s Registro guardado: %s, %s, %s\n", style.SuccessPrefix, rec.Type, rec.Location, reports.FormatKg(rec.Weight))
	return nil
}

func tabletCapture(ctx context.Context, a *App) error {
	form := capture.NewTabletForm(a.store.Records, a.session.User.ID, a.now)

	ids, ok, err := a.pick("Tipos de residuo (selección múltiple)", entryItems(vocab.TabletWasteTypes), true)
	if err != nil {
		return err
	}
	if !ok || len(ids) == 0 {
		return errCancelled
	}
	for _, id := range ids {
		if err := form.Toggle(id); err != nil {
			return err
		}
	}

	for _, id := range form.Selected() {
		e, _ := vocab.TabletType(id)
		w, err := a.ask(fmt.Sprintf("Peso de %s (kg)", e.Name))
		if err != nil {
			return err
		}
		if err := form.SetWeight(id, w); err != nil {
			return err
		}
		note, err := a.ask(fmt.Sprintf("Nota para %s (opcional)", e.Name))
		if err != nil {
			return err
		}
		if err := form.SetNote(id, note); err != nil {
			return err
		}
	}

	area, err := a.pickOne("Área", entryItems(vocab.TabletAreas))
	if err != nil {
		return err
	}
	form.SelectArea(area)

	written, err := form.Submit(ctx)
	for _, rec := range written {
		a.printf("%s %s: %s\n", style.SuccessPrefix, rec.Type, reports.FormatKg(rec.Weight))
	}
	if err != nil {
		return err
	}
	a.printf("%s %d registro(s) guardado(s) en %s\n", style.SuccessPrefix, len(written), vocab.AreaName(area))
	return nil
}
