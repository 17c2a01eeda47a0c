package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/style"
	"github.com/dmitrijs2005/wastetrack/internal/client/tui"
)

// Emails lists the report recipients.
func (a *App) Emails(ctx context.Context) error {
	list, err := a.reports.Emails(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No hay correos configurados")
		return nil
	}

	rows := make([][]string, len(list))
	for i, e := range list {
		rows[i] = []string{e.Name, e.Email, activeLabel(e.Active)}
	}
	a.println(style.Table([]string{"Nombre", "Correo", "Estado"}, rows))
	return nil
}

// AddEmail prompts for a name and an address and stores an active recipient.
func (a *App) AddEmail(ctx context.Context) error {
	name, err := a.ask("Nombre")
	if err != nil {
		return err
	}
	email, err := a.ask("Correo electrónico")
	if err != nil {
		return err
	}

	e, err := a.reports.AddEmail(ctx, name, email)
	if err != nil {
		return err
	}
	a.printf("%s Correo agregado: %s <%s>\n", style.SuccessPrefix, e.Name, e.Email)
	return nil
}

// DeleteEmail removes a recipient chosen from the list.
func (a *App) DeleteEmail(ctx context.Context) error {
	e, ok, err := a.pickEmail(ctx, "Correo a eliminar")
	if err != nil || !ok {
		return err
	}
	if err := a.reports.DeleteEmail(ctx, e.ID); err != nil {
		return err
	}
	a.printf("%s Correo eliminado: %s\n", style.SuccessPrefix, e.Email)
	return nil
}

// ToggleEmail flips the active flag of a recipient chosen from the list.
func (a *App) ToggleEmail(ctx context.Context) error {
	e, ok, err := a.pickEmail(ctx, "Correo a activar/desactivar")
	if err != nil || !ok {
		return err
	}
	updated, err := a.reports.ToggleEmail(ctx, e.ID)
	if err != nil {
		return err
	}
	a.printf("%s %s: %s\n", style.SuccessPrefix, updated.Email, activeLabel(updated.Active))
	return nil
}

func (a *App) pickEmail(ctx context.Context, title string) (models.EmailConfig, bool, error) {
	list, err := a.reports.Emails(ctx)
	if err != nil {
		return models.EmailConfig{}, false, err
	}
	if len(list) == 0 {
		a.println("No hay correos configurados")
		return models.EmailConfig{}, false, nil
	}

	items := make([]tui.Item, len(list))
	for i, e := range list {
		items[i] = tui.Item{ID: e.ID, Label: e.Name + " <" + e.Email + "> " + activeLabel(e.Active)}
	}
	id, err := a.pickOne(title, items)
	if errors.Is(err, errCancelled) {
		return models.EmailConfig{}, false, nil
	}
	if err != nil {
		return models.EmailConfig{}, false, err
	}
	for _, e := range list {
		if e.ID == id {
			return e, true, nil
		}
	}
	return models.EmailConfig{}, false, nil
}

func activeLabel(active bool) string {
	if active {
		return "activo"
	}
	return "inactivo"
}
