package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wastetrack/internal/client/style"
)

// Login prompts for username and password and opens a session. A failed
// attempt returns common.ErrInvalidCredentials and leaves the App logged
// out.
func (a *App) Login(ctx context.Context) error {
	if a.session != nil {
		a.printf("Ya has iniciado sesión como %s\n", a.session.User.Username)
		return nil
	}

	username, err := a.ask("Usuario")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	a.session = &sess
	a.filter = defaultFilter()
	a.lastReport = nil

	a.println(fmt.Sprintf("%s Bienvenido, %s", style.SuccessPrefix, sess.User.Name))
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	a.lastReport = nil
	a.println("Sesión cerrada")
	return nil
}
