package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/style"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	currentRole() models.Role
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Capture(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Report(ctx context.Context) error
	Export(ctx context.Context) error
	Delete(ctx context.Context) error
	Emails(ctx context.Context) error
	AddEmail(ctx context.Context) error
	DeleteEmail(ctx context.Context) error
	ToggleEmail(ctx context.Context) error
	Send(ctx context.Context) error
	Vocab(ctx context.Context) error
}

var loggedOutCommands = []string{"help", "login", "exit"}

// commandsFor lists the commands of a role in help order.
func commandsFor(role models.Role) []string {
	switch role {
	case models.RoleAdmin:
		return []string{"help", "capture", "dashboard", "report", "export", "delete",
			"emails", "addemail", "delemail", "toggleemail", "send", "vocab", "logout", "exit"}
	case models.RoleOperator:
		return []string{"help", "capture", "logout", "exit"}
	default:
		return loggedOutCommands
	}
}

func allowed(cmds []string, cmd string) bool {
	if cmd == "quit" {
		cmd = "exit"
	}
	for _, c := range cmds {
		if c == cmd {
			return true
		}
	}
	return false
}

// runREPL starts a simple read–eval–print loop for the wastetrack CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands outside the current role are
// refused. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help          : show available commands
//	  - login         : authenticate
//	  - exit | quit   : leave the program
//
//	Operator:
//	  - capture       : multi-select tablet capture
//	  - logout, exit | quit
//
//	Admin:
//	  - capture       : desk capture form
//	  - dashboard     : charts and recent records
//	  - report        : filter, sort and list records
//	  - export        : write the last report as JSON
//	  - delete        : delete a record (asks for confirmation)
//	  - emails, addemail, delemail, toggleemail: recipient management
//	  - send          : send the last report to active recipients
//	  - vocab         : vocabularies and their drift
//	  - logout, exit | quit
//
// Handler errors are logged and shown to the user; the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, logger logging.Logger) {
	for {
		printlnFn(fmt.Sprintf("wt%s> ", prefixSpace(statusFn())))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		cmds := loggedOutCommands
		if a.isLoggedIn() {
			cmds = commandsFor(a.currentRole())
		}
		if !allowed(cmds, cmd) {
			if !a.isLoggedIn() && allowed(commandsFor(models.RoleAdmin), cmd) {
				printlnFn("Inicia sesión primero (login)")
			} else if a.isLoggedIn() && allowed(commandsFor(models.RoleAdmin), cmd) {
				printlnFn("Comando no disponible para tu rol:", cmd)
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		var handler func(context.Context) error
		switch cmd {
		case "help":
			printlnFn("Available commands: " + strings.Join(cmds, ", "))
		case "login":
			handler = a.Login
		case "logout":
			handler = a.Logout
		case "capture":
			handler = a.Capture
		case "dashboard":
			handler = a.Dashboard
		case "report":
			handler = a.Report
		case "export":
			handler = a.Export
		case "delete":
			handler = a.Delete
		case "emails":
			handler = a.Emails
		case "addemail":
			handler = a.AddEmail
		case "delemail":
			handler = a.DeleteEmail
		case "toggleemail":
			handler = a.ToggleEmail
		case "send":
			handler = a.Send
		case "vocab":
			handler = a.Vocab
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if handler == nil {
			continue
		}
		if err := handler(ctx); err != nil {
			logger.Error(ctx, "command failed", "command", cmd, "error", err)
			printlnFn(style.ErrorPrefix, userMessage(err))
		}
	}
}

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Usuario o contraseña incorrectos"
	case errors.Is(err, common.ErrNoActiveRecipients):
		return "No hay correos configurados para enviar el reporte"
	case errors.Is(err, common.ErrorNotFound):
		return "No encontrado"
	case errors.Is(err, common.ErrNotAuthenticated):
		return "Inicia sesión primero (login)"
	default:
		return err.Error()
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
