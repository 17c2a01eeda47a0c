package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/auth"
	"github.com/dmitrijs2005/wastetrack/internal/client/config"
	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/notify"
	"github.com/dmitrijs2005/wastetrack/internal/client/reports"
	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/store"
	"github.com/dmitrijs2005/wastetrack/internal/client/storage"
	"github.com/dmitrijs2005/wastetrack/internal/client/tui"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
)

// App is the interactive client. It owns the storage handle and the
// current session.
type App struct {
	config  *config.Config
	storage *storage.Storage
	store   *store.Store
	auth    auth.Service
	reports reports.Service
	logger  logging.Logger

	session *auth.Session
	// filter is the last report query; export, send and delete reuse it.
	filter reports.Filter
	// lastReport holds the rows of the last printed report so delete can
	// take a row number.
	lastReport []models.WasteRecord

	reader      *bufio.Reader
	out         io.Writer
	now         func() time.Time
	interactive bool
}

// NewApp opens the database, brings the store to the current schema and
// wires the services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	st, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", c.DatabasePath, err)
	}

	err = st.InTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		return store.New(repo, logger, nil).Initialize(ctx)
	})
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	a := newApp(c, store.New(st.KV, logger, nil), logger, bufio.NewReader(os.Stdin), os.Stdout, time.Now)
	a.storage = st
	a.interactive = isTerminal(int(os.Stdin.Fd()))
	return a, nil
}

func newApp(c *config.Config, s *store.Store, logger logging.Logger, reader *bufio.Reader, out io.Writer, now func() time.Time) *App {
	return &App{
		config: c,
		store:  s,
		auth:   auth.NewService(s.Users, s.Session, logger, now),
		reports: reports.NewService(s.Records, s.Emails, notify.NewLogSender(logger), logger, reports.Options{
			HotelName: c.HotelName,
			ExportDir: c.ExportDir,
			Now:       now,
		}),
		logger: logger,
		filter: defaultFilter(),
		reader: reader,
		out:    out,
		now:    now,
	}
}

// Run restores a persisted session, if any, and blocks in the REPL until
// the user exits.
func (a *App) Run(ctx context.Context) {
	a.println("wastetrack - registro de residuos (escribe 'help' para ver los comandos)")

	sess, err := a.auth.Resume(ctx)
	switch {
	case err == nil:
		a.session = &sess
		a.printf("Sesión activa: %s (%s)\n", sess.User.Name, sess.User.Role)
	case errors.Is(err, common.ErrNotAuthenticated):
	default:
		a.logger.Warn(ctx, "session not restored", "error", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.logger)
}

// Close releases the database and its lock.
func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Close()
}

func defaultFilter() reports.Filter {
	return reports.Filter{Period: reports.PeriodDaily, Sort: reports.SortDate}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) currentRole() models.Role {
	if a.session == nil {
		return ""
	}
	return a.session.User.Role
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s/%s)", a.session.User.Username, a.session.User.Role)
}

// pick shows a picker: the Bubble Tea widget on a terminal, a numbered
// prompt otherwise.
func (a *App) pick(title string, items []tui.Item, multi bool, preselected ...string) ([]string, bool, error) {
	if a.interactive {
		return runPicker(title, items, multi, preselected...)
	}
	return PromptPick(a.reader, a.out, title, items, multi, preselected...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
