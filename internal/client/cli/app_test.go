package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/config"
	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/reports"
	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/store"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// newTestApp builds an App over an in-memory store that reads the given
// lines as user input.
func newTestApp(t *testing.T, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	st := store.New(kv.NewMemoryRepository(), logging.Discard(), clock)
	require.NoError(t, st.Initialize(context.Background()))

	cfg := &config.Config{ExportDir: t.TempDir(), HotelName: "Hotel de Prueba"}
	out := &bytes.Buffer{}
	input := strings.Join(lines, "\n")
	if input != "" {
		input += "\n"
	}
	a := newApp(cfg, st, logging.Discard(), bufio.NewReader(strings.NewReader(input)), out, clock)
	return a, out
}

func loginAs(t *testing.T, a *App, username, password string) {
	t.Helper()
	sess, err := a.auth.Login(context.Background(), username, password)
	require.NoError(t, err)
	a.session = &sess
}

func addRecord(t *testing.T, a *App, typ, location string, weight float64, date string) models.WasteRecord {
	t.Helper()
	rec, err := a.store.Records.Add(context.Background(), models.WasteRecord{
		Type: typ, Location: location, Weight: weight, Date: date, Time: "09:00", CreatedBy: "1",
	})
	require.NoError(t, err)
	return rec
}

func records(t *testing.T, a *App) []models.WasteRecord {
	t.Helper()
	all, err := a.store.Records.GetAll(context.Background())
	require.NoError(t, err)
	return all
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	ctx := context.Background()

	a, out := newTestApp(t, "admin", "admin123")
	require.NoError(t, a.Login(ctx))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, models.RoleAdmin, a.currentRole())
	assert.Contains(t, out.String(), "Administrador del Sistema")
	assert.Equal(t, "(admin/admin)", a.getStatus())

	b, _ := newTestApp(t, "admin", "wrong")
	err := b.Login(ctx)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, b.isLoggedIn())
	assert.Equal(t, "Usuario o contraseña incorrectos", userMessage(err))
}

func TestLogout_ClearsSession(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	loginAs(t, a, "operador", "op123")

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, models.Role(""), a.currentRole())

	_, err := a.auth.Resume(ctx)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestCaptureFlowFor(t *testing.T) {
	assert.NotNil(t, captureFlowFor(models.RoleAdmin))
	assert.NotNil(t, captureFlowFor(models.RoleOperator))
	assert.Nil(t, captureFlowFor(models.Role("")))
}

func TestCapture_RequiresSession(t *testing.T) {
	a, _ := newTestApp(t)
	require.ErrorIs(t, a.Capture(context.Background()), common.ErrNotAuthenticated)
}

func TestCapture_DeskForm(t *testing.T) {
	// type 1, location 1, weight, default date, default time, notes
	a, out := newTestApp(t, "1", "1", "2.5", "", "", "turno matutino")
	loginAs(t, a, "admin", "admin123")

	require.NoError(t, a.Capture(context.Background()))

	all := records(t, a)
	require.Len(t, all, 1)
	assert.Equal(t, "Orgánicos", all[0].Type)
	assert.Equal(t, "Áreas públicas", all[0].Location)
	assert.Equal(t, 2.5, all[0].Weight)
	assert.Equal(t, "2024-06-15", all[0].Date)
	assert.Equal(t, "10:30", all[0].Time)
	assert.Equal(t, "turno matutino", all[0].Notes)
	assert.Equal(t, "1", all[0].CreatedBy)
	assert.Contains(t, out.String(), "Registro guardado")
}

func TestCapture_DeskFormInvalidWeight(t *testing.T) {
	a, _ := newTestApp(t, "1", "1", "abc", "", "", "")
	loginAs(t, a, "admin", "admin123")

	err := a.Capture(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, records(t, a))
}

func TestCapture_DeskFormCancelled(t *testing.T) {
	// empty answer cancels a single-choice pick
	a, out := newTestApp(t, "")
	loginAs(t, a, "admin", "admin123")

	require.NoError(t, a.Capture(context.Background()))
	assert.Empty(t, records(t, a))
	assert.Contains(t, out.String(), "Captura cancelada")
}

func TestCapture_TabletForm(t *testing.T) {
	// types 2 and 1, weight+note for each in vocabulary order, area 2
	a, out := newTestApp(t, "2,1", "1.5", "", "2", "cáscaras", "2")
	loginAs(t, a, "operador", "op123")

	require.NoError(t, a.Capture(context.Background()))

	all := records(t, a)
	require.Len(t, all, 2)
	assert.Equal(t, "Orgánicos", all[0].Type)
	assert.Equal(t, 1.5, all[0].Weight)
	assert.Empty(t, all[0].Notes)
	assert.Equal(t, "Orgánicos (naranja/limón)", all[1].Type)
	assert.Equal(t, 2.0, all[1].Weight)
	assert.Equal(t, "cáscaras", all[1].Notes)
	for _, r := range all {
		assert.Equal(t, "Albercas", r.Location)
		assert.Equal(t, "2024-06-15", r.Date)
		assert.Equal(t, "2", r.CreatedBy)
	}
	assert.Contains(t, out.String(), "2 registro(s) guardado(s) en Albercas")
}

func TestCapture_TabletFormRejectsZeroWeight(t *testing.T) {
	a, _ := newTestApp(t, "1", "0", "", "1")
	loginAs(t, a, "operador", "op123")

	err := a.Capture(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, records(t, a))
}

func TestDashboard_EmptyAndPopulated(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	loginAs(t, a, "admin", "admin123")

	require.NoError(t, a.Dashboard(ctx))
	assert.Contains(t, out.String(), "Los gráficos aparecerán cuando registres residuos")

	out.Reset()
	addRecord(t, a, "Orgánicos", "Cocina", 3, "2024-06-15")
	addRecord(t, a, "Pet", "Bar", 1, "2024-06-14")
	require.NoError(t, a.Dashboard(ctx))

	s := out.String()
	assert.Contains(t, s, "Registros: 2")
	assert.Contains(t, s, "Residuos por tipo")
	assert.Contains(t, s, "75.0%")
	assert.Contains(t, s, "Registros recientes")
}

func TestReport_FilterAndRemember(t *testing.T) {
	ctx := context.Background()
	// monthly, all types, location "Cocina" (second entry), sort by weight
	a, out := newTestApp(t, "3", "1", "2", "3")
	loginAs(t, a, "admin", "admin123")

	addRecord(t, a, "Orgánicos", "Cocina", 1, "2024-06-01")
	addRecord(t, a, "Pet", "Bar", 5, "2024-06-10")
	addRecord(t, a, "Pet", "Cocina", 4, "2024-06-12")
	addRecord(t, a, "Pet", "Cocina", 9, "2024-05-31")

	require.NoError(t, a.Report(ctx))

	require.Len(t, a.lastReport, 2)
	assert.Equal(t, 4.0, a.lastReport[0].Weight)
	assert.Equal(t, 1.0, a.lastReport[1].Weight)
	assert.Equal(t, "Cocina", a.filter.Location)
	assert.Empty(t, a.filter.Type)
	assert.Contains(t, out.String(), "Reporte Mensual")
	assert.Contains(t, out.String(), "Registros: 2")
}

func TestReport_CustomRange(t *testing.T) {
	a, _ := newTestApp(t, "4", "2024-06-10", "2024-06-12", "1", "1", "1")
	loginAs(t, a, "admin", "admin123")

	addRecord(t, a, "Pet", "Bar", 5, "2024-06-10")
	addRecord(t, a, "Pet", "Bar", 2, "2024-06-13")

	require.NoError(t, a.Report(context.Background()))
	require.Len(t, a.lastReport, 1)
	assert.Equal(t, "2024-06-10", a.lastReport[0].Date)
}

func TestDelete_ConfirmedAndDeclined(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, "1", "n", "1", "s")
	loginAs(t, a, "admin", "admin123")

	addRecord(t, a, "Pet", "Bar", 5, "2024-06-15")
	addRecord(t, a, "Orgánicos", "Cocina", 2, "2024-06-15")

	// declined: nothing removed
	require.NoError(t, a.Delete(ctx))
	assert.Len(t, records(t, a), 2)
	assert.Contains(t, out.String(), "¿Está seguro de que desea eliminar este registro?")

	require.NoError(t, a.Delete(ctx))
	left := records(t, a)
	require.Len(t, left, 1)
	assert.Len(t, a.lastReport, 1)
}

func TestDelete_RowNumbersFollowReprintedReport(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, "1", "s", "1", "s")
	loginAs(t, a, "admin", "admin123")
	a.filter = reports.Filter{Period: reports.PeriodDaily, Sort: reports.SortWeight}

	addRecord(t, a, "Vidrio", "Bar", 1, "2024-06-15")
	addRecord(t, a, "Aluminio", "Bar", 3, "2024-06-15")
	addRecord(t, a, "Cartón", "Bar", 2, "2024-06-15")

	require.NoError(t, a.Delete(ctx))
	s := out.String()
	assert.Contains(t, s, "Registro 1: Aluminio, Bar")
	after := s[strings.Index(s, "Registro eliminado"):]
	after = after[strings.Index(after, "\n"):]
	assert.NotContains(t, after, "Aluminio")
	assert.Less(t, strings.Index(after, "Cartón"), strings.Index(after, "Vidrio"), "reprinted table is sorted by weight")

	// row 1 of the reprinted table is Cartón
	out.Reset()
	require.NoError(t, a.Delete(ctx))
	assert.Contains(t, out.String(), "Registro 1: Cartón, Bar")

	left := records(t, a)
	require.Len(t, left, 1)
	assert.Equal(t, "Vidrio", left[0].Type)
}

func TestDelete_InvalidRow(t *testing.T) {
	a, _ := newTestApp(t, "7")
	loginAs(t, a, "admin", "admin123")
	addRecord(t, a, "Pet", "Bar", 5, "2024-06-15")

	require.ErrorIs(t, a.Delete(context.Background()), common.ErrValidation)
	assert.Len(t, records(t, a), 1)
}

func TestExport_WritesFile(t *testing.T) {
	a, out := newTestApp(t)
	loginAs(t, a, "admin", "admin123")
	addRecord(t, a, "Pet", "Bar", 5, "2024-06-15")

	require.NoError(t, a.Export(context.Background()))

	entries, err := os.ReadDir(a.config.ExportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(a.config.ExportDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hotel": "Hotel de Prueba"`)
	assert.Contains(t, out.String(), "Reporte exportado (1 registros)")
}

func TestSend_NeedsActiveRecipient(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, "Ana", "ana@example.com")
	loginAs(t, a, "admin", "admin123")

	err := a.Send(ctx)
	require.ErrorIs(t, err, common.ErrNoActiveRecipients)
	assert.Equal(t, "No hay correos configurados para enviar el reporte", userMessage(err))

	require.NoError(t, a.AddEmail(ctx))
	require.NoError(t, a.Send(ctx))
	assert.Contains(t, out.String(), "Reporte enviado a 1 destinatario(s): ana@example.com")
}

func TestEmails_AddToggleDelete(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t,
		"Ana", "ana@example.com",
		"1", // toggle
		"1", // delete
	)
	loginAs(t, a, "admin", "admin123")

	require.NoError(t, a.AddEmail(ctx))
	require.NoError(t, a.ToggleEmail(ctx))

	list, err := a.reports.Emails(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Active)

	out.Reset()
	require.NoError(t, a.Emails(ctx))
	assert.Contains(t, out.String(), "inactivo")

	require.NoError(t, a.DeleteEmail(ctx))
	list, err = a.reports.Emails(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	out.Reset()
	require.NoError(t, a.Emails(ctx))
	assert.Contains(t, out.String(), "No hay correos configurados")
}

func TestAddEmail_Invalid(t *testing.T) {
	a, _ := newTestApp(t, "Ana", "no-es-correo")
	loginAs(t, a, "admin", "admin123")
	require.ErrorIs(t, a.AddEmail(context.Background()), common.ErrValidation)
}

func TestVocab_ReportsUnknownLabels(t *testing.T) {
	a, out := newTestApp(t)
	loginAs(t, a, "admin", "admin123")
	addRecord(t, a, "Unicel", "Azotea", 1, "2024-06-15")
	addRecord(t, a, "Papel y Cartón", "Playa", 2, "2024-06-15")

	require.NoError(t, a.Vocab(context.Background()))
	assert.Contains(t, out.String(), "Etiquetas retiradas de la tableta: Papel y Cartón, Playa")
	assert.Contains(t, out.String(), "Etiquetas guardadas fuera del vocabulario: Unicel, Azotea")
}
