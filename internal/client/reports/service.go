package reports

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/notify"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/filex"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
)

// RecordStore is the part of the record collection reports need.
type RecordStore interface {
	GetAll(ctx context.Context) ([]models.WasteRecord, error)
	Delete(ctx context.Context, id string) error
}

// EmailStore is the recipient collection.
type EmailStore interface {
	GetAll(ctx context.Context) ([]models.EmailConfig, error)
	Add(ctx context.Context, e models.EmailConfig) (models.EmailConfig, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(models.EmailConfig) models.EmailConfig) (models.EmailConfig, error)
}

// Options configures a Service.
type Options struct {
	HotelName string
	ExportDir string
	// Now is the report clock; nil means time.Now.
	Now func() time.Time
}

// SendResult describes a simulated report delivery.
type SendResult struct {
	Recipients []string
	Message    string
}

// Service defines the report operations of the admin views.
//
// Contract:
//   - Records: every stored record, insertion order.
//   - Run: filter, sort and summarize the stored records.
//   - Delete: remove one record and return the refetched list.
//   - Export: write the report document into the export dir.
//   - Send: notify every active recipient, or common.ErrNoActiveRecipients.
//   - Emails/AddEmail/DeleteEmail/ToggleEmail: recipient management.
type Service interface {
	Records(ctx context.Context) ([]models.WasteRecord, error)
	Run(ctx context.Context, f Filter) (Report, error)
	Delete(ctx context.Context, id string) ([]models.WasteRecord, error)
	Export(ctx context.Context, f Filter) (string, Document, error)
	Send(ctx context.Context, f Filter) (SendResult, error)

	Emails(ctx context.Context) ([]models.EmailConfig, error)
	AddEmail(ctx context.Context, name, email string) (models.EmailConfig, error)
	DeleteEmail(ctx context.Context, id string) error
	ToggleEmail(ctx context.Context, id string) (models.EmailConfig, error)
}

type service struct {
	records RecordStore
	emails  EmailStore
	sender  notify.Sender
	logger  logging.Logger
	opts    Options
}

func NewService(records RecordStore, emails EmailStore, sender notify.Sender, logger logging.Logger, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.HotelName == "" {
		opts.HotelName = DefaultHotelName
	}
	return &service{records: records, emails: emails, sender: sender, logger: logger, opts: opts}
}

func (s *service) Records(ctx context.Context) ([]models.WasteRecord, error) {
	return s.records.GetAll(ctx)
}

func (s *service) Run(ctx context.Context, f Filter) (Report, error) {
	all, err := s.records.GetAll(ctx)
	if err != nil {
		return Report{}, err
	}
	return Run(all, f, s.opts.Now())
}

func (s *service) Delete(ctx context.Context, id string) ([]models.WasteRecord, error) {
	if err := s.records.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete record %s: %w", id, err)
	}
	s.logger.Info(ctx, "record deleted", "id", id)
	return s.records.GetAll(ctx)
}

func (s *service) Export(ctx context.Context, f Filter) (string, Document, error) {
	rep, err := s.Run(ctx, f)
	if err != nil {
		return "", Document{}, err
	}

	doc := NewDocument(s.opts.HotelName, rep, s.opts.Now())
	data, err := doc.Marshal()
	if err != nil {
		return "", Document{}, fmt.Errorf("encode report: %w", err)
	}

	path, err := filex.WriteFileAtomic(s.opts.ExportDir, Filename(rep.Filter.Period, rep.Range), data)
	if err != nil {
		return "", Document{}, fmt.Errorf("write report: %w", err)
	}

	s.logger.Info(ctx, "report exported", "path", path, "records", rep.Stats.Count)
	return path, doc, nil
}

func (s *service) Send(ctx context.Context, f Filter) (SendResult, error) {
	all, err := s.emails.GetAll(ctx)
	if err != nil {
		return SendResult{}, err
	}

	var recipients []notify.Recipient
	for _, e := range all {
		if e.Active {
			recipients = append(recipients, notify.Recipient{Name: e.Name, Email: e.Email})
		}
	}
	if len(recipients) == 0 {
		return SendResult{}, common.ErrNoActiveRecipients
	}

	rep, err := s.Run(ctx, f)
	if err != nil {
		return SendResult{}, err
	}
	doc := NewDocument(s.opts.HotelName, rep, s.opts.Now())

	n := notify.Notification{
		Subject:    fmt.Sprintf("%s - %s", doc.Title, doc.Hotel),
		Body:       notificationBody(doc),
		Recipients: recipients,
		Attachment: Filename(rep.Filter.Period, rep.Range),
	}
	if err := s.sender.Send(ctx, n); err != nil {
		return SendResult{}, fmt.Errorf("send via %s: %w", s.sender.Name(), err)
	}

	addrs := n.Addresses()
	return SendResult{
		Recipients: addrs,
		Message:    fmt.Sprintf("Reporte enviado a %d destinatario(s): %s", len(addrs), strings.Join(addrs, ", ")),
	}, nil
}

func notificationBody(d Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.Title)
	fmt.Fprintf(&b, "%s\n", d.Hotel)
	fmt.Fprintf(&b, "Periodo: %s (%s - %s)\n", d.Period.Kind, d.Period.Start, d.Period.End)
	fmt.Fprintf(&b, "Total de registros: %d\n", d.Stats.Count)
	fmt.Fprintf(&b, "Peso total: %s\n", d.Stats.Total)
	fmt.Fprintf(&b, "Peso promedio: %s\n", d.Stats.Average)
	fmt.Fprintf(&b, "Generado: %s\n", d.GeneratedAt)
	return b.String()
}

func (s *service) Emails(ctx context.Context) ([]models.EmailConfig, error) {
	return s.emails.GetAll(ctx)
}

// AddEmail stores a new active recipient. Both fields are required and the
// address must parse as a single e-mail address.
func (s *service) AddEmail(ctx context.Context, name, email string) (models.EmailConfig, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		return models.EmailConfig{}, fmt.Errorf("name and email are required: %w", common.ErrValidation)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return models.EmailConfig{}, fmt.Errorf("%q is not an e-mail address: %w", email, common.ErrValidation)
	}

	e, err := s.emails.Add(ctx, models.EmailConfig{Email: email, Name: name, Active: true})
	if err != nil {
		return models.EmailConfig{}, err
	}
	s.logger.Info(ctx, "recipient added", "id", e.ID, "email", e.Email)
	return e, nil
}

func (s *service) DeleteEmail(ctx context.Context, id string) error {
	if err := s.emails.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "recipient deleted", "id", id)
	return nil
}

func (s *service) ToggleEmail(ctx context.Context, id string) (models.EmailConfig, error) {
	e, err := s.emails.Update(ctx, id, func(e models.EmailConfig) models.EmailConfig {
		e.Active = !e.Active
		return e
	})
	if err != nil {
		return models.EmailConfig{}, err
	}
	s.logger.Info(ctx, "recipient toggled", "id", id, "active", e.Active)
	return e, nil
}
