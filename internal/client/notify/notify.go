// Package notify is the outbound notification port used when a report is
// "sent". No real delivery channel exists; LogSender only logs.
package notify

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/wastetrack/internal/logging"
)

// Recipient is one address a notification goes to.
type Recipient struct {
	Name  string
	Email string
}

// Notification is the formatted content handed to a Sender.
type Notification struct {
	Subject    string
	Body       string
	Recipients []Recipient
	// Attachment is an optional file name the body refers to.
	Attachment string
}

// Addresses returns the recipient e-mail addresses in order.
func (n Notification) Addresses() []string {
	out := make([]string, len(n.Recipients))
	for i, r := range n.Recipients {
		out[i] = r.Email
	}
	return out
}

// Sender delivers notifications over one channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// LogSender writes notifications to the log instead of delivering them.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger.With("channel", "log")}
}

func (s *LogSender) Name() string { return "log" }

func (s *LogSender) Send(ctx context.Context, n Notification) error {
	s.logger.Info(ctx, "notification",
		"subject", n.Subject,
		"recipients", strings.Join(n.Addresses(), ", "),
		"attachment", n.Attachment,
	)
	s.logger.Debug(ctx, "notification body", "body", n.Body)
	return nil
}

// Recorder keeps every notification it is given. Err, when set, is
// returned from Send and nothing is recorded.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
	Err  error
}

func (r *Recorder) Name() string { return "recorder" }

func (r *Recorder) Send(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, n)
	return nil
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Notification(nil), r.sent...)
}
