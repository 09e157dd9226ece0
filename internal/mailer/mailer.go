/*
Package mailer sends transactional email over SMTP and renders the
messages the service sends: appointment confirmations and password
reset codes.
*/
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"HealthCompanion/internal/config"

	"github.com/go-gomail/gomail"
	"github.com/rs/zerolog/log"
)

// ErrNotConfigured is returned by a sender with no SMTP settings.
var ErrNotConfigured = errors.New("email service not configured")

// Message is a rendered email ready to hand to a Sender.
type Message struct {
	To      []string
	Bcc     []string
	Subject string
	HTML    string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers mail through a single SMTP relay.
type SMTPSender struct {
	from    string
	timeout time.Duration
	dialer  *gomail.Dialer
}

// NewSender returns an SMTP sender, or a sender that always fails with
// ErrNotConfigured when SMTP settings are missing.
func NewSender(cfg config.SMTPConfig) Sender {
	if !cfg.Enabled() {
		log.Warn().Msg("SMTP not configured - outgoing email disabled")
		return disabledSender{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &SMTPSender{
		from:    cfg.Sender(),
		timeout: timeout,
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	if len(msg.Bcc) > 0 {
		m.SetHeader("Bcc", msg.Bcc...)
	}
	m.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else {
		m.SetBody("text/html", msg.HTML)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-time.After(s.timeout):
		return fmt.Errorf("email sending timeout")
	case <-ctx.Done():
		return ctx.Err()
	}
}

type disabledSender struct{}

func (disabledSender) Send(context.Context, Message) error {
	return ErrNotConfigured
}
