// Package mailer provides the outbound email transports.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	mail "github.com/go-mail/mail/v2"

	"github.com/istpublications/intake-backend/internal/config"
	"github.com/istpublications/intake-backend/internal/domain"
)

const dialTimeout = 10 * time.Second

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// SMTP delivers mail through an SMTP relay using mandatory STARTTLS.
type SMTP struct {
	dialer dialer
}

// NewSMTP creates an SMTP transport from cfg.
func NewSMTP(cfg config.SMTPConfig) *SMTP {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.SkipTLSVerify, //nolint:gosec // opt-in for development relays
	}
	d.Timeout = dialTimeout
	return &SMTP{dialer: d}
}

// Deliver sends msg as multipart/alternative with text and HTML parts.
// It returns ctx.Err() as soon as ctx is done; the SMTP session itself is
// then abandoned to finish or hit dialTimeout in the background.
func (s *SMTP) Deliver(ctx context.Context, msg domain.OutgoingEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(buildMessage(msg))
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("smtp error: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp error: %w", err)
		}
		return nil
	}
}

func buildMessage(msg domain.OutgoingEmail) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)
	return m
}
