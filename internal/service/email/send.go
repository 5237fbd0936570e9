package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

// SendInput describes one send attempt.
type SendInput struct {
	To           string
	Type         domain.EmailType
	Context      map[string]string
	SubmissionID *string
}

// Send resolves the active template for in.Type, records a PENDING log
// entry, renders, and hands the result to the transport.
//
// The returned entry is SENT or FAILED. A render or transport failure is
// reported only through the entry (error is nil). A missing template returns
// an error wrapping domain.ErrTemplateNotFound and writes no entry.
func (s *Service) Send(ctx context.Context, in SendInput) (*domain.EmailLog, error) {
	return s.send(ctx, in, false)
}

// send implements Send. With strictRender set, a render failure is returned
// as an error wrapping domain.ErrMissingVariable before any entry is
// written; the convenience senders use this.
func (s *Service) send(ctx context.Context, in SendInput, strictRender bool) (*domain.EmailLog, error) {
	tpl, err := s.templates.GetActiveByType(ctx, in.Type)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			s.log.ErrorContext(ctx, "no active email template",
				slog.String("email_type", in.Type.String()))
		}
		return nil, fmt.Errorf("resolve template %s: %w", in.Type, err)
	}

	rendered, renderErr := Render(tpl, in.Context)
	if renderErr != nil && strictRender {
		return nil, fmt.Errorf("render %s: %w", in.Type, renderErr)
	}

	now := s.now()
	entry := &domain.EmailLog{
		ID:           uuid.New(),
		Recipient:    in.To,
		Sender:       s.cfg.SenderAddress,
		Subject:      logSubject(tpl, rendered, renderErr, in.Context),
		Type:         in.Type,
		SubmissionID: in.SubmissionID,
		Status:       domain.EmailStatusPending,
		TemplateID:   &tpl.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("record pending email: %w", err)
	}

	if renderErr != nil {
		return s.fail(ctx, entry, renderErr.Error())
	}

	msg := domain.OutgoingEmail{
		From:    s.cfg.SenderAddress,
		To:      in.To,
		Subject: rendered.Subject,
		HTML:    rendered.BodyHTML,
	}
	if rendered.BodyText != nil {
		msg.Text = *rendered.BodyText
	} else {
		msg.Text = PlainText(rendered.BodyHTML)
	}

	if err := s.transport.Deliver(ctx, msg); err != nil {
		return s.fail(ctx, entry, err.Error())
	}

	sent, err := s.logs.MarkSent(ctx, entry.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark email %s sent: %w", entry.ID, err)
	}

	s.log.InfoContext(ctx, "email sent",
		slog.String("email_id", sent.ID.String()),
		slog.String("email_type", sent.Type.String()),
		slog.String("recipient", sent.Recipient))
	return sent, nil
}

// logSubject is the subject stored on the log entry: the rendered one, or
// the subject pattern itself when even the subject cannot be rendered.
func logSubject(tpl *domain.EmailTemplate, rendered domain.RenderedEmail, renderErr error, vars map[string]string) string {
	if renderErr == nil {
		return rendered.Subject
	}
	if subject, err := renderPattern(tpl.Subject, vars); err == nil {
		return subject
	}
	return tpl.Subject
}

func (s *Service) fail(ctx context.Context, entry *domain.EmailLog, reason string) (*domain.EmailLog, error) {
	failed, err := s.logs.MarkFailed(ctx, entry.ID, reason, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark email %s failed: %w", entry.ID, err)
	}

	s.log.WarnContext(ctx, "email delivery failed",
		slog.String("email_id", failed.ID.String()),
		slog.String("email_type", failed.Type.String()),
		slog.String("reason", reason))
	return failed, nil
}
