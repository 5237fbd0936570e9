package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Create validates and stores a contact-form message.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.ContactMessage, error) {
	input.normalize()
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, toValidationError(err)
	}

	msg := &domain.ContactMessage{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   domain.ContactSubject(input.Subject),
		Message:   input.Message,
		CreatedAt: s.now(),
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	s.log.InfoContext(ctx, "contact message received",
		slog.String("contact_id", msg.ID.String()),
		slog.String("subject", msg.Subject.String()))
	return msg, nil
}

// Reply mails an answer to the sender. The message is marked read only when
// the reply was delivered; a FAILED entry is returned without error.
func (s *Service) Reply(ctx context.Context, id uuid.UUID, input ReplyInput) (*domain.EmailLog, error) {
	input.normalize()
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, toValidationError(err)
	}

	msg, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contact message: %w", err)
	}

	entry, err := s.mail.SendContactReply(ctx, msg, input.SubjectLine, input.ReplyMessage)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EmailStatusSent {
		s.log.WarnContext(ctx, "contact reply not delivered",
			slog.String("contact_id", id.String()),
			slog.String("email_id", entry.ID.String()))
		return entry, nil
	}

	if err := s.contacts.MarkRead(ctx, id); err != nil {
		return nil, fmt.Errorf("mark contact message read: %w", err)
	}
	return entry, nil
}
