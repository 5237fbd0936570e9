// Package contact stores contact-form messages and sends operator replies.
package contact

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

type contactRepo interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type replier interface {
	SendContactReply(ctx context.Context, msg *domain.ContactMessage, subjectLine, reply string) (*domain.EmailLog, error)
}

// Service provides contact-form intake.
type Service struct {
	contacts contactRepo
	mail     replier
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new contact service.
func NewService(log *slog.Logger, contacts contactRepo, mail replier) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Service{
		contacts: contacts,
		mail:     mail,
		validate: v,
		log:      log.With("service", "contact"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
