// Package email implements the template-render-send-log-retry pipeline.
//
// There are two failure contracts. Send reports delivery problems (missing
// template variables, transport errors) through the returned log entry's
// FAILED status with a nil error. Misconfiguration (no active template) and
// store failures are returned as errors. The convenience senders also
// return a missing template variable as an error.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

type templateRepo interface {
	GetActiveByType(ctx context.Context, t domain.EmailType) (*domain.EmailTemplate, error)
	UpsertByName(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error)
	List(ctx context.Context) ([]domain.EmailTemplate, error)
}

type logRepo interface {
	Create(ctx context.Context, l *domain.EmailLog) error
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*domain.EmailLog, error)
	IncrementRetry(ctx context.Context, id uuid.UUID, maxRetries int, at time.Time) (*domain.EmailLog, error)
	MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error)
	ListFailedForRetry(ctx context.Context, maxRetries, limit int) ([]domain.EmailLog, error)
	ListBySubmission(ctx context.Context, submissionID string) ([]domain.EmailLog, error)
	Counts(ctx context.Context, dayStart time.Time) (domain.EmailCounts, error)
}

type transport interface {
	Deliver(ctx context.Context, msg domain.OutgoingEmail) error
}

// Config carries the addresses and links the pipeline stamps into mail.
type Config struct {
	SenderAddress string
	AdminAddress  string
	FrontendURL   string
	BackendURL    string
	MaxRetries    int
}

// Service is the email pipeline.
type Service struct {
	templates templateRepo
	logs      logRepo
	transport transport
	cfg       Config
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new email pipeline.
func NewService(
	log *slog.Logger,
	templates templateRepo,
	logs logRepo,
	transport transport,
	cfg Config,
) *Service {
	if cfg.MaxRetries <= 0 || cfg.MaxRetries > domain.MaxEmailRetries {
		cfg.MaxRetries = domain.MaxEmailRetries
	}
	return &Service{
		templates: templates,
		logs:      logs,
		transport: transport,
		cfg:       cfg,
		log:       log.With("service", "email"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// MaxRetries returns the configured retry ceiling.
func (s *Service) MaxRetries() int {
	return s.cfg.MaxRetries
}
