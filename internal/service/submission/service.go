// Package submission implements the step-gated intake workflow: creation,
// ordered step saves, finalization, and editorial decision mail.
//
// Every mutation runs in one transaction that starts by locking the
// submission row, so the read-check-write sequence for a given identifier
// is serialized.
package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/istpublications/intake-backend/internal/domain"
)

type submissionRepo interface {
	NextSequence(ctx context.Context, year int) (int64, error)
	Create(ctx context.Context, s *domain.Submission) error
	GetForUpdate(ctx context.Context, id string) (*domain.Submission, error)
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	UpdateProgress(ctx context.Context, s *domain.Submission) error
	AppendEvent(ctx context.Context, id string, ev domain.SubmissionEvent) error

	// Step sub-records
	UpsertAgreements(ctx context.Context, id string, a domain.Agreements) error
	UpsertMetadata(ctx context.Context, id string, m domain.Metadata) error
	ReplaceFiles(ctx context.Context, id string, files []domain.SubmissionFile) error
	ReplaceReviewers(ctx context.Context, id string, reviewers []domain.Reviewer) error
	UpsertFinalConfirmation(ctx context.Context, id string, c domain.FinalConfirmation) error
}

type notifier interface {
	SendSubmissionConfirmation(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error)
	SendAdminNotification(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error)
	SendReviewUpdate(ctx context.Context, sub *domain.Submission, status, comments string) (*domain.EmailLog, error)
	SendAcceptance(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error)
	SendRejection(ctx context.Context, sub *domain.Submission, reason string) (*domain.EmailLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const DefaultIDPrefix = "IST"

// notifyTimeout bounds both finalize notifications together so the
// response is written well inside the server write timeout.
const notifyTimeout = 20 * time.Second

// Service is the step gate.
type Service struct {
	subs     submissionRepo
	notify   notifier
	tx       txManager
	idPrefix string
	log      *slog.Logger
	now      func() time.Time

	notifyTimeout time.Duration
}

// NewService creates a new submission service. An empty idPrefix falls back
// to DefaultIDPrefix.
func NewService(
	log *slog.Logger,
	subs submissionRepo,
	notify notifier,
	tx txManager,
	idPrefix string,
) *Service {
	if idPrefix == "" {
		idPrefix = DefaultIDPrefix
	}
	return &Service{
		subs:     subs,
		notify:   notify,
		tx:       tx,
		idPrefix: idPrefix,
		log:      log.With("service", "submission"),
		now:      func() time.Time { return time.Now().UTC() },

		notifyTimeout: notifyTimeout,
	}
}
