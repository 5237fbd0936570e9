package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/istpublications/intake-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSubmission inserts a DRAFT submission header at the given step.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, step int) domain.Submission {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	s := domain.Submission{
		ID:          "TST-" + uniqueSuffix(),
		AuthorName:  "Seed Author",
		AuthorEmail: fmt.Sprintf("author-%s@example.org", uniqueSuffix()),
		CurrentStep: step,
		Status:      domain.SubmissionStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO submissions (id, author_name, author_email, current_step, status, is_locked, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, false, $6, $7)`,
		s.ID, s.AuthorName, s.AuthorEmail, s.CurrentStep, string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission: %v", err)
	}
	return s
}

// SeedFailedEmail inserts a FAILED email log entry with the given retry count.
func SeedFailedEmail(t *testing.T, pool *pgxpool.Pool, retryCount int) domain.EmailLog {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	reason := "smtp: 421 try again later"

	l := domain.EmailLog{
		ID:           uuid.New(),
		Recipient:    fmt.Sprintf("rcpt-%s@example.org", uniqueSuffix()),
		Sender:       "noreply@example.org",
		Subject:      "Seeded",
		Type:         domain.EmailTypeWelcome,
		Status:       domain.EmailStatusFailed,
		FailedReason: &reason,
		RetryCount:   retryCount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO email_logs (id, recipient, sender, subject, type, status, failed_reason, retry_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		l.ID, l.Recipient, l.Sender, l.Subject, string(l.Type), string(l.Status), l.FailedReason, l.RetryCount, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFailedEmail: %v", err)
	}
	return l
}
