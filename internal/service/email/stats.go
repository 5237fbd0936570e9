package email

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Stats summarises the delivery log. TodaySent uses the UTC calendar day.
func (s *Service) Stats(ctx context.Context) (domain.EmailStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	c, err := s.logs.Counts(ctx, dayStart)
	if err != nil {
		return domain.EmailStats{}, fmt.Errorf("email stats: %w", err)
	}

	return domain.EmailStats{
		TotalSent:    c.Sent,
		TotalFailed:  c.Failed,
		TotalPending: c.Pending,
		TodaySent:    c.TodaySent,
		FailureRate:  FailureRate(c.Sent, c.Failed),
	}, nil
}

// FailureRate is failed / (sent + failed) * 100, or 0 with no outcomes.
func FailureRate(sent, failed int) float64 {
	total := sent + failed
	if total == 0 {
		return 0.0
	}
	return float64(failed) / float64(total) * 100
}

// SubmissionEmails returns the delivery trail of one submission, newest
// first. An unknown identifier yields an empty trail.
func (s *Service) SubmissionEmails(ctx context.Context, submissionID string) ([]domain.EmailLog, error) {
	logs, err := s.logs.ListBySubmission(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("emails for %s: %w", submissionID, err)
	}
	return logs, nil
}

// TrackOpen records that the recipient opened the message.
func (s *Service) TrackOpen(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error) {
	l, err := s.logs.MarkOpened(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("track open %s: %w", id, err)
	}
	return l, nil
}
