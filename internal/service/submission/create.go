package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Create reserves the next identifier for the current year and stores a
// DRAFT@1 submission.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var sub *domain.Submission

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		seq, err := s.subs.NextSequence(ctx, now.Year())
		if err != nil {
			return fmt.Errorf("reserve sequence: %w", err)
		}

		id := domain.FormatSubmissionID(s.idPrefix, now.Year(), seq)
		sub = domain.NewSubmission(id,
			strings.TrimSpace(input.AuthorName),
			strings.TrimSpace(input.AuthorEmail),
			now)

		if err := s.subs.Create(ctx, sub); err != nil {
			return fmt.Errorf("create submission: %w", err)
		}
		return s.appendEvent(ctx, id, domain.SubmissionActionCreated, nil)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "submission created",
		slog.String("submission_id", sub.ID))
	return sub, nil
}

func (s *Service) appendEvent(ctx context.Context, id string, action domain.SubmissionAction, step *int) error {
	err := s.subs.AppendEvent(ctx, id, domain.SubmissionEvent{
		ID:        uuid.New(),
		Action:    action,
		Step:      step,
		CreatedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("append %s event: %w", action, err)
	}
	return nil
}
