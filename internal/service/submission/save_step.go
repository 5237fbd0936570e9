package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/istpublications/intake-backend/internal/domain"
)

// SaveStep validates and stores the payload of one step and advances the
// submission. A locked submission rejects every step; a step ahead of the
// current one fails with *domain.StepOrderError. Nothing is written when a
// guard or validation fails.
func (s *Service) SaveStep(ctx context.Context, id string, input StepInput) (*domain.Submission, error) {
	step := input.Step()

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sub, err := s.subs.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}

		if err := sub.CheckCanSave(step); err != nil {
			return err
		}
		if err := input.Validate(); err != nil {
			return err
		}

		now := s.now()
		if err := input.persist(ctx, s.subs, id, now); err != nil {
			return fmt.Errorf("save step %d: %w", step, err)
		}

		sub.Advance(step, now)
		if err := s.subs.UpdateProgress(ctx, sub); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return s.appendEvent(ctx, id, domain.SubmissionActionStepSaved, &step)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "submission step saved",
		slog.String("submission_id", id),
		slog.Int("step", step))

	return s.Get(ctx, id)
}
