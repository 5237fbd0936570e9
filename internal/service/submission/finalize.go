package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Finalize locks a submission at step 6 and marks it SUBMITTED. Once the
// transaction commits, the author confirmation and the admin notification
// are sent; their outcome never affects the result. The sends run detached
// from request cancellation but share a notifyTimeout budget.
func (s *Service) Finalize(ctx context.Context, id string) (*domain.Submission, error) {
	var header *domain.Submission

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sub, err := s.subs.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}

		if err := sub.Finalize(s.now()); err != nil {
			return err
		}
		if err := s.subs.UpdateProgress(ctx, sub); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		if err := s.appendEvent(ctx, id, domain.SubmissionActionSubmitted, nil); err != nil {
			return err
		}
		header = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "submission finalized",
		slog.String("submission_id", id))

	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		s.log.ErrorContext(ctx, "reload finalized submission",
			slog.String("submission_id", id),
			slog.String("error", err.Error()))
		sub = header
	}

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	s.notifySubmitted(nctx, sub)
	return sub, nil
}

func (s *Service) notifySubmitted(ctx context.Context, sub *domain.Submission) {
	sends := []struct {
		kind string
		send func(context.Context, *domain.Submission) (*domain.EmailLog, error)
	}{
		{"submission_confirmation", s.notify.SendSubmissionConfirmation},
		{"admin_notification", s.notify.SendAdminNotification},
	}

	for _, n := range sends {
		entry, err := n.send(ctx, sub)
		if err != nil {
			s.log.ErrorContext(ctx, "submission notification not sent",
				slog.String("submission_id", sub.ID),
				slog.String("kind", n.kind),
				slog.String("error", err.Error()))
			continue
		}
		if entry.Status == domain.EmailStatusFailed {
			s.log.WarnContext(ctx, "submission notification failed",
				slog.String("submission_id", sub.ID),
				slog.String("kind", n.kind),
				slog.String("email_id", entry.ID.String()))
		}
	}
}
