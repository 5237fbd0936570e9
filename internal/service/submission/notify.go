package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Notify sends an editorial decision email for a submitted paper. Unlike the
// finalize notifications, errors from the email pipeline are returned.
func (s *Service) Notify(ctx context.Context, id string, input NotifyInput) (*domain.EmailLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if !sub.Locked {
		return nil, fmt.Errorf("notify %s: submission not submitted: %w", id, domain.ErrPremisesNotMet)
	}

	var entry *domain.EmailLog
	switch input.Kind {
	case NotifyReviewUpdate:
		entry, err = s.notify.SendReviewUpdate(ctx, sub, strings.TrimSpace(input.ReviewStatus), strings.TrimSpace(input.Comments))
	case NotifyAcceptance:
		entry, err = s.notify.SendAcceptance(ctx, sub)
	case NotifyRejection:
		entry, err = s.notify.SendRejection(ctx, sub, strings.TrimSpace(input.Reason))
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "decision email processed",
		slog.String("submission_id", id),
		slog.String("kind", input.Kind),
		slog.String("status", entry.Status.String()))
	return entry, nil
}
