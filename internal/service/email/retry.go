package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/istpublications/intake-backend/internal/domain"
)

// RetryAll marks every FAILED entry with retry_count < maxRetries as
// RETRYING and bumps its counter, oldest failures first. It returns how many
// entries were marked.
//
// This is bookkeeping only: a log entry does not keep the render context, so
// nothing is re-delivered here.
//
// maxRetries <= 0 uses the configured ceiling; values above
// domain.MaxEmailRetries are clamped to it.
func (s *Service) RetryAll(ctx context.Context, maxRetries int) (int, error) {
	if maxRetries <= 0 {
		maxRetries = s.cfg.MaxRetries
	}
	if maxRetries > domain.MaxEmailRetries {
		maxRetries = domain.MaxEmailRetries
	}

	entries, err := s.logs.ListFailedForRetry(ctx, maxRetries, 0)
	if err != nil {
		return 0, fmt.Errorf("list retry-eligible emails: %w", err)
	}

	retried := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return retried, err
		}
		if !e.IsRetryEligible(maxRetries) {
			continue
		}

		if _, err := s.logs.IncrementRetry(ctx, e.ID, maxRetries, s.now()); err != nil {
			// A concurrent run already took this entry.
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			s.log.ErrorContext(ctx, "increment email retry",
				slog.String("email_id", e.ID.String()),
				slog.String("error", err.Error()))
			continue
		}

		s.log.InfoContext(ctx, "email marked for retry",
			slog.String("email_id", e.ID.String()),
			slog.Int("retry_count", e.RetryCount+1))
		retried++
	}

	return retried, nil
}
