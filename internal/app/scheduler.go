package app

import (
	"context"
	"log/slog"
	"time"
)

type retrier interface {
	RetryAll(ctx context.Context, maxRetries int) (int, error)
	MaxRetries() int
}

// RunRetryScheduler calls RetryAll every interval until ctx is done. The
// first pass runs one interval after start. interval <= 0 disables the
// scheduler and returns immediately. A failed pass is logged and the next
// tick tries again.
func RunRetryScheduler(ctx context.Context, logger *slog.Logger, r retrier, interval time.Duration) error {
	log := logger.With("component", "retry_scheduler")
	if interval <= 0 {
		log.Info("retry scheduler disabled")
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("retry scheduler started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			log.Info("retry scheduler stopped")
			return nil
		case <-ticker.C:
			n, err := r.RetryAll(ctx, r.MaxRetries())
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.ErrorContext(ctx, "retry pass failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				log.InfoContext(ctx, "retry pass completed", slog.Int("retried", n))
			}
		}
	}
}
