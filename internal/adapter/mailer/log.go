package mailer

import (
	"context"
	"log/slog"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Log is a development transport that writes messages to the logger
// instead of sending them.
type Log struct {
	log *slog.Logger
}

// NewLog creates a log-only transport.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With("transport", "log")}
}

// Deliver logs msg and always succeeds.
func (l *Log) Deliver(ctx context.Context, msg domain.OutgoingEmail) error {
	l.log.InfoContext(ctx, "email delivered to log",
		slog.String("from", msg.From),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text))
	return nil
}
