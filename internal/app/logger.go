package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/istpublications/intake-backend/internal/config"
)

// ServiceName is attached to every log record.
const ServiceName = "intake-backend"

// NewLogger builds the process logger on stderr and installs it as the
// slog default.
//
// Format "json" is structured output for production; anything else is
// text with source locations for development. Level is debug, info, warn
// or error (case-insensitive) and defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		opts.AddSource = true
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", ServiceName))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
