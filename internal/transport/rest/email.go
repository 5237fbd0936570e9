package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

type emailService interface {
	Stats(ctx context.Context) (domain.EmailStats, error)
	RetryAll(ctx context.Context, maxRetries int) (int, error)
	TrackOpen(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error)
	MaxRetries() int
	SubmissionEmails(ctx context.Context, submissionID string) ([]domain.EmailLog, error)
}

// transparentGIF is a 1x1 transparent GIF89a.
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00,
	0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02,
	0x44, 0x01, 0x00, 0x3b,
}

// EmailHandler serves delivery-log statistics, retry, and open tracking.
type EmailHandler struct {
	svc emailService
	log *slog.Logger
}

// NewEmailHandler creates an EmailHandler.
func NewEmailHandler(svc emailService, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{svc: svc, log: logger.With("handler", "email")}
}

// Stats handles GET /api/admin/emails/stats.
func (h *EmailHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: emailStatsResponse{
		TotalSent:    stats.TotalSent,
		TotalFailed:  stats.TotalFailed,
		TotalPending: stats.TotalPending,
		TodaySent:    stats.TodaySent,
		FailureRate:  stats.FailureRate,
	}})
}

// Retry handles POST /api/admin/emails/retry.
func (h *EmailHandler) Retry(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.RetryAll(r.Context(), h.svc.MaxRetries())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Retry pass completed",
		Data:    map[string]int{"retried": n},
	})
}

// SubmissionEmails handles GET /api/admin/submissions/{id}/emails.
func (h *EmailHandler) SubmissionEmails(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.SubmissionEmails(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]*emailLogResponse, len(logs))
	for i := range logs {
		out[i] = toEmailLogResponse(&logs[i])
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: out})
}

// TrackOpen handles GET /api/emails/{email_id}/open. The pixel is served
// whatever happens so mail clients never show a broken image.
func (h *EmailHandler) TrackOpen(w http.ResponseWriter, r *http.Request) {
	if id, err := uuid.Parse(r.PathValue("email_id")); err == nil {
		if _, err := h.svc.TrackOpen(r.Context(), id); err != nil {
			h.log.WarnContext(r.Context(), "track open",
				slog.String("email_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.WriteHeader(http.StatusOK)
	w.Write(transparentGIF) //nolint:errcheck
}
