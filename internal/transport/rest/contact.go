package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
	"github.com/istpublications/intake-backend/internal/service/contact"
)

type contactService interface {
	Create(ctx context.Context, input contact.CreateInput) (*domain.ContactMessage, error)
	Reply(ctx context.Context, id uuid.UUID, input contact.ReplyInput) (*domain.EmailLog, error)
}

// ContactHandler serves the contact form and operator replies.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contact.CreateInput
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Message received",
		Data:    toContactResponse(msg),
	})
}

// Reply handles POST /api/admin/contacts/{id}/reply.
func (h *ContactHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req contact.ReplyInput
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Reply(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: entry.Status != domain.EmailStatusFailed,
		Message: "Reply " + entry.Status.String(),
		Data:    toEmailLogResponse(entry),
	})
}
