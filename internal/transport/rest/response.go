package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/istpublications/intake-backend/internal/domain"
)

// envelope is the body of every JSON API response. Exactly one payload
// field is set on success; Errors carries per-field validation messages.
type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Error      string              `json:"error,omitempty"`
	Submission *submissionResponse `json:"submission,omitempty"`
	Errors     map[string]string   `json:"errors,omitempty"`
	Data       any                 `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: message})
}

// decodeJSON reads a single JSON object from the body. Unknown fields are
// ignored; body size is capped by the router.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// handleError maps domain errors to HTTP statuses and the error envelope.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		serr *domain.StepOrderError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "validation failed", Errors: verr.Fields()})
	case errors.As(err, &serr):
		writeError(w, http.StatusBadRequest, serr.Error())
	case errors.Is(err, domain.ErrPremisesNotMet):
		writeError(w, http.StatusBadRequest, "submission is not ready to be finalized")
	case errors.Is(err, domain.ErrSubmissionLocked), errors.Is(err, domain.ErrAlreadyLocked):
		writeError(w, http.StatusForbidden, "submission is locked")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
