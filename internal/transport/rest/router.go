package rest

import (
	"net/http"

	"github.com/istpublications/intake-backend/internal/transport/middleware"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Submissions *SubmissionHandler
	Contacts    *ContactHandler
	Emails      *EmailHandler
	Health      *HealthHandler
}

// NewRouter registers the API routes. public wraps the unauthenticated
// write endpoints (rate limiting); request bodies are capped at maxBody.
func NewRouter(h Handlers, public middleware.Middleware, maxBody int64) http.Handler {
	if public == nil {
		public = middleware.Chain()
	}
	mux := http.NewServeMux()

	mux.Handle("POST /api/submissions", public(http.HandlerFunc(h.Submissions.Create)))
	mux.HandleFunc("POST /api/submissions/{id}/step/{n}", h.Submissions.SaveStep)
	mux.HandleFunc("POST /api/submissions/{id}/step/6/finalize", h.Submissions.Finalize)
	mux.HandleFunc("GET /api/submissions/{id}", h.Submissions.Get)

	mux.Handle("POST /api/contact", public(http.HandlerFunc(h.Contacts.Create)))

	mux.HandleFunc("GET /api/emails/{email_id}/open", h.Emails.TrackOpen)

	mux.HandleFunc("POST /api/admin/submissions/{id}/notifications", h.Submissions.Notify)
	mux.HandleFunc("POST /api/admin/contacts/{id}/reply", h.Contacts.Reply)
	mux.HandleFunc("GET /api/admin/submissions/{id}/emails", h.Emails.SubmissionEmails)
	mux.HandleFunc("GET /api/admin/emails/stats", h.Emails.Stats)
	mux.HandleFunc("POST /api/admin/emails/retry", h.Emails.Retry)

	mux.HandleFunc("GET /api/health", h.Health.Health)
	mux.HandleFunc("GET /api/health/live", h.Health.Live)

	return http.MaxBytesHandler(mux, maxBody)
}
