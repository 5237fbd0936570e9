package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and database health.
type HealthHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Database  string    `json:"database,omitempty"`
	Latency   string    `json:"latency,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Live handles GET /api/health/live. It never touches the database.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: healthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	}})
}

// Health handles GET /api/health: 200 when the database answers a ping
// within pingTimeout, 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, envelope{
			Error: "database unavailable",
			Data: healthResponse{
				Status:    "down",
				Version:   h.version,
				Database:  "down",
				Timestamp: h.now(),
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: healthResponse{
		Status:    "ok",
		Version:   h.version,
		Database:  "ok",
		Latency:   latency.String(),
		Timestamp: h.now(),
	}})
}
