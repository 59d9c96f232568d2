package api

import (
	"net/http"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/store"
)

// HealthReporter exposes a cached health state, typically a background
// checker probing the store on an interval.
type HealthReporter interface {
	IsHealthy() bool
}

// HealthHandler reports process liveness and store reachability. When a
// reporter is configured its cached state is used; otherwise the store is
// pinged directly on each request.
type HealthHandler struct {
	store    store.Store
	reporter HealthReporter
}

func NewHealthHandler(s store.Store, reporter HealthReporter) *HealthHandler {
	return &HealthHandler{store: s, reporter: reporter}
}

// CheckHealth GET /health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	if h.reporter != nil {
		if h.reporter.IsHealthy() {
			respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		} else {
			respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return
	}
	if err := h.store.Ping(r.Context()); err != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Welcome GET /
func Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Welcome to the Bistro Boss server"))
}
