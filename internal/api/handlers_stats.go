package api

import (
	"net/http"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/services"
)

// StatsHandler serves the admin analytics aggregations.
type StatsHandler struct {
	svc *services.PaymentService
}

func NewStatsHandler(svc *services.PaymentService) *StatsHandler { return &StatsHandler{svc: svc} }

// AdminStats GET /admin-stats (admin)
func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AdminStats(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}

// OrderStats GET /order-stats (admin)
// The groups are an unordered set; clients must not rely on ordering.
func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.OrderStats(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}
