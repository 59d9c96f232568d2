package api

import (
	"encoding/json"
	"net/http"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/api/validate"
	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/services"
)

// ReviewHandler provides HTTP transport for reviews.
type ReviewHandler struct {
	svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler { return &ReviewHandler{svc: svc} }

// ListReviews GET /reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, reviews)
}

// CreateReview POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var in model.Review
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.NonEmpty("details", in.Details); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	res, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}
