package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/api/validate"
	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/services"
)

// CartHandler provides HTTP transport for cart operations.
type CartHandler struct {
	svc *services.CartService
}

func NewCartHandler(svc *services.CartService) *CartHandler { return &CartHandler{svc: svc} }

// ListCarts GET /carts?email=
func (h *CartHandler) ListCarts(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	items, err := h.svc.ListByEmail(r.Context(), email)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}

// AddToCart POST /carts
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var in model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.Email(in.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Price(in.Price); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	res, err := h.svc.Add(r.Context(), &in)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

// DeleteCart DELETE /carts/{id} (verified)
// The credential is required but no ownership cross-check runs; any
// verified caller may delete any cart id.
func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}
