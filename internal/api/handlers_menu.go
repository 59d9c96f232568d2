package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/api/validate"
	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/services"
)

// MenuHandler provides HTTP transport for menu operations.
type MenuHandler struct {
	svc *services.MenuService
}

func NewMenuHandler(svc *services.MenuService) *MenuHandler { return &MenuHandler{svc: svc} }

// ListMenu GET /menu
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}

// GetMenuItem GET /menu/{id}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		respond.WriteNotFound(w, "menu item not found")
		return
	}
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

// CreateMenuItem POST /menu (admin)
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var in model.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.NonEmpty("name", in.Name); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Price(in.Price); err != nil {
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

// UpdateMenuItem PATCH /menu/{id} (admin)
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch model.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if patch.Price != nil {
		if err := validate.Price(*patch.Price); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}

	res, err := h.svc.Update(r.Context(), id, &patch)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

// DeleteMenuItem DELETE /menu/{id} (admin)
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}
