package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/api/validate"
	"github.com/bistroboss/server/internal/auth"
	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/services"
)

// UserHandler provides HTTP transport for identity and role operations.
type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

// Register POST /users
// Idempotent on email; a repeated registration reports insertedId: null.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.Email(in.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	res, err := h.svc.Register(r.Context(), &model.User{Name: in.Name, Email: in.Email})
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	if res.InsertedID == "" {
		respond.WriteJSON(w, http.StatusOK, map[string]any{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"message":    "user created",
		"insertedId": res.InsertedID,
	})
}

// ListUsers GET /users (admin)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, users)
}

// CheckAdmin GET /users/admin/{email} (verified, self-only)
// The path email must match the verified identity; a mismatch is 403
// regardless of the caller's own role.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if err := auth.CheckOwnership(r.Context(), email); err != nil {
		respond.WriteForbidden(w)
		return
	}

	isAdmin, err := h.svc.IsAdmin(r.Context(), email)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

// PromoteAdmin PATCH /users/admin/{id} (admin)
func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.svc.PromoteToAdmin(r.Context(), id)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

// DeleteUser DELETE /users/{id} (admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}
