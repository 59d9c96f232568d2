package api

import (
	"encoding/json"
	"net/http"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/api/validate"
	"github.com/bistroboss/server/internal/auth"
)

// TokenHandler mints access credentials.
type TokenHandler struct {
	tokens *auth.TokenService
}

func NewTokenHandler(ts *auth.TokenService) *TokenHandler { return &TokenHandler{tokens: ts} }

// IssueToken POST /jwt
// Issuance is unconditional: any payload with an email gets a credential,
// with no lookup against the user store.
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var in struct {
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

	token, err := h.tokens.Mint(in.Email)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
