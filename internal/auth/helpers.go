package auth

import (
	"net/http"
	"strings"
)

// ExtractBearerToken extracts the credential from the Authorization header.
// Returns the raw token or an error if the header is missing or not in
// "Bearer <token>" form.
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrTokenInvalid
	}

	return parts[1], nil
}
