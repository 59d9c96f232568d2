package auth

import "errors"

var (
	// ErrMissingToken is returned when no credential accompanies the request.
	ErrMissingToken = errors.New("missing Authorization header")

	// ErrTokenInvalid is returned for malformed, mis-signed or otherwise
	// undecodable tokens.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned when the credential's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrForbidden is returned when a verified caller lacks the privilege
	// or ownership a route requires.
	ErrForbidden = errors.New("forbidden access")
)
