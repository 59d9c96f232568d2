package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "bistro-server"

// Claims are the registered JWT claims plus the email the credential was
// minted for. Validity is purely a function of signature and expiry; no
// state is kept server-side.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService mints and validates HS256-signed access credentials.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
}

// NewTokenService creates a TokenService. ttlHours is the credential
// lifetime from issuance.
func NewTokenService(signingKey []byte, ttlHours int) *TokenService {
	return &TokenService{
		signingKey: signingKey,
		ttl:        time.Duration(ttlHours) * time.Hour,
	}
}

// Mint issues a signed credential for the given email. Issuance is
// unconditional: no existence check is performed against the user store.
func (ts *TokenService) Mint(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a credential, returning the embedded claims.
// Expired tokens map to ErrTokenExpired, everything else to ErrTokenInvalid.
func (ts *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
