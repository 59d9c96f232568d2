package auth

import (
	"context"
	"net/http"

	"github.com/bistroboss/server/internal/api/respond"
)

type ctxKey struct{}

// ClaimsFromContext returns the verified claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}

// withClaims stores verified claims on the request context.
func withClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// RoleChecker resolves whether an email belongs to an administrator.
// Implemented by the user service; an absent record is simply non-admin.
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Guard bundles the credential verifier and the role authority into the
// middleware chain applied to protected routes. Checks run in a fixed
// order: authenticate, then authorize-role, then any per-handler
// ownership check.
type Guard struct {
	tokens *TokenService
	roles  RoleChecker
}

func NewGuard(tokens *TokenService, roles RoleChecker) *Guard {
	return &Guard{tokens: tokens, roles: roles}
}

// RequireAuth verifies the bearer credential and exposes its claims to
// downstream handlers. Missing, malformed or expired credentials yield 401.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := ExtractBearerToken(r)
		if err != nil {
			respond.WriteUnauthorized(w)
			return
		}
		claims, err := g.tokens.Validate(raw)
		if err != nil {
			respond.WriteUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// RequireAdmin gates a route on elevated privileges. It must run after
// RequireAuth. Non-admin or unknown callers yield 403; a failed lookup is
// an upstream failure, not a denial.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			respond.WriteUnauthorized(w)
			return
		}
		isAdmin, err := g.roles.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			respond.WriteInternalError(w, err.Error())
			return
		}
		if !isAdmin {
			respond.WriteForbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Protect chains RequireAuth and RequireAdmin around a handler.
func (g *Guard) Protect(h http.HandlerFunc) http.Handler {
	return g.RequireAuth(h)
}

// ProtectAdmin chains RequireAuth then RequireAdmin around a handler.
func (g *Guard) ProtectAdmin(h http.HandlerFunc) http.Handler {
	return g.RequireAuth(g.RequireAdmin(h))
}

// CheckOwnership compares the verified identity against the owner email of
// an identity-scoped resource. Elevated privileges do not bypass it; admin
// bypass applies only to routes gated by RequireAdmin.
func CheckOwnership(ctx context.Context, ownerEmail string) error {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.Email != ownerEmail {
		return ErrForbidden
	}
	return nil
}
