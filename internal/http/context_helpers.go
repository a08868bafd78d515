package httpx

import (
	"context"

	"github.com/joblydev/jobly-api/internal/domain/auth"
)

// principalKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware use the same key.
type principalKey struct{}

// SetPrincipalInContext returns a child context carrying the given principal.
func SetPrincipalInContext(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated principal and whether one is
// present. Absence means the request carried no valid token.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(auth.Principal)
	return p, ok
}
