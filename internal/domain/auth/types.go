// Package auth contains domain-level types for authentication.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Principal is the authenticated identity claim decoded from a bearer token.
// It is produced only by the token codec, never persisted, and lives for the
// duration of one request.
type Principal struct {
	Username string
	IsAdmin  bool
	IssuedAt time.Time
}

// CanActFor reports whether the principal may act on a resource owned by the
// given username: either it is the owner or it is an admin.
func (p Principal) CanActFor(owner string) bool {
	return p.IsAdmin || p.Username == owner
}
