// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"github.com/joblydev/jobly-api/internal/domain/auth"
)

// TokenCodec signs a principal into an opaque bearer token and verifies a
// token back into a principal. Implementations are pure functions over a
// process-wide immutable secret.
type TokenCodec interface {
	// Sign embeds the principal's username and admin flag, plus an issued-at
	// timestamp, into a tamper-evident signed string.
	Sign(p auth.Principal) (string, error)

	// Verify checks the signature and decodes the claim. Any failure
	// (missing, malformed, or bad signature) reports false rather
	// than an error; callers treat all of them as "unauthenticated".
	Verify(token string) (auth.Principal, bool)
}

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the stored hash.
	Compare(hash, password string) bool
}
