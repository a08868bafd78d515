// Package jwtcodec implements the TokenCodec port with HMAC-signed JWTs.
package jwtcodec

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/joblydev/jobly-api/internal/domain/auth"
)

// claims is the wire shape of the principal. There is deliberately no exp
// claim: tokens are valid indefinitely once issued, matching the contract the
// API has always exposed.
type claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Codec signs and verifies bearer tokens with a process-wide secret. The
// secret is copied at construction and never mutated; Codec is safe for
// concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// New constructs a Codec from the configured secret key.
func New(secretKey string) *Codec {
	return &Codec{
		secret: []byte(secretKey),
		now:    time.Now,
	}
}

// NewWithClock constructs a Codec with a custom clock (useful for tests).
func NewWithClock(secretKey string, now func() time.Time) *Codec {
	return &Codec{
		secret: []byte(secretKey),
		now:    now,
	}
}

// Sign embeds the principal into an HS256-signed token with second-resolution
// issued-at. Deterministic for identical principals within the same second.
func (c *Codec) Sign(p auth.Principal) (string, error) {
	if len(c.secret) == 0 {
		return "", errors.New("token secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: p.Username,
		IsAdmin:  p.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(c.now().Truncate(time.Second)),
		},
	})
	return token.SignedString(c.secret)
}

// Verify checks the signature against the same secret and decodes the claim.
// Every failure mode collapses to (zero, false); this routine never panics
// and never surfaces an error to its caller.
func (c *Codec) Verify(tokenString string) (auth.Principal, bool) {
	if tokenString == "" {
		return auth.Principal{}, false
	}

	var cl claims
	token, err := jwt.ParseWithClaims(tokenString, &cl, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return auth.Principal{}, false
	}

	p := auth.Principal{
		Username: cl.Username,
		IsAdmin:  cl.IsAdmin,
	}
	if cl.IssuedAt != nil {
		p.IssuedAt = cl.IssuedAt.Time
	}
	return p, true
}
