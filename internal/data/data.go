// Package data contains the PostgreSQL and Redis repositories behind the
// core repository interfaces.
package data

import (
	"context"
	"time"
)

// withQueryTimeout caps a store call at the configured query timeout.
// A non-positive timeout disables the cap.
func withQueryTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
