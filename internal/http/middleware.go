package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/ports"
)

// maxTokenBodyBytes caps how much of a request body the token extractor will
// buffer while looking for the _token field.
const maxTokenBodyBytes = 1 << 20

// Middleware is a standard net/http middleware.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares right to left, so the first listed runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					WriteAppError(w, apperrors.Internal("panic recovered"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type requestIDKey struct{}

// RequestID assigns each request a UUID, exposed via context and the
// X-Request-Id response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-Id", id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the request ID or empty string.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Authenticate extracts the bearer token from the `_token` query parameter
// or, for JSON bodies, from a top-level `_token` field, and attaches the
// verified principal to the request context. The body is re-buffered so
// downstream handlers can still read it in full.
//
// Extraction is best-effort: a missing, malformed, or forged token leaves
// the request unauthenticated but never fails it. The route gates decide
// whether that matters.
func Authenticate(codec ports.TokenCodec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, restored := extractToken(r)
			if restored != nil {
				r.Body = restored
			}
			if token != "" {
				if principal, ok := codec.Verify(token); ok {
					r = r.WithContext(SetPrincipalInContext(r.Context(), principal))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken looks for _token in the query string first, then in a JSON
// body. When it reads the body it returns a replacement ReadCloser with the
// original bytes.
func extractToken(r *http.Request) (string, io.ReadCloser) {
	if token := r.URL.Query().Get("_token"); token != "" {
		return token, nil
	}
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxTokenBodyBytes))
	restored := io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return "", restored
	}

	var probe struct {
		Token string `json:"_token"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", restored
	}
	return probe.Token, restored
}

// RequireAuthenticated rejects requests that carry no valid principal.
func RequireAuthenticated() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				WriteUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects requests whose principal is not an admin.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok || !principal.IsAdmin {
				WriteUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelfOrAdmin rejects requests unless the principal is an admin or
// their username matches the named path parameter.
func RequireSelfOrAdmin(pathParam string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok || !principal.CanActFor(r.PathValue(pathParam)) {
				WriteUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
