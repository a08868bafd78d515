package httpx

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/joblydev/jobly-api/internal/core"
)

// HealthHandlers provides liveness checks over the backing stores.
type HealthHandlers struct {
	DB    *sql.DB
	Cache core.CacheRepository // optional
}

// Health handles GET /healthz.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	code := http.StatusOK

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}
	if h.Cache != nil {
		if err := h.Cache.Health(ctx); err != nil {
			status["cache"] = "unreachable"
		}
	}

	WriteJSON(w, code, status)
}
