package httpx

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/ports"
	"github.com/joblydev/jobly-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Users        *service.UserService
	Companies    *service.CompanyService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Codec        ports.TokenCodec
	DB           *sql.DB
	Cache        core.CacheRepository // optional, for health only
	Logger       *slog.Logger         // optional
}

// NewRouter creates and configures the HTTP router. Token extraction runs
// globally; the authenticated/admin/self-or-admin gates wrap individual
// routes.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authed := RequireAuthenticated()
	admin := RequireAdmin()
	selfOrAdmin := RequireSelfOrAdmin("username")

	authHandlers := &AuthHandlers{Svc: services.Auth}
	mux.Handle("POST /auth/login", http.HandlerFunc(authHandlers.Login))

	companies := &CompanyHandlers{Svc: services.Companies}
	mux.Handle("GET /companies", Chain(http.HandlerFunc(companies.List), authed))
	mux.Handle("POST /companies", Chain(http.HandlerFunc(companies.Create), admin))
	mux.Handle("GET /companies/{handle}", Chain(http.HandlerFunc(companies.Get), authed))
	mux.Handle("PATCH /companies/{handle}", Chain(http.HandlerFunc(companies.Update), admin))
	mux.Handle("DELETE /companies/{handle}", Chain(http.HandlerFunc(companies.Delete), admin))

	jobs := &JobHandlers{Svc: services.Jobs}
	mux.Handle("GET /jobs", Chain(http.HandlerFunc(jobs.List), authed))
	mux.Handle("POST /jobs", Chain(http.HandlerFunc(jobs.Create), admin))
	mux.Handle("GET /jobs/{id}", Chain(http.HandlerFunc(jobs.Get), authed))
	mux.Handle("PATCH /jobs/{id}", Chain(http.HandlerFunc(jobs.Update), admin))
	mux.Handle("DELETE /jobs/{id}", Chain(http.HandlerFunc(jobs.Delete), admin))

	applications := &ApplicationHandlers{Svc: services.Applications}
	mux.Handle("POST /jobs/{id}/interest", Chain(http.HandlerFunc(applications.Interest), authed))
	mux.Handle("POST /jobs/{id}/apply", Chain(http.HandlerFunc(applications.Apply), authed))
	mux.Handle("POST /jobs/{id}/respond", Chain(http.HandlerFunc(applications.Respond), admin))

	users := &UserHandlers{Svc: services.Users, Auth: services.Auth}
	mux.Handle("GET /users", Chain(http.HandlerFunc(users.List), authed))
	mux.Handle("POST /users", http.HandlerFunc(users.Register))
	mux.Handle("GET /users/{username}", Chain(http.HandlerFunc(users.Get), authed))
	mux.Handle("PATCH /users/{username}", Chain(http.HandlerFunc(users.Update), selfOrAdmin))
	mux.Handle("DELETE /users/{username}", Chain(http.HandlerFunc(users.Delete), selfOrAdmin))

	health := &HealthHandlers{DB: services.DB, Cache: services.Cache}
	mux.Handle("GET /healthz", http.HandlerFunc(health.Health))
	mux.Handle("HEAD /healthz", http.HandlerFunc(health.Health))

	return Chain(mux,
		Recover(logger),
		RequestID(),
		Logging(logger),
		Authenticate(services.Codec),
	)
}
