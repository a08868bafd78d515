package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/joblydev/jobly-api/config"
	"github.com/joblydev/jobly-api/internal/adapters/bcrypthash"
	"github.com/joblydev/jobly-api/internal/adapters/jwtcodec"
	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/data"
	"github.com/joblydev/jobly-api/internal/ports"
	"github.com/joblydev/jobly-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth         *service.AuthService
	Users        *service.UserService
	Companies    *service.CompanyService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Codec        ports.TokenCodec
	Cache        core.CacheRepository // nil when the cache is disabled
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient // nil when the cache is disabled
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Companies    *data.CompanyRepo
	Jobs         *data.JobRepo
	Users        *data.UserRepo
	Applications *data.ApplicationRepo
	Cache        *data.RedisCacheRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(deps *ServiceDeps) *serviceRepositories {
	timeout := deps.Config.Postgres.QueryTimeout

	repos := &serviceRepositories{
		Companies:    data.NewCompanyRepo(deps.DB, timeout),
		Jobs:         data.NewJobRepo(deps.DB, timeout),
		Users:        data.NewUserRepo(deps.DB, timeout),
		Applications: data.NewApplicationRepo(deps.DB, timeout),
	}
	if deps.RedisClient != nil {
		repos.Cache = data.NewRedisCacheRepo(deps.RedisClient)
	}
	return repos
}

// NewServices initializes all application services.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := buildRepositories(deps)

	var cache core.CacheRepository
	if repos.Cache != nil {
		cache = repos.Cache
	}

	codec := jwtcodec.New(deps.Config.Auth.SecretKey)
	hasher := bcrypthash.New(deps.Config.Auth.BcryptCost)
	searchTTL := deps.Config.Cache.SearchTTL

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:  repos.Users,
			Codec:  codec,
			Hasher: hasher,
		}),
		Users: service.NewUserService(service.UserServiceOptions{
			Users:  repos.Users,
			Hasher: hasher,
		}),
		Companies: service.NewCompanyService(service.CompanyServiceOptions{
			Companies: repos.Companies,
			Jobs:      repos.Jobs,
			Cache: service.CompanyCacheOptions{
				Repo:   cache,
				TTL:    searchTTL,
				Logger: logger,
			},
		}),
		Jobs: service.NewJobService(service.JobServiceOptions{
			Jobs: repos.Jobs,
			Cache: service.JobCacheOptions{
				Repo:   cache,
				TTL:    searchTTL,
				Logger: logger,
			},
		}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			Applications: repos.Applications,
			Jobs:         repos.Jobs,
		}),
		Codec: codec,
		Cache: cache,
	}
}
