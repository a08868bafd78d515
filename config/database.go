package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"jobly"`
	Password string `env:"PASSWORD" envDefault:"jobly"`
	Name     string `env:"NAME"     envDefault:"jobly"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// QueryTimeout bounds every statement issued by the data layer. On expiry
	// the error surfaces as the "unavailable" kind rather than hanging the
	// request.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`

	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// Sanitize applies guardrails to database configuration values.
func (d *DBConfig) Sanitize() {
	if d.QueryTimeout <= 0 {
		d.QueryTimeout = 5 * time.Second
	}
}

// RedisConfig contains Redis configuration for the search cache.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// CacheConfig controls the search-result cache.
type CacheConfig struct {
	// Enabled turns the Redis-backed search cache on. When false the
	// service runs without Redis entirely.
	Enabled bool `env:"CACHE_ENABLED" envDefault:"false"`

	// SearchTTL is the TTL for cached company/job search results.
	SearchTTL time.Duration `env:"CACHE_SEARCH_TTL" envDefault:"60s"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.SearchTTL <= 0 {
		c.SearchTTL = 60 * time.Second
	}
}
