package config

import (
	"os"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "test-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 5*time.Second, cfg.Postgres.QueryTimeout)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.Cache.Enabled)
	assert.False(t, cfg.IsDev)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	if _, ok := os.LookupEnv("SECRET_KEY"); ok {
		t.Skip("SECRET_KEY set in environment")
	}

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestSanitize_ClampsBcryptCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"below minimum", 1, minBcryptCost},
		{"above maximum", 31, maxBcryptCost},
		{"in range", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{SecretKey: "x", BcryptCost: tt.cost}
			cfg.Sanitize()
			assert.Equal(t, tt.want, cfg.BcryptCost)
		})
	}
}

func TestSanitize_QueryTimeoutGuardrail(t *testing.T) {
	cfg := DBConfig{QueryTimeout: -1}
	cfg.Sanitize()
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
}

func TestDetectDevMode_FromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := AppConfig{}
	cfg.detectDevMode()
	assert.True(t, cfg.IsDev)
}
