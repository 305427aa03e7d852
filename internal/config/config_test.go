package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"JWT_SECRET": "dev-secret"})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "token", cfg.CookieName)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 5, cfg.LoginPerMin)
	assert.False(t, cfg.OwnerScoped)
	assert.True(t, cfg.IsDev())
}

func TestLoadFromRequiresSecret(t *testing.T) {
	_, err := LoadFrom(map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadFromProductionRequirements(t *testing.T) {
	vars := map[string]string{
		"APP_ENV":    "production",
		"JWT_SECRET": "short",
	}
	_, err := LoadFrom(vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 bytes")

	vars["JWT_SECRET"] = strings.Repeat("s", 32)
	_, err = LoadFrom(vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	vars["DATABASE_URL"] = "postgres://localhost/ledger"
	_, err = LoadFrom(vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_URL")

	vars["REDIS_URL"] = "redis://localhost:6379/0"
	cfg, err := LoadFrom(vars)
	require.NoError(t, err)
	assert.False(t, cfg.IsDev())
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"JWT_SECRET":            "dev-secret",
		"PORT":                  ":9090",
		"LOG_LEVEL":             "DEBUG",
		"SESSION_TTL":           "1h",
		"SESSION_COOKIE_SECURE": "false",
		"LEDGER_OWNER_SCOPED":   "true",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.OwnerScoped)
}

func TestLoadFromInvalidDuration(t *testing.T) {
	_, err := LoadFrom(map[string]string{"JWT_SECRET": "x", "SESSION_TTL": "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
