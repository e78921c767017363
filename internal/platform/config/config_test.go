package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 50, cfg.ListDefaultLimit)
	assert.Equal(t, 500, cfg.ListMaxLimit)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_HTTP_PORT", "9090")
	t.Setenv("APP_POSTGRES_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("APP_AUTO_MIGRATE", "false")

	cfg, err := Load("test")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.PostgresDSN)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoad_RejectsInconsistentLimits(t *testing.T) {
	t.Setenv("APP_LIST_DEFAULT_LIMIT", "100")
	t.Setenv("APP_LIST_MAX_LIMIT", "10")

	_, err := Load("test")
	assert.Error(t, err)
}
