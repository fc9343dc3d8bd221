package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "keywords.status_changed", cfg.Redis.Channel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PSQL_ADDRESS", "postgres://kw:secret@db:5433/keywords?sslmode=disable")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "db:5433", cfg.Psql.Addr.Host)
	assert.Equal(t, "/keywords", cfg.Psql.Addr.Path)
	assert.True(t, cfg.Psql.RunMigrations)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerFallbacks(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_FORMAT", "xml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}

func TestLoggerHandler(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(cfg.Log.NewHandler(&buf))
	logger.Info("dropped")
	logger.Warn("kept", "keyword", "shoes")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "shoes", rec["keyword"])
}
