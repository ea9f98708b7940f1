package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "./sorteio.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Structured)
	assert.Zero(t, cfg.Draw.Seed)
	assert.Equal(t, 100, cfg.Draw.MaxConcurrent)
	assert.Equal(t, 700*time.Millisecond, cfg.Draw.RevealInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "3s")
	t.Setenv("DB_PATH", "/tmp/draws.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("LOG_STRUCTURED", "false")
	t.Setenv("DRAW_SEED", "42")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "/tmp/draws.db", cfg.Database.Path)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Logging.Structured)
	assert.Equal(t, uint64(42), cfg.Draw.Seed)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowedOrigins)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("IDLE_TIMEOUT", "soon")
	t.Setenv("DRAW_SEED", "-1")
	t.Setenv("LOG_STRUCTURED", "maybe")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")

	cfg := Load()

	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Zero(t, cfg.Draw.Seed)
	assert.True(t, cfg.Logging.Structured)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\nLOG_LEVEL=debug\n"), 0o600))

	// Variables already in the environment win over the file.
	t.Setenv("LOG_LEVEL", "warn")
	// Unset after the test so the file value does not leak.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg := Load()

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
