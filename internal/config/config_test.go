package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dairybook")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost:5432/dairybook", cfg.Database.URL)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 10, cfg.Reports.CacheTTLMinutes)
	assert.Equal(t, 15, cfg.Reports.RefreshIntervalMinutes)
}

func TestLoad_TomlFileWithEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
port = 8085

[database]
url = "postgres://filehost:5432/dairybook"

[reports]
cache_ttl_minutes = 5
refresh_interval_minutes = 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DATABASE_URL", "postgres://envhost:5432/dairybook")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.Port)
	// Environment wins over the file
	assert.Equal(t, "postgres://envhost:5432/dairybook", cfg.Database.URL)
	assert.Equal(t, 5, cfg.Reports.CacheTTLMinutes)
	assert.Equal(t, 30, cfg.Reports.RefreshIntervalMinutes)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dairybook")

	cfg, err := Load("/nonexistent/config.toml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
