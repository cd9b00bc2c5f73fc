package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "/api", cfg.PublicBasePath)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "json", cfg.StoreType)
	assert.Equal(t, "local", cfg.LockBackend)
	assert.Equal(t, filepath.Join("./data", "files"), cfg.FilesDir())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=4100\nMAX_UPLOAD_BYTES=1024\n"), 0o644))
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("PORT", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	// godotenv only fills unset variables
	os.Unsetenv("PORT")
	os.Unsetenv("MAX_UPLOAD_BYTES")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "4100", cfg.Port)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoadMissingExplicitEnvFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{StoreType: "json", LockBackend: "local", MaxUploadBytes: 1, DataDir: "data"}
	require.NoError(t, base.Validate())

	sql := base
	sql.StoreType = "sql"
	assert.ErrorContains(t, sql.Validate(), "DB_DATABASE")

	redis := base
	redis.LockBackend = "redis"
	assert.ErrorContains(t, redis.Validate(), "REDIS_ADDR")

	bad := base
	bad.StoreType = "mongo"
	assert.Error(t, bad.Validate())

	zero := base
	zero.MaxUploadBytes = 0
	assert.Error(t, zero.Validate())
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("DB_CONNECTION_LIMIT", "lots")
	assert.Equal(t, 5, getEnvAsInt("DB_CONNECTION_LIMIT", 5))
}
