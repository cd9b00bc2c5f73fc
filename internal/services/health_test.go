package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestHealthCheckDataDirOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	result := services.HealthCheck(context.Background(), services.HealthDeps{DataDir: dir, Logger: zaptest.NewLogger(t)})

	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Storage)
	assert.Equal(t, "local", result.Locks)
	assert.Empty(t, result.Database)
	assert.Empty(t, result.ErrorMessage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file is removed")
}

func TestHealthCheckWithDatabaseAndRedis(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	result := services.HealthCheck(context.Background(), services.HealthDeps{DataDir: t.TempDir(), DB: db, Redis: client})
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Locks)
	assert.Equal(t, "sqlite", result.Details["database_type"])
}

func TestHealthCheckUnhealthy(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	result := services.HealthCheck(context.Background(), services.HealthDeps{DataDir: filepath.Join(blocker, "data"), Redis: client})
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unwritable", result.Storage)
	assert.Equal(t, "unreachable", result.Locks)
	assert.Contains(t, result.ErrorMessage, "Data directory check failed")
	assert.Contains(t, result.ErrorMessage, "Redis ping failed")
}
