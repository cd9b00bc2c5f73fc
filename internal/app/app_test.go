package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/planning-portal/internal/config"
	"github.com/localnerve/planning-portal/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Port:           "3000",
		PublicBasePath: "/api",
		DataDir:        t.TempDir(),
		MaxUploadBytes: 1 << 10,
		StoreType:      "json",
		LockBackend:    "local",
		LockTTLMillis:  1000,
	}
}

func TestNewJSONBackend(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.DB)
	assert.Nil(t, a.Redis)
	_, ok := a.Stores.Jobs.(*store.JSONJobStore)
	assert.True(t, ok)
	assert.Nil(t, a.HealthDeps().Redis)
}

func TestNewSQLBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreType = "sql"
	cfg.DBType = "sqlite-pure"
	cfg.DBDatabase = "file::memory:"
	cfg.DBConnectionLimit = 1

	a, err := New(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.DB)
	_, ok := a.Stores.Jobs.(*store.SQLJobStore)
	assert.True(t, ok)
}

func TestNewRedisUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.LockBackend = "redis"
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := New(context.Background(), cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestServerRoutes(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer a.Close()
	server := a.Server()

	resp, err := server.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = server.Test(httptest.NewRequest("GET", "/api/nothing-here", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["ok"])

	resp, err = server.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestErrorHandler(t *testing.T) {
	a := &App{Logger: zaptest.NewLogger(t)}
	app := fiber.New(fiber.Config{ErrorHandler: a.errorHandler})
	app.Post("/too-big", func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("disk on fire") })

	resp, err := app.Test(httptest.NewRequest("POST", "/too-big", nil))
	require.NoError(t, err)
	assert.Equal(t, 413, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "payload_too_large", body["type"])

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal Server Error", body["error"], "internal details stay in the log")
}
