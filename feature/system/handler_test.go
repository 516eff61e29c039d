package system

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	NewHandler(zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body HealthStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)

	_, err = time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}

func TestHandleConfig(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/config", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body AppConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, DefaultAppConfig(), body)
	assert.Equal(t, "AthleteAI", body.AppName)
	assert.Equal(t, "1.0.0", body.Version)
	assert.True(t, body.Features.AITesting)
	assert.True(t, body.Features.FaceRecognition)
	assert.True(t, body.Features.OfflineMode)
	assert.True(t, body.Features.PWA)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(zap.NewNop())

	assert.Equal(t, "system", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
