package system

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the health and configuration endpoints.
type Handler struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates a new HTTP handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger, now: time.Now}
}

// RegisterRoutes registers the system routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/health", h.HandleHealth)
	group.Get("/config", h.HandleConfig)
}

// HandleHealth reports server liveness.
// @Summary Health Check
// @Description Reports server liveness with the current timestamp.
// @Tags system
// @Produce json
// @Success 200 {object} system.HealthStatus "Health Status"
// @Router /api/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthStatus{
		Status:    "healthy",
		Timestamp: h.now().Format(time.RFC3339),
	})
}

// HandleConfig serves the fixed client configuration.
// @Summary Client Configuration
// @Description Serves the fixed application name, version and feature flags.
// @Tags system
// @Produce json
// @Success 200 {object} system.AppConfig "Client Configuration"
// @Router /api/config [get]
func (h *Handler) HandleConfig(c *fiber.Ctx) error {
	return c.JSON(DefaultAppConfig())
}
