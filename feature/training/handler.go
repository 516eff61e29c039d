package training

import (
	"encoding/json"

	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for training sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the training routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/training")
	group.Post("/sessions", h.HandleSaveSession)
}

// HandleSaveSession acknowledges a training session submission.
// @Summary Save Training Session
// @Description Accepts any JSON payload and acknowledges it with a generated session id. Nothing is stored.
// @Tags training
// @Accept json
// @Produce json
// @Success 200 {object} training.SessionResult "Session Result"
// @Failure 400 {string} string "Invalid JSON"
// @Router /api/training/sessions [post]
func (h *Handler) HandleSaveSession(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	// The payload is ignored, but it must still be valid JSON. Any JSON
	// value is accepted, not just objects.
	var payload any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		l.Warn("Session body is not valid JSON")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	return c.JSON(h.service.SaveSession())
}
