package analysis

import (
	"encoding/json"

	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for AI analysis results.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the analysis routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/ai")
	group.Post("/analysis", h.HandleSaveAnalysis)
}

// HandleSaveAnalysis acknowledges an AI analysis submission.
// @Summary Save AI Analysis
// @Description Accepts any JSON payload and acknowledges it with a generated analysis id. Nothing is stored.
// @Tags analysis
// @Accept json
// @Produce json
// @Success 200 {object} analysis.AnalysisResult "Analysis Result"
// @Failure 400 {string} string "Invalid JSON"
// @Router /api/ai/analysis [post]
func (h *Handler) HandleSaveAnalysis(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	// The payload is ignored, but it must still be valid JSON. Any JSON
	// value is accepted, not just objects.
	var payload any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		l.Warn("Analysis body is not valid JSON")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	return c.JSON(h.service.SaveAnalysis())
}
