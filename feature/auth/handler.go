package auth

import (
	"encoding/json"

	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/auth")
	group.Post("/login", h.HandleLogin)
	group.Post("/register", h.HandleRegister)
}

// decodeObject parses the request body as a JSON object. Field typing is
// deliberately loose: a wrong-typed field is a domain problem for the
// handlers to shrug off, not a transport error.
func decodeObject(body []byte) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// stringField returns the named field as a string, or "" when it is absent
// or not a string.
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// HandleLogin authenticates against the demo account table.
// @Summary Demo Login
// @Description Authenticates against the fixed demo account table. Failures are reported in the body with success=false and HTTP 200.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Credentials"
// @Success 200 {object} auth.LoginResult "Login Result"
// @Failure 400 {string} string "Invalid JSON"
// @Router /api/auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fields, err := decodeObject(c.Body())
	if err != nil {
		l.Warn("Login body is not valid JSON")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	return c.JSON(h.service.Authenticate(
		stringField(fields, "email"),
		stringField(fields, "password"),
	))
}

// HandleRegister accepts a registration without persisting it.
// @Summary Demo Registration
// @Description Validates the registration fields and echoes them back with a generated id. Nothing is stored.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "Registration"
// @Success 200 {object} auth.RegisterResult "Registration Result"
// @Failure 400 {string} string "Invalid JSON"
// @Router /api/auth/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fields, err := decodeObject(c.Body())
	if err != nil {
		l.Warn("Register body is not valid JSON")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}

	return c.JSON(h.service.Register(&RegisterRequest{
		Name:     stringField(fields, "name"),
		Email:    stringField(fields, "email"),
		Password: stringField(fields, "password"),
		Role:     stringField(fields, "role"),
	}))
}
