package router

import (
	"errors"
	"strings"

	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/config"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/loader"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/logger"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/middleware/headers"
	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// New builds the Fiber application: global middleware, the API features, and
// the static asset fallback, in that order. Route resolution follows
// registration order, so exact API routes win over the /api/ 404 fallback,
// which wins over static serving, which wins over the final 404.
func New(cfg *config.Config, logg *zap.Logger, features ...loader.Feature) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		ErrorHandler:          errorHandler,
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())

	// Header policy applies to every response, including errors and
	// preflight (which it answers itself).
	app.Use(headers.New())

	// Logging middleware (Zap + RayID)
	app.Use(requestLogger(logg))

	// Panics surface as 500s through the error handler
	app.Use(recover.New())

	// Swagger Documentation (Public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Load Features
	mgr := loader.NewManager()
	for _, f := range features {
		mgr.Register(f)
	}
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	// Anything under /api/ not claimed by a feature is an unknown endpoint,
	// regardless of method.
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return fiber.NewError(fiber.StatusNotFound, "API endpoint not found")
		}
		return c.Next()
	})

	// SPA assets. Static only answers GET/HEAD; everything else falls
	// through to the final handler below.
	app.Static("/", cfg.Server.StaticRoot)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app, nil
}

// requestLogger logs every request with its RayID attached.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}

// errorHandler renders transport errors as plain text. Routed errors carry
// their own status and reason; anything else is an unexpected failure whose
// text is forwarded to the client.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error: " + err.Error()

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		msg = e.Message
	}

	return c.Status(code).SendString(msg)
}
