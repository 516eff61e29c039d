package headers

import (
	"github.com/gofiber/fiber/v2"
)

// The SPA is opened from file:// and foreign origins during development, so
// the API answers every origin and forbids caching of anything it serves.
var policy = map[string]string{
	fiber.HeaderAccessControlAllowOrigin:  "*",
	fiber.HeaderAccessControlAllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	fiber.HeaderAccessControlAllowHeaders: "Content-Type, Authorization",
	fiber.HeaderCacheControl:              "no-cache, no-store, must-revalidate",
	fiber.HeaderPragma:                    "no-cache",
	fiber.HeaderExpires:                   "0",
}

// New returns a middleware that applies the CORS and no-cache header policy
// to every response. OPTIONS preflight requests are answered here with an
// empty 200 and never reach the routes.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for k, v := range policy {
			c.Set(k, v)
		}
		if c.Method() == fiber.MethodOptions {
			// Send(nil) keeps the body empty; SendStatus would fill in "OK"
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}
