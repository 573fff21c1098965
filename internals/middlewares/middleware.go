package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the base chain: CORS, panic recovery, global rate
// limit. Route-specific limiters (contact form) are attached where mounted.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
}
