package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"shikshaksangh_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware stack.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
