package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"contaspagar_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem correta:
// recovery primeiro (pega panics de tudo), depois CORS, logger e limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
