package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

// BaseRoutes expõe informações básicas do serviço.
func BaseRoutes(api fiber.Router) {
	api.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "contaspagar_backend",
			"status":  "online",
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
