package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "contaspagar_backend/internals/features/users/profile/controller"
)

// ProfileRoutes registra as rotas de perfil (exigem autenticação).
func ProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Put("/", ctrl.UpdateProfile)
}
