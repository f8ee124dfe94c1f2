package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	bankController "contaspagar_backend/internals/features/banks/controller"
)

// BankRoutes registra as rotas de bancos (exigem autenticação).
func BankRoutes(api fiber.Router, db *gorm.DB, audit auditService.Recorder) {
	ctrl := bankController.NewBankController(db, audit)

	banks := api.Group("/banks")
	banks.Get("/", ctrl.GetAll)
	banks.Post("/", ctrl.Create)
	banks.Put("/:id", ctrl.Update)
	banks.Delete("/:id", ctrl.Delete)
}
