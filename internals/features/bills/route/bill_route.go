package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	billController "contaspagar_backend/internals/features/bills/controller"
)

// BillRoutes registra as rotas de contas a pagar (exigem autenticação).
func BillRoutes(api fiber.Router, db *gorm.DB, audit auditService.Recorder) {
	ctrl := billController.NewBillController(db, audit)
	attachCtrl := billController.NewBillAttachmentController(db, audit)

	bills := api.Group("/bills")
	bills.Get("/calendar", ctrl.Calendar)
	bills.Get("/", ctrl.GetAll)
	bills.Post("/", ctrl.Create)
	bills.Get("/:id", ctrl.GetByID)
	bills.Put("/:id", ctrl.Update)
	bills.Delete("/:id", ctrl.Delete)
	bills.Patch("/:id/status", ctrl.UpdateStatus)

	bills.Post("/:id/attachments", attachCtrl.Upload)
	bills.Get("/:id/attachments", attachCtrl.List)

	api.Delete("/attachments/:id", attachCtrl.Delete)
}
