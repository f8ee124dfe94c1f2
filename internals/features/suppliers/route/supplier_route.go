package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	supplierController "contaspagar_backend/internals/features/suppliers/controller"
)

// SupplierRoutes registra as rotas de fornecedores e categorias
// (exigem autenticação).
func SupplierRoutes(api fiber.Router, db *gorm.DB, audit auditService.Recorder) {
	ctrl := supplierController.NewSupplierController(db, audit)
	typeCtrl := supplierController.NewSupplierTypeController(db, audit)

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", ctrl.GetAll)
	suppliers.Post("/", ctrl.Create)
	suppliers.Get("/:id", ctrl.GetByID)
	suppliers.Put("/:id", ctrl.Update)
	suppliers.Delete("/:id", ctrl.Delete)

	types := api.Group("/supplier-types")
	types.Get("/", typeCtrl.GetAll)
	types.Post("/", typeCtrl.Create)
	types.Put("/:id", typeCtrl.Update)
	types.Delete("/:id", typeCtrl.Delete)
}
