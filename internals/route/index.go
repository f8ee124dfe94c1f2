package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	attachmentRoute "contaspagar_backend/internals/features/attachments/route"
	bankRoute "contaspagar_backend/internals/features/banks/route"
	billRoute "contaspagar_backend/internals/features/bills/route"
	cepRoute "contaspagar_backend/internals/features/cep/route"
	supplierRoute "contaspagar_backend/internals/features/suppliers/route"
	authRoute "contaspagar_backend/internals/features/users/auth/route"
	profileRoute "contaspagar_backend/internals/features/users/profile/route"
	authMw "contaspagar_backend/internals/middlewares/auth"
)

// SetupRoutes monta toda a árvore de rotas:
// /api/auth/* públicas, /api/u/* atrás do middleware de autenticação.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	audit := auditService.NewAuditService(db)

	api := app.Group("/api")
	BaseRoutes(api)

	authRoute.AuthRoutes(api, db)

	u := api.Group("/u", authMw.AuthMiddleware(db))
	profileRoute.ProfileRoutes(u, db)
	supplierRoute.SupplierRoutes(u, db, audit)
	bankRoute.BankRoutes(u, db, audit)
	billRoute.BillRoutes(u, db, audit)
	attachmentRoute.AttachmentRoutes(u, db)
	cepRoute.CepRoutes(u)
}
