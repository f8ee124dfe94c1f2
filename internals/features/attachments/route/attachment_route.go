package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attachmentController "contaspagar_backend/internals/features/attachments/controller"
)

// AttachmentRoutes registra o proxy de download (exige autenticação).
func AttachmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attachmentController.NewDownloadController(db)

	api.Post("/attachments/download", ctrl.Download)
}
