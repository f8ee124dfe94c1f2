package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"contaspagar_backend/internals/constants"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/storage"
)

type DownloadController struct {
	DB *gorm.DB
}

func NewDownloadController(db *gorm.DB) *DownloadController {
	return &DownloadController{DB: db}
}

type downloadRequest struct {
	Path string `json:"path"`
}

// Download faz proxy do blob no storage para o cliente. O caminho do
// objeto começa com o user_id do dono; pedir o objeto de outro usuário
// devolve 403. O content type sai da extensão do arquivo.
func (dc *DownloadController) Download(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input downloadRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	path := strings.TrimSpace(input.Path)
	if path == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Caminho do arquivo é obrigatório")
	}

	if !strings.HasPrefix(path, userID.String()+"/") {
		return helpers.JsonError(c, fiber.StatusForbidden, "Você não tem acesso a este arquivo")
	}

	data, err := storage.Download(storage.AttachmentBucket, path)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Arquivo não encontrado")
		}
		log.Println("[ERROR] Download do storage falhou:", err)
		return helpers.JsonError(c, fiber.StatusBadGateway, "Falha ao baixar o arquivo")
	}

	c.Set(fiber.HeaderContentType, constants.ContentTypeFromExt(path))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileNameFromPath(path)+`"`)
	return c.Send(data)
}

func fileNameFromPath(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
