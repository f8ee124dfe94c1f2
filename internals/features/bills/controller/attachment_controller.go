package controller

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	billModel "contaspagar_backend/internals/features/bills/model"
	"contaspagar_backend/internals/constants"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/errmsg"
	"contaspagar_backend/internals/helpers/images"
	"contaspagar_backend/internals/helpers/storage"
)

const maxAttachmentSize = 10 << 20 // 10 MB

type BillAttachmentController struct {
	DB    *gorm.DB
	Audit auditService.Recorder
}

func NewBillAttachmentController(db *gorm.DB, audit auditService.Recorder) *BillAttachmentController {
	return &BillAttachmentController{DB: db, Audit: audit}
}

func (ac *BillAttachmentController) loadBill(c *fiber.Ctx, userID uuid.UUID) (*billModel.BillModel, error) {
	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helpers.JsonError(c, fiber.StatusBadRequest, "ID de conta inválido")
	}
	var bill billModel.BillModel
	if err := ac.DB.Where("bill_id = ? AND user_id = ?", billID, userID).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helpers.JsonError(c, fiber.StatusNotFound, "Conta não encontrada")
		}
		return nil, helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	return &bill, nil
}

// Upload recebe um anexo multipart para uma parcela. PDFs, JPEGs e PNGs
// são aceitos; imagens ganham uma miniatura WebP no storage.
func (ac *BillAttachmentController) Upload(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	bill, err := ac.loadBill(c, userID)
	if err != nil || bill == nil {
		return err
	}

	installmentNumber, err := strconv.Atoi(c.FormValue("installment_number", "1"))
	if err != nil || installmentNumber < 1 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Número da parcela inválido")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Arquivo não enviado")
	}
	if fileHeader.Size > maxAttachmentSize {
		return helpers.JsonError(c, fiber.StatusRequestEntityTooLarge, "Arquivo excede o limite de 10MB")
	}
	if !constants.IsAllowedAttachment(fileHeader.Filename) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Formato não suportado. Envie PDF, JPEG ou PNG.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao ler o arquivo")
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao ler o arquivo")
	}

	contentType := constants.ContentTypeFromExt(fileHeader.Filename)
	// Caminho começa com o user_id: o proxy de download valida esse prefixo
	objectPath := storage.GenerateUniqueFilename(userID.String(), fileHeader.Filename)

	if err := storage.Upload(storage.AttachmentBucket, objectPath, contentType, bytes.NewBuffer(data)); err != nil {
		log.Println("[ERROR] Upload de anexo falhou:", err)
		return helpers.JsonError(c, fiber.StatusBadGateway, "Falha ao enviar o arquivo para o storage")
	}

	var previewPath *string
	if constants.IsImageAttachment(fileHeader.Filename) {
		if preview, perr := images.EncodePreview(data); perr == nil {
			p := images.PreviewPathFor(objectPath)
			if uerr := storage.Upload(storage.AttachmentBucket, p, "image/webp", preview); uerr == nil {
				previewPath = &p
			} else {
				log.Println("[WARNING] Upload da miniatura falhou:", uerr)
			}
		} else {
			log.Println("[WARNING] Geração de miniatura falhou:", perr)
		}
	}

	attachment := billModel.BillInstallmentAttachmentModel{
		BillID:            bill.BillID,
		UserID:            userID,
		InstallmentNumber: installmentNumber,
		FileName:          fileHeader.Filename,
		FilePath:          objectPath,
		ContentType:       contentType,
		PreviewPath:       previewPath,
	}
	if err := ac.DB.Create(&attachment).Error; err != nil {
		// Linha não gravou: não deixa blob órfão
		_ = storage.Delete(storage.AttachmentBucket, objectPath)
		if previewPath != nil {
			_ = storage.Delete(storage.AttachmentBucket, *previewPath)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	ac.Audit.Record(c.Context(), userID, "bill_installment_attachments",
		attachment.AttachmentID.String(), auditService.ActionCreate, nil, attachment)
	return helpers.JsonCreated(c, "Anexo enviado com sucesso", attachment)
}

// List devolve os anexos de uma conta ordenados por parcela.
func (ac *BillAttachmentController) List(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	bill, err := ac.loadBill(c, userID)
	if err != nil || bill == nil {
		return err
	}

	var attachments []billModel.BillInstallmentAttachmentModel
	if err := ac.DB.Where("bill_id = ? AND user_id = ?", bill.BillID, userID).
		Order("installment_number ASC, created_at ASC").
		Find(&attachments).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	return helpers.JsonOK(c, "Anexos encontrados", attachments)
}

// Delete remove o blob do storage e a linha do banco.
func (ac *BillAttachmentController) Delete(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	attachmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de anexo inválido")
	}

	var attachment billModel.BillInstallmentAttachmentModel
	if err := ac.DB.Where("attachment_id = ? AND user_id = ?", attachmentID, userID).
		First(&attachment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Anexo não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	if err := storage.Delete(storage.AttachmentBucket, attachment.FilePath); err != nil {
		log.Println("[WARNING] Falha ao remover blob do storage:", err)
	}
	if attachment.PreviewPath != nil {
		if err := storage.Delete(storage.AttachmentBucket, *attachment.PreviewPath); err != nil {
			log.Println("[WARNING] Falha ao remover miniatura do storage:", err)
		}
	}

	if err := ac.DB.Delete(&attachment).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	ac.Audit.Record(c.Context(), userID, "bill_installment_attachments",
		attachment.AttachmentID.String(), auditService.ActionDelete, attachment, nil)
	return helpers.JsonDeleted(c, "Anexo excluído com sucesso", nil)
}
