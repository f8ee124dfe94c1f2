package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	bankDTO "contaspagar_backend/internals/features/banks/dto"
	bankModel "contaspagar_backend/internals/features/banks/model"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/errmsg"
)

var validate = validator.New()

type BankController struct {
	DB    *gorm.DB
	Audit auditService.Recorder
}

func NewBankController(db *gorm.DB, audit auditService.Recorder) *BankController {
	return &BankController{DB: db, Audit: audit}
}

// GetAll lista os bancos do usuário em ordem alfabética.
func (bc *BankController) GetAll(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var banks []bankModel.BankModel
	if err := bc.DB.Where("user_id = ?", userID).
		Order("bank_name ASC").
		Find(&banks).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	return helpers.JsonOK(c, "Bancos encontrados", banks)
}

// Create cadastra um banco e audita a inserção.
func (bc *BankController) Create(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input bankDTO.CreateBankRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	bank := bankModel.BankModel{
		UserID:   userID,
		BankName: strings.TrimSpace(input.Name),
	}
	if err := bc.DB.Create(&bank).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	bc.Audit.Record(c.Context(), userID, "banks", bank.BankID.String(), auditService.ActionCreate, nil, bank)
	return helpers.JsonCreated(c, "Banco cadastrado com sucesso", bank)
}

// Update renomeia um banco.
func (bc *BankController) Update(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	bankID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de banco inválido")
	}

	var input bankDTO.UpdateBankRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var bank bankModel.BankModel
	if err := bc.DB.Where("bank_id = ? AND user_id = ?", bankID, userID).
		First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Banco não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	old := bank
	bank.BankName = strings.TrimSpace(input.Name)
	if err := bc.DB.Save(&bank).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	bc.Audit.Record(c.Context(), userID, "banks", bank.BankID.String(), auditService.ActionUpdate, old, bank)
	return helpers.JsonUpdated(c, "Banco atualizado com sucesso", bank)
}

// Delete remove um banco sem contas vinculadas.
func (bc *BankController) Delete(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	bankID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de banco inválido")
	}

	var bank bankModel.BankModel
	if err := bc.DB.Where("bank_id = ? AND user_id = ?", bankID, userID).
		First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Banco não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	var count int64
	if err := bc.DB.Table("bills").
		Where("bank_id = ?", bankID).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	if count > 0 {
		return helpers.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Não é possível excluir: existem %d conta(s) vinculadas a este banco.", count))
	}

	if err := bc.DB.Delete(&bank).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	bc.Audit.Record(c.Context(), userID, "banks", bank.BankID.String(), auditService.ActionDelete, bank, nil)
	return helpers.JsonDeleted(c, "Banco excluído com sucesso", nil)
}
