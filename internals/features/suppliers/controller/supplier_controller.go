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
	supplierDTO "contaspagar_backend/internals/features/suppliers/dto"
	supplierModel "contaspagar_backend/internals/features/suppliers/model"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/errmsg"
	"contaspagar_backend/internals/helpers/format"
)

var validate = validator.New()

type SupplierController struct {
	DB    *gorm.DB
	Audit auditService.Recorder
}

func NewSupplierController(db *gorm.DB, audit auditService.Recorder) *SupplierController {
	return &SupplierController{DB: db, Audit: audit}
}

// composeAddress junta endereço livre com o CNPJ normalizado.
func composeAddress(address, cnpj string) (string, error) {
	address = strings.TrimSpace(address)
	cnpj = strings.TrimSpace(cnpj)
	if cnpj == "" {
		return address, nil
	}
	digits := format.UnformatCNPJ(cnpj)
	if !format.IsValidCNPJ(digits) {
		return "", errors.New("CNPJ inválido. Informe os 14 dígitos.")
	}
	tag := "CNPJ: " + format.FormatCNPJ(digits)
	if address == "" {
		return tag, nil
	}
	return address + "\n" + tag, nil
}

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (sc *SupplierController) applyRequest(m *supplierModel.SupplierModel, name, email, phone, address, cnpj, typeID string) error {
	composed, err := composeAddress(address, cnpj)
	if err != nil {
		return err
	}
	phoneDigits := format.UnformatPhoneNumber(phone)
	if phoneDigits != "" && !format.IsValidPhoneNumber(phoneDigits) {
		return errors.New("Telefone inválido. Use DDD + número.")
	}

	m.SupplierName = strings.TrimSpace(name)
	m.SupplierEmail = strOrNil(email)
	m.SupplierPhone = strOrNil(phoneDigits)
	m.SupplierAddress = strOrNil(composed)

	m.SupplierTypeID = nil
	if typeID != "" {
		parsed, err := uuid.Parse(typeID)
		if err != nil {
			return errors.New("Tipo de fornecedor inválido")
		}
		m.SupplierTypeID = &parsed
	}
	return nil
}

// GetAll lista os fornecedores do usuário com paginação.
func (sc *SupplierController) GetAll(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := sc.DB.Model(&supplierModel.SupplierModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	var suppliers []supplierModel.SupplierModel
	if err := sc.DB.
		Preload("SupplierType").
		Where("user_id = ?", userID).
		Order("supplier_name ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&suppliers).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	pagination := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "Fornecedores encontrados", suppliers, &pagination)
}

// GetByID devolve um fornecedor do usuário.
func (sc *SupplierController) GetByID(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	supplierID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de fornecedor inválido")
	}

	var supplier supplierModel.SupplierModel
	if err := sc.DB.Preload("SupplierType").
		Where("supplier_id = ? AND user_id = ?", supplierID, userID).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Fornecedor não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	return helpers.JsonOK(c, "Fornecedor encontrado", supplier)
}

// Create cadastra um fornecedor e audita a inserção.
func (sc *SupplierController) Create(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input supplierDTO.CreateSupplierRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	supplier := supplierModel.SupplierModel{UserID: userID}
	if err := sc.applyRequest(&supplier, input.Name, input.Email, input.Phone, input.Address, input.CNPJ, input.TypeID); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := sc.DB.Create(&supplier).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	sc.Audit.Record(c.Context(), userID, "suppliers", supplier.SupplierID.String(), auditService.ActionCreate, nil, supplier)
	return helpers.JsonCreated(c, "Fornecedor cadastrado com sucesso", supplier)
}

// Update altera um fornecedor e audita valores antigos e novos.
func (sc *SupplierController) Update(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	supplierID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de fornecedor inválido")
	}

	var input supplierDTO.UpdateSupplierRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var supplier supplierModel.SupplierModel
	if err := sc.DB.Where("supplier_id = ? AND user_id = ?", supplierID, userID).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Fornecedor não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	old := supplier
	if err := sc.applyRequest(&supplier, input.Name, input.Email, input.Phone, input.Address, input.CNPJ, input.TypeID); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := sc.DB.Save(&supplier).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	sc.Audit.Record(c.Context(), userID, "suppliers", supplier.SupplierID.String(), auditService.ActionUpdate, old, supplier)
	return helpers.JsonUpdated(c, "Fornecedor atualizado com sucesso", supplier)
}

// Delete remove (soft delete) um fornecedor e audita a exclusão.
func (sc *SupplierController) Delete(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	supplierID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de fornecedor inválido")
	}

	var supplier supplierModel.SupplierModel
	if err := sc.DB.Where("supplier_id = ? AND user_id = ?", supplierID, userID).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Fornecedor não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	// Bloqueia exclusão com contas vinculadas
	var count int64
	if err := sc.DB.Table("bills").
		Where("supplier_id = ?", supplierID).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	if count > 0 {
		return helpers.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Não é possível excluir: existem %d conta(s) vinculadas a este fornecedor.", count))
	}

	if err := sc.DB.Delete(&supplier).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	sc.Audit.Record(c.Context(), userID, "suppliers", supplier.SupplierID.String(), auditService.ActionDelete, supplier, nil)
	return helpers.JsonDeleted(c, "Fornecedor excluído com sucesso", nil)
}

