package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	supplierDTO "contaspagar_backend/internals/features/suppliers/dto"
	supplierModel "contaspagar_backend/internals/features/suppliers/model"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/errmsg"
)

type SupplierTypeController struct {
	DB    *gorm.DB
	Audit auditService.Recorder
}

func NewSupplierTypeController(db *gorm.DB, audit auditService.Recorder) *SupplierTypeController {
	return &SupplierTypeController{DB: db, Audit: audit}
}

// GetAll lista as categorias do usuário em ordem alfabética.
func (tc *SupplierTypeController) GetAll(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var types []supplierModel.SupplierTypeModel
	if err := tc.DB.Where("user_id = ?", userID).
		Order("supplier_type_name ASC").
		Find(&types).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	return helpers.JsonOK(c, "Tipos de fornecedor encontrados", types)
}

// Create cadastra uma nova categoria.
func (tc *SupplierTypeController) Create(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input supplierDTO.CreateSupplierTypeRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	st := supplierModel.SupplierTypeModel{
		UserID:           userID,
		SupplierTypeName: strings.TrimSpace(input.Name),
	}
	if err := tc.DB.Create(&st).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	tc.Audit.Record(c.Context(), userID, "supplier_types", st.SupplierTypeID.String(), auditService.ActionCreate, nil, st)
	return helpers.JsonCreated(c, "Tipo de fornecedor cadastrado com sucesso", st)
}

// Update renomeia uma categoria.
func (tc *SupplierTypeController) Update(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	typeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de tipo inválido")
	}

	var input supplierDTO.UpdateSupplierTypeRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var st supplierModel.SupplierTypeModel
	if err := tc.DB.Where("supplier_type_id = ? AND user_id = ?", typeID, userID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Tipo de fornecedor não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	old := st
	st.SupplierTypeName = strings.TrimSpace(input.Name)
	if err := tc.DB.Save(&st).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	tc.Audit.Record(c.Context(), userID, "supplier_types", st.SupplierTypeID.String(), auditService.ActionUpdate, old, st)
	return helpers.JsonUpdated(c, "Tipo de fornecedor atualizado com sucesso", st)
}

// Delete remove uma categoria sem fornecedores vinculados.
func (tc *SupplierTypeController) Delete(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	typeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID de tipo inválido")
	}

	var st supplierModel.SupplierTypeModel
	if err := tc.DB.Where("supplier_type_id = ? AND user_id = ?", typeID, userID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Tipo de fornecedor não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	var count int64
	if err := tc.DB.Model(&supplierModel.SupplierModel{}).
		Where("supplier_type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	if count > 0 {
		return helpers.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Não é possível excluir: existem %d fornecedor(es) usando este tipo.", count))
	}

	if err := tc.DB.Delete(&st).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	tc.Audit.Record(c.Context(), userID, "supplier_types", st.SupplierTypeID.String(), auditService.ActionDelete, st, nil)
	return helpers.JsonDeleted(c, "Tipo de fornecedor excluído com sucesso", nil)
}
