package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileDTO "contaspagar_backend/internals/features/users/profile/dto"
	profileModel "contaspagar_backend/internals/features/users/profile/model"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/errmsg"
	"contaspagar_backend/internals/helpers/format"
)

type ProfileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Validate: validator.New()}
}

func (pc *ProfileController) toResponse(p *profileModel.ProfileModel) profileDTO.ProfileResponse {
	return profileDTO.ProfileResponse{
		UserID:         p.UserID.String(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		PhoneFormatted: format.FormatPhoneNumber(p.Phone),
	}
}

// GetProfile devolve o perfil do usuário autenticado.
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var prof profileModel.ProfileModel
	if err := pc.DB.Where("user_id = ?", userID).First(&prof).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Perfil ainda não criado: devolve um vazio em vez de 404
			prof = profileModel.ProfileModel{UserID: userID}
			return helpers.JsonOK(c, "Perfil encontrado", pc.toResponse(&prof))
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	return helpers.JsonOK(c, "Perfil encontrado", pc.toResponse(&prof))
}

// UpdateProfile cria ou atualiza o perfil do usuário autenticado.
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input profileDTO.UpdateProfileRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := pc.Validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	phone := format.UnformatPhoneNumber(input.Phone)
	if phone != "" && !format.IsValidPhoneNumber(phone) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Telefone inválido. Use DDD + número.")
	}

	var prof profileModel.ProfileModel
	err = pc.DB.Where("user_id = ?", userID).First(&prof).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		prof = profileModel.ProfileModel{
			UserID:    userID,
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Phone:     phone,
		}
		if err := pc.DB.Create(&prof).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
		}
	case err != nil:
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	default:
		updates := map[string]interface{}{
			"first_name": strings.TrimSpace(input.FirstName),
			"last_name":  strings.TrimSpace(input.LastName),
			"phone":      phone,
		}
		if err := pc.DB.Model(&prof).Updates(updates).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
		}
		prof.FirstName = updates["first_name"].(string)
		prof.LastName = updates["last_name"].(string)
		prof.Phone = phone
	}

	return helpers.JsonUpdated(c, "Perfil atualizado com sucesso", pc.toResponse(&prof))
}
