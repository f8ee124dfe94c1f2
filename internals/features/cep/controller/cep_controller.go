package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/viacep"
)

type CepController struct{}

func NewCepController() *CepController {
	return &CepController{}
}

// Lookup consulta o ViaCEP e devolve o endereço do CEP informado.
func (cc *CepController) Lookup(c *fiber.Ctx) error {
	address, err := viacep.FetchAddress(c.Params("cep"))
	if err != nil {
		switch {
		case errors.Is(err, viacep.ErrInvalidCEP):
			return helpers.JsonError(c, fiber.StatusBadRequest, "CEP inválido. Informe 8 dígitos.")
		case errors.Is(err, viacep.ErrCEPNotFound):
			return helpers.JsonError(c, fiber.StatusNotFound, "CEP não encontrado")
		default:
			return helpers.JsonError(c, fiber.StatusBadGateway, "Falha ao consultar o CEP. Tente novamente.")
		}
	}
	return helpers.JsonOK(c, "Endereço encontrado", address)
}
