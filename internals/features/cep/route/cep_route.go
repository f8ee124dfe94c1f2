package route

import (
	"github.com/gofiber/fiber/v2"

	cepController "contaspagar_backend/internals/features/cep/controller"
)

// CepRoutes registra a consulta de CEP (exige autenticação).
func CepRoutes(api fiber.Router) {
	ctrl := cepController.NewCepController()

	api.Get("/cep/:cep", ctrl.Lookup)
}
