package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "contaspagar_backend/internals/features/users/auth/controller"
	"contaspagar_backend/internals/middlewares"
	authMw "contaspagar_backend/internals/middlewares/auth"
)

// AuthRoutes registra as rotas públicas e protegidas de autenticação.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	protected := auth.Group("", authMw.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/reset-password", middlewares.ResetPasswordRateLimiter(), ctrl.ChangePassword)
}
