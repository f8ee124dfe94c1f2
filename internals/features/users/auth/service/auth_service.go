package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"contaspagar_backend/internals/configs"
	authDTO "contaspagar_backend/internals/features/users/auth/dto"
	authModel "contaspagar_backend/internals/features/users/auth/model"
	"contaspagar_backend/internals/features/users/auth/security"
	profileModel "contaspagar_backend/internals/features/users/profile/model"
	helpers "contaspagar_backend/internals/helpers"
	"contaspagar_backend/internals/helpers/errmsg"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour

	// timeouts para queries no hot path
	qryTimeoutShort = 800 * time.Millisecond
	qryTimeoutLong  = 1200 * time.Millisecond
)

var validate = validator.New()

/* ==========================
   Helpers
========================== */

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET não configurado")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET não configurado")
	}
	return secret, nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func issueTokens(userID uuid.UUID) (authDTO.AuthTokens, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return authDTO.AuthTokens{}, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return authDTO.AuthTokens{}, err
	}

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id": userID.String(),
		"typ":     "access",
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTLDefault).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return authDTO.AuthTokens{}, err
	}

	refreshClaims := jwt.MapClaims{
		"user_id": userID.String(),
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTTLDefault).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return authDTO.AuthTokens{}, err
	}

	return authDTO.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

func buildLoginResponse(db *gorm.DB, user *authModel.UserModel) (authDTO.LoginResponse, error) {
	tokens, err := issueTokens(user.UserID)
	if err != nil {
		return authDTO.LoginResponse{}, err
	}

	resp := authDTO.LoginResponse{
		User: authDTO.AuthUser{
			UserID: user.UserID.String(),
			Email:  user.UserEmail,
		},
		Tokens: tokens,
	}

	// Nome vem do perfil (best-effort)
	var prof profileModel.ProfileModel
	if err := db.Where("user_id = ?", user.UserID).First(&prof).Error; err == nil {
		resp.User.FirstName = prof.FirstName
		resp.User.LastName = prof.LastName
	}
	return resp, nil
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	user := authModel.UserModel{
		UserEmail:    strings.ToLower(strings.TrimSpace(input.Email)),
		UserPassword: passwordHash,
		UserIsActive: true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		prof := profileModel.ProfileModel{
			UserID:    user.UserID,
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
		}
		return tx.Create(&prof).Error
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Este email já está cadastrado")
		}
		log.Println("[ERROR] Falha ao registrar usuário:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	return helpers.JsonCreated(c, "Cadastro realizado com sucesso", fiber.Map{
		"user_id": user.UserID,
	})
}

/* ==========================
   LOGIN (email + senha)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !security.Default.AllowAction(email, "login") {
		return helpers.JsonError(c, fiber.StatusTooManyRequests,
			"Muitas tentativas de login. Tente novamente em alguns minutos.")
	}

	ctx, cancel := context.WithTimeout(c.Context(), qryTimeoutShort)
	defer cancel()

	var user authModel.UserModel
	err := db.WithContext(ctx).
		Where("user_email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			security.Default.Record(security.EventFailedLogin, email, "usuário inexistente")
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada. Contate o suporte.")
	}
	if user.UserPassword == "" || !checkPassword(user.UserPassword, input.Password) {
		security.Default.Record(security.EventFailedLogin, email, "senha incorreta")
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	resp, err := buildLoginResponse(db, &user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar tokens")
	}
	return helpers.JsonOK(c, "Login realizado com sucesso", resp)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID não configurado")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{clientID}); err != nil {
		log.Println("[WARNING] Token Google inválido:", err)
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token do Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Não foi possível ler o token do Google")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user authModel.UserModel
	err = db.Where("user_email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Primeiro acesso via Google: cria usuário + perfil
		user = authModel.UserModel{
			UserEmail:    email,
			UserIsActive: true,
			UserGoogleID: &googleID,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			prof := profileModel.ProfileModel{
				UserID:    user.UserID,
				FirstName: strings.TrimSpace(claimSet.GivenName),
				LastName:  strings.TrimSpace(claimSet.FamilyName),
			}
			return tx.Create(&prof).Error
		})
		if err != nil {
			log.Println("[ERROR] Falha ao criar usuário Google:", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
		}
	case err != nil:
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	default:
		if !user.UserIsActive {
			return helpers.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada. Contate o suporte.")
		}
		if user.UserGoogleID == nil {
			_ = db.Model(&user).Update("user_google_id", googleID).Error
		}
	}

	resp, err := buildLoginResponse(db, &user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar tokens")
	}
	return helpers.JsonOK(c, "Login com Google realizado com sucesso", resp)
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RefreshTokenRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(input.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido ou expirado")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido ou expirado")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido ou expirado")
	}

	var user authModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada. Contate o suporte.")
	}

	tokens, err := issueTokens(user.UserID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar tokens")
	}
	return helpers.JsonOK(c, "Token renovado com sucesso", tokens)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Token ausente")
	}

	// Expiração do token define por quanto tempo a entrada fica na blacklist
	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		secret, err := getJWTSecret()
		if err != nil {
			return nil, err
		}
		return []byte(secret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate") && !strings.Contains(low, "unique") {
			log.Println("[ERROR] Falha ao registrar logout:", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao realizar logout")
		}
	}

	return helpers.JsonOK(c, "Logout realizado com sucesso", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input authDTO.ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var user authModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	if user.UserPassword == "" || !checkPassword(user.UserPassword, input.CurrentPassword) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Senha atual incorreta")
	}

	newHash, err := hashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}
	if err := db.Model(&user).Update("user_password", newHash).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, errmsg.Translate(err))
	}

	return helpers.JsonUpdated(c, "Senha alterada com sucesso", nil)
}
