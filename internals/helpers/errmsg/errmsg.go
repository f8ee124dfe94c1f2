// Package errmsg traduz erros de backend para mensagens em português
// exibíveis ao usuário. A tabela é por substring, com fallback genérico;
// erros do Postgres também são detectados pelo SQLSTATE.
package errmsg

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const fallback = "Ocorreu um erro inesperado. Tente novamente."

// SQLSTATEs relevantes (classe 23 = integridade)
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInsufficientPrivs   = "42501"
)

// Translate converte qualquer erro em mensagem amigável.
func Translate(err error) string {
	if err == nil {
		return "Ocorreu um erro inesperado"
	}

	// 1) Erros do Postgres via driver (preferência: código, não texto)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return "Este registro já existe."
		case pgForeignKeyViolation:
			return "Não é possível excluir este item pois está sendo usado."
		case pgNotNullViolation:
			return "Todos os campos obrigatórios devem ser preenchidos."
		case pgInsufficientPrivs:
			return "Você não tem permissão para realizar esta ação."
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Registro não encontrado."
	}

	message := err.Error()

	// 2) Tabela por substring (erros de auth e rede vêm como texto)
	switch {
	case strings.Contains(message, "Invalid login credentials"):
		return "Credenciais de login inválidas. Verifique seu e-mail e senha."
	case strings.Contains(message, "Email not confirmed"):
		return "E-mail não confirmado. Verifique sua caixa de entrada."
	case strings.Contains(message, "User already registered"):
		return "Usuário já cadastrado com este e-mail."
	case strings.Contains(message, "Password should be at least"):
		return "A senha deve ter pelo menos 6 caracteres."
	case strings.Contains(message, "Invalid email"):
		return "E-mail inválido. Verifique o formato do e-mail."
	case strings.Contains(message, "Network request failed"), strings.Contains(message, "connection refused"):
		return "Erro de conexão. Verifique sua internet e tente novamente."
	case strings.Contains(message, "User not authenticated"):
		return "Usuário não autenticado. Faça login novamente."
	case strings.Contains(message, "duplicate key value"):
		return "Este registro já existe."
	case strings.Contains(message, "foreign key constraint"):
		return "Não é possível excluir este item pois está sendo usado."
	case strings.Contains(message, "permission denied"), strings.Contains(message, "insufficient_privilege"):
		return "Você não tem permissão para realizar esta ação."
	case strings.Contains(message, "null value in column"):
		return "Todos os campos obrigatórios devem ser preenchidos."
	case strings.Contains(message, "rate limit"), strings.Contains(message, "too many requests"):
		return "Muitas tentativas. Aguarde alguns minutos antes de tentar novamente."
	}

	return fallback
}
