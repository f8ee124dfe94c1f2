package errmsg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslatePgError(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"23505", "Este registro já existe."},
		{"23503", "Não é possível excluir este item pois está sendo usado."},
		{"23502", "Todos os campos obrigatórios devem ser preenchidos."},
		{"42501", "Você não tem permissão para realizar esta ação."},
	}
	for _, tt := range tests {
		err := &pgconn.PgError{Code: tt.code}
		assert.Equal(t, tt.want, Translate(err), "SQLSTATE %s", tt.code)
	}
}

func TestTranslatePgErrorEmbrulhado(t *testing.T) {
	err := fmt.Errorf("insert falhou: %w", &pgconn.PgError{Code: "23505"})
	assert.Equal(t, "Este registro já existe.", Translate(err))
}

func TestTranslateRecordNotFound(t *testing.T) {
	assert.Equal(t, "Registro não encontrado.", Translate(gorm.ErrRecordNotFound))
}

func TestTranslateSubstrings(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Invalid login credentials", "Credenciais de login inválidas. Verifique seu e-mail e senha."},
		{"User already registered", "Usuário já cadastrado com este e-mail."},
		{"dial tcp: connection refused", "Erro de conexão. Verifique sua internet e tente novamente."},
		{"ERROR: duplicate key value violates unique constraint", "Este registro já existe."},
		{"update or delete violates foreign key constraint", "Não é possível excluir este item pois está sendo usado."},
		{"pq: permission denied for table bills", "Você não tem permissão para realizar esta ação."},
		{"null value in column \"description\"", "Todos os campos obrigatórios devem ser preenchidos."},
		{"too many requests", "Muitas tentativas. Aguarde alguns minutos antes de tentar novamente."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Translate(errors.New(tt.raw)), "raw: %s", tt.raw)
	}
}

func TestTranslateFallback(t *testing.T) {
	assert.Equal(t, "Ocorreu um erro inesperado. Tente novamente.",
		Translate(errors.New("algo muito estranho")))
}
