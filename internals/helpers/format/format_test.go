package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "", FormatCNPJ(""))
	assert.Equal(t, "12", FormatCNPJ("12"))
	assert.Equal(t, "12.345", FormatCNPJ("12345"))
	assert.Equal(t, "12.345.678", FormatCNPJ("12345678"))
	assert.Equal(t, "12.345.678/0001", FormatCNPJ("123456780001"))
	assert.Equal(t, "12.345.678/0001-95", FormatCNPJ("12345678000195"))
	// Já mascarado: normaliza
	assert.Equal(t, "12.345.678/0001-95", FormatCNPJ("12.345.678/0001-95"))
	// Excedente é cortado
	assert.Equal(t, "12.345.678/0001-95", FormatCNPJ("1234567800019599"))
}

func TestIsValidCNPJ(t *testing.T) {
	assert.True(t, IsValidCNPJ("12345678000195"))
	assert.True(t, IsValidCNPJ("12.345.678/0001-95"))
	assert.False(t, IsValidCNPJ("1234567800019"))
	assert.False(t, IsValidCNPJ(""))
}

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "", FormatPhoneNumber(""))
	assert.Equal(t, "(11", FormatPhoneNumber("11"))
	assert.Equal(t, "(11)9876", FormatPhoneNumber("119876"))
	assert.Equal(t, "(11)98765-4321", FormatPhoneNumber("11987654321"))
	assert.Equal(t, "(11)98765-4321", FormatPhoneNumber("(11) 98765-4321"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("1132654321"))  // fixo
	assert.True(t, IsValidPhoneNumber("11987654321")) // celular
	assert.False(t, IsValidPhoneNumber("987654321"))
	assert.False(t, IsValidPhoneNumber(""))
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "", FormatCEP(""))
	assert.Equal(t, "01310", FormatCEP("01310"))
	assert.Equal(t, "01310-100", FormatCEP("01310100"))
	assert.Equal(t, "01310-100", FormatCEP("01310-100"))
}

func TestIsValidCEP(t *testing.T) {
	assert.True(t, IsValidCEP("01310100"))
	assert.True(t, IsValidCEP("01310-100"))
	assert.False(t, IsValidCEP("0131010"))
}
