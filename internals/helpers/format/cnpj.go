// Package format concentra formatação de documentos brasileiros
// (CNPJ, telefone, CEP) usada nos cadastros de fornecedor e perfil.
package format

import "strings"

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCNPJ aplica a máscara xx.xxx.xxx/xxxx-xx progressivamente.
func FormatCNPJ(value string) string {
	numbers := onlyDigits(value)
	if len(numbers) > 14 {
		numbers = numbers[:14]
	}

	switch {
	case len(numbers) == 0:
		return ""
	case len(numbers) <= 2:
		return numbers
	case len(numbers) <= 5:
		return numbers[:2] + "." + numbers[2:]
	case len(numbers) <= 8:
		return numbers[:2] + "." + numbers[2:5] + "." + numbers[5:]
	case len(numbers) <= 12:
		return numbers[:2] + "." + numbers[2:5] + "." + numbers[5:8] + "/" + numbers[8:]
	default:
		return numbers[:2] + "." + numbers[2:5] + "." + numbers[5:8] + "/" + numbers[8:12] + "-" + numbers[12:]
	}
}

// UnformatCNPJ remove a máscara e devolve apenas os dígitos.
func UnformatCNPJ(value string) string {
	return onlyDigits(value)
}

// IsValidCNPJ verifica se o CNPJ está completo (14 dígitos).
func IsValidCNPJ(value string) bool {
	return len(UnformatCNPJ(value)) == 14
}
