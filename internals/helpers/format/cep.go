package format

// FormatCEP aplica a máscara ddddd-ddd.
func FormatCEP(value string) string {
	numbers := onlyDigits(value)
	if len(numbers) > 8 {
		numbers = numbers[:8]
	}
	if len(numbers) <= 5 {
		return numbers
	}
	return numbers[:5] + "-" + numbers[5:]
}

// UnformatCEP remove a máscara e devolve apenas os dígitos.
func UnformatCEP(value string) string {
	return onlyDigits(value)
}

// IsValidCEP verifica se o CEP está completo (8 dígitos).
func IsValidCEP(value string) bool {
	return len(UnformatCEP(value)) == 8
}
