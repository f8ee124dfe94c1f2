package format

// FormatPhoneNumber aplica a máscara (dd)ddddd-dddd (DDD + até 9 dígitos).
func FormatPhoneNumber(value string) string {
	numbers := onlyDigits(value)
	if len(numbers) > 11 {
		numbers = numbers[:11]
	}

	switch {
	case len(numbers) == 0:
		return ""
	case len(numbers) <= 2:
		return "(" + numbers
	case len(numbers) <= 7:
		return "(" + numbers[:2] + ")" + numbers[2:]
	default:
		return "(" + numbers[:2] + ")" + numbers[2:7] + "-" + numbers[7:]
	}
}

// UnformatPhoneNumber remove a máscara e devolve apenas os dígitos.
func UnformatPhoneNumber(value string) string {
	return onlyDigits(value)
}

// IsValidPhoneNumber aceita fixo (10 dígitos) ou celular (11 dígitos).
func IsValidPhoneNumber(value string) bool {
	n := len(UnformatPhoneNumber(value))
	return n == 10 || n == 11
}
