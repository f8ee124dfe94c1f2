package service

import "fmt"

// TransitionResult é o veredito da validação de mudança de status.
type TransitionResult struct {
	Allowed bool
	Reason  string
}

// allowedTransitions lista os pares permitidos além do no-op X→X.
// "paid" é terminal e "overdue" não volta para "pending".
var allowedTransitions = map[[2]string]bool{
	{"pending", "paid"}:    true,
	{"pending", "overdue"}: true,
	{"overdue", "paid"}:    true,
}

// ValidateStatusTransition é pura e determinística: sem I/O, sem clock.
// Mudar para o mesmo status é sempre permitido (no-op idempotente).
func ValidateStatusTransition(current, requested string) TransitionResult {
	if current == requested {
		return TransitionResult{Allowed: true}
	}
	if allowedTransitions[[2]string{current, requested}] {
		return TransitionResult{Allowed: true}
	}
	return TransitionResult{
		Allowed: false,
		Reason:  fmt.Sprintf("Cannot change status from %q to %q", current, requested),
	}
}
