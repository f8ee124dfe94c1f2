package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		allowed   bool
	}{
		{"pendente para paga", "pending", "paid", true},
		{"pendente para vencida", "pending", "overdue", true},
		{"vencida para paga", "overdue", "paid", true},
		{"mesmo status pendente", "pending", "pending", true},
		{"mesmo status paga", "paid", "paid", true},
		{"mesmo status vencida", "overdue", "overdue", true},
		{"vencida nao volta a pendente", "overdue", "pending", false},
		{"paga e terminal (pendente)", "paid", "pending", false},
		{"paga e terminal (vencida)", "paid", "overdue", false},
		{"status desconhecido", "pending", "cancelled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateStatusTransition(tt.current, tt.requested)
			assert.Equal(t, tt.allowed, res.Allowed)
			if tt.allowed {
				assert.Empty(t, res.Reason)
			} else {
				assert.Equal(t,
					`Cannot change status from "`+tt.current+`" to "`+tt.requested+`"`,
					res.Reason)
			}
		})
	}
}
