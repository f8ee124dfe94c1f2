// Package service monta o resumo diário de contas a vencer. O envio de
// email está desligado; o texto gerado vai para o log do processo.
package service

import (
	"fmt"
	"strings"
	"time"
)

// DueBill é uma conta que vence hoje, já com o nome do fornecedor
// resolvido (vazio quando a conta não tem fornecedor).
type DueBill struct {
	Description  string
	Amount       float64
	DueDate      time.Time
	SupplierName string
}

// FormatBRL formata um valor em reais: R$ 1.234,56.
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	intPart := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", intPart)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("R$ %s,%02d", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}

// BuildDailySummary gera o corpo do aviso diário para um usuário.
func BuildDailySummary(firstName string, bills []DueBill, today time.Time) string {
	var b strings.Builder

	name := strings.TrimSpace(firstName)
	if name == "" {
		name = "Olá"
	} else {
		name = "Olá, " + name
	}
	fmt.Fprintf(&b, "%s!\n\n", name)
	fmt.Fprintf(&b, "Você tem %d conta(s) vencendo hoje (%s):\n\n",
		len(bills), today.Format("02/01/2006"))

	total := 0.0
	for _, bill := range bills {
		line := fmt.Sprintf("- %s: %s", bill.Description, FormatBRL(bill.Amount))
		if bill.SupplierName != "" {
			line += fmt.Sprintf(" (%s)", bill.SupplierName)
		}
		b.WriteString(line + "\n")
		total += bill.Amount
	}

	fmt.Fprintf(&b, "\nTotal do dia: %s\n", FormatBRL(total))
	b.WriteString("\nAcesse o sistema para registrar os pagamentos.\n")
	return b.String()
}
