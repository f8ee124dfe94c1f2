package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 10,50", FormatBRL(10.5))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(1000000))
	assert.Equal(t, "-R$ 45,90", FormatBRL(-45.9))
	assert.Equal(t, "R$ 33,33", FormatBRL(33.33))
}

func TestBuildDailySummary(t *testing.T) {
	today := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	bills := []DueBill{
		{Description: "Aluguel", Amount: 2500, SupplierName: "Imobiliária Central"},
		{Description: "Energia", Amount: 340.75},
	}

	got := BuildDailySummary("Maria", bills, today)

	assert.Contains(t, got, "Olá, Maria!")
	assert.Contains(t, got, "2 conta(s) vencendo hoje (30/08/2026)")
	assert.Contains(t, got, "- Aluguel: R$ 2.500,00 (Imobiliária Central)")
	assert.Contains(t, got, "- Energia: R$ 340,75")
	assert.Contains(t, got, "Total do dia: R$ 2.840,75")
}

func TestBuildDailySummarySemNome(t *testing.T) {
	today := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	got := BuildDailySummary("", []DueBill{{Description: "Internet", Amount: 99.90}}, today)
	assert.Contains(t, got, "Olá!")
	assert.Contains(t, got, "1 conta(s)")
}
