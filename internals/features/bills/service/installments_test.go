package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateInstallmentsDivisaoExata(t *testing.T) {
	got, err := GenerateInstallments(1200, 3, date(2026, time.January, 15))
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, inst := range got {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, 400.0, inst.Amount)
	}
	assert.Equal(t, date(2026, time.January, 15), got[0].DueDate)
	assert.Equal(t, date(2026, time.February, 15), got[1].DueDate)
	assert.Equal(t, date(2026, time.March, 15), got[2].DueDate)
}

func TestGenerateInstallmentsSemRedistribuicao(t *testing.T) {
	// 100 / 3 = 33.33 por parcela; a soma (99.99) diverge do total
	got, err := GenerateInstallments(100, 3, date(2026, time.May, 10))
	require.NoError(t, err)

	sum := 0.0
	for _, inst := range got {
		assert.Equal(t, 33.33, inst.Amount)
		sum += inst.Amount
	}
	assert.InDelta(t, 99.99, sum, 0.001)
}

func TestGenerateInstallmentsClampFimDeMes(t *testing.T) {
	// 31/jan: fevereiro bissexto trava no dia 29, meses de 30 dias no 30
	got, err := GenerateInstallments(500, 4, date(2024, time.January, 31))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 31), got[0].DueDate)
	assert.Equal(t, date(2024, time.February, 29), got[1].DueDate)
	assert.Equal(t, date(2024, time.March, 31), got[2].DueDate)
	assert.Equal(t, date(2024, time.April, 30), got[3].DueDate)
}

func TestGenerateInstallmentsClampNaoBissexto(t *testing.T) {
	got, err := GenerateInstallments(200, 2, date(2026, time.January, 30))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.February, 28), got[1].DueDate)
}

func TestGenerateInstallmentsViradaDeAno(t *testing.T) {
	got, err := GenerateInstallments(300, 3, date(2025, time.November, 20))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.December, 20), got[1].DueDate)
	assert.Equal(t, date(2026, time.January, 20), got[2].DueDate)
}

func TestGenerateInstallmentsParcelaUnica(t *testing.T) {
	got, err := GenerateInstallments(250.50, 1, date(2026, time.March, 5))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 250.50, got[0].Amount)
	assert.Equal(t, date(2026, time.March, 5), got[0].DueDate)
}

func TestGenerateInstallmentsCountInvalido(t *testing.T) {
	_, err := GenerateInstallments(100, 0, date(2026, time.March, 5))
	assert.ErrorIs(t, err, ErrInvalidInstallmentCount)
}
