package service

import (
	"errors"
	"math"
	"time"
)

// Installment é uma parcela gerada: número base 1, valor e vencimento.
type Installment struct {
	Number  int
	Amount  float64
	DueDate time.Time
}

var ErrInvalidInstallmentCount = errors.New("quantidade de parcelas deve ser no mínimo 1")

// round2 arredonda para 2 casas decimais (centavos).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// addMonths soma meses preservando o dia do mês, travado no último dia
// do mês de destino (31/jan + 1 mês = 29/fev em ano bissexto).
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// GenerateInstallments divide o total em count parcelas iguais de
// round2(total/count) cada, sem redistribuir o resto do arredondamento.
// A soma das parcelas pode divergir do total em alguns centavos; o
// usuário ajusta parcelas individualmente depois, se quiser.
func GenerateInstallments(total float64, count int, firstDueDate time.Time) ([]Installment, error) {
	if count < 1 {
		return nil, ErrInvalidInstallmentCount
	}

	amount := round2(total / float64(count))
	out := make([]Installment, count)
	for i := 0; i < count; i++ {
		out[i] = Installment{
			Number:  i + 1,
			Amount:  amount,
			DueDate: addMonths(firstDueDate, i),
		}
	}
	return out, nil
}
