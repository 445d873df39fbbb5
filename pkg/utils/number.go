package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// MoneyToFloat arredonda para centavos e converte para a resposta JSON
func MoneyToFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Percentage count/total em porcentagem com uma casa decimal. total zero retorna 0
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(1).
		InexactFloat64()
}
