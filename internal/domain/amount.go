package domain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount valor monetário opcional. Aceita número ou string no JSON ("149.90")
// e NUMERIC no banco. null, ausente ou "" deixam Valid falso.
type Amount struct {
	decimal.NullDecimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || len(bytes.TrimSpace(bytes.Trim(raw, `"`))) == 0 {
		a.NullDecimal = decimal.NullDecimal{}
		return nil
	}

	return a.NullDecimal.UnmarshalJSON(raw)
}

// OrZero retorna o valor, tratando ausência como zero
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Decimal
}

// NewAmount atalho para construir um Amount a partir de texto, ex: "149.90"
func NewAmount(value string) Amount {
	return Amount{decimal.NewNullDecimal(decimal.RequireFromString(value))}
}
