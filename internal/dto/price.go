package dto

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Price is a request price. Unlike decimal.Decimal it only accepts JSON
// numbers, so "19.99" in quotes is rejected.
type Price struct {
	decimal.Decimal
}

func NewPrice(s string) Price {
	return Price{decimal.RequireFromString(s)}
}

func (p *Price) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return errors.New("price must be a JSON number")
	}
	return p.Decimal.UnmarshalJSON(b)
}
