package memory

import (
	"context"

	"github.com/shopspring/decimal"
)

// DiscountService resolves promo codes against a fixed code table.
// Unknown codes yield a zero amount, never an error.
type DiscountService struct {
	codes map[string]decimal.Decimal
}

// NewDiscountService creates a discount adapter over the given code table.
func NewDiscountService(codes map[string]decimal.Decimal) *DiscountService {
	table := make(map[string]decimal.Decimal, len(codes))
	for code, amount := range codes {
		table[code] = amount
	}
	return &DiscountService{codes: table}
}

// ValidateCode returns the flat discount amount for the code, or zero when
// the code is unknown.
func (d *DiscountService) ValidateCode(_ context.Context, code string) (decimal.Decimal, error) {
	amount, ok := d.codes[code]
	if !ok {
		return decimal.Zero, nil
	}
	return amount, nil
}
