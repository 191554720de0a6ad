package services

import (
	"context"

	"orderflow/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Reference pricing configuration. The bulk discount and the surcharge are
// multiplicative; the promo discount is a flat subtractable amount resolved
// by the discount collaborator.
const defaultBulkQuantityThreshold = 10

var (
	defaultBulkRate      = decimal.New(90, -2)  // 10% off
	defaultSurchargeRate = decimal.New(120, -2) // fixed 20% on top
)

// PricingEngine computes the final price of an order from quantity, unit
// price and an optional discount code.
//
// Algorithm, in strict precedence order:
//
//  1. base = quantity * unitPrice
//  2. quantity above the bulk threshold: subtotal = base * bulk rate.
//     Bulk and promo discounts are mutually exclusive; a supplied code is
//     ignored (and not validated) on bulk orders.
//  3. else, non-empty code: subtotal = max(base - flat amount, 0).
//     An unrecognized code yields amount 0, no discount and no error.
//  4. else: subtotal = base.
//  5. totalPrice = subtotal * surcharge rate.
//
// All arithmetic is exact decimal; callers compare totals with Equal.
type PricingEngine struct {
	discounts ports.DiscountService

	bulkQuantityThreshold int
	bulkRate              decimal.Decimal
	surchargeRate         decimal.Decimal
}

// NewPricingEngine creates a PricingEngine with the reference rates
// (bulk threshold 10, bulk rate 0.90, surcharge rate 1.20).
func NewPricingEngine(discounts ports.DiscountService) *PricingEngine {
	return &PricingEngine{
		discounts:             discounts,
		bulkQuantityThreshold: defaultBulkQuantityThreshold,
		bulkRate:              defaultBulkRate,
		surchargeRate:         defaultSurchargeRate,
	}
}

// Compute returns the final price for the given quantity, unit price and
// optional discount code ("" means no code). The only error source is the
// discount collaborator; pure-path computations never fail.
func (e *PricingEngine) Compute(
	ctx context.Context,
	quantity int,
	unitPrice decimal.Decimal,
	discountCode string,
) (decimal.Decimal, error) {
	base := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	subtotal := base
	switch {
	case quantity > e.bulkQuantityThreshold:
		subtotal = base.Mul(e.bulkRate)
	case discountCode != "":
		amount, err := e.discounts.ValidateCode(ctx, discountCode)
		if err != nil {
			return decimal.Decimal{}, err
		}
		subtotal = base.Sub(amount)
		if subtotal.IsNegative() {
			subtotal = decimal.Zero
		}
	}

	return subtotal.Mul(e.surchargeRate), nil
}
