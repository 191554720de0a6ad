package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order.
// Category and discount code are optional; an empty category defaults to
// "Normal" in the order entity, an empty discount code means no promo.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	product      string
	quantity     int
	unitPrice    decimal.Decimal
	category     string
	discountCode string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the product is non-empty, the quantity is positive and the
// unit price is non-negative.
func NewCreateOrderCommand(
	product string,
	quantity int,
	unitPrice decimal.Decimal,
	category string,
	discountCode string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		category:     category,
		discountCode: discountCode,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setProduct(product),
		orderCommand.setQuantity(quantity),
		orderCommand.setUnitPrice(unitPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Product returns the product identifier to order.
func (c CreateOrderCommand) Product() string {
	return c.product
}

// Quantity returns the requested quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the per-unit price.
func (c CreateOrderCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// Category returns the optional classification ("" means default).
func (c CreateOrderCommand) Category() string {
	return c.category
}

// DiscountCode returns the optional promo code ("" means none).
func (c CreateOrderCommand) DiscountCode() string {
	return c.discountCode
}

func (c *CreateOrderCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	c.product = product
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is negative", unitPrice))
	}

	c.unitPrice = unitPrice
	return nil
}
