package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned when no category is supplied.
// The category is informational only and not validated further.
const DefaultCategory = "Normal"

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the order workflow.
//
// All creation-time data is immutable: id, product, quantity, unit price,
// category, discount code, total price and creation timestamp are fixed by
// NewOrder. Only the status changes afterwards, through MarkPaid,
// MarkPendingApproval and Cancel, which enforce the lifecycle transitions.
type Order struct {
	id           kernel.UUID
	product      string
	quantity     int
	unitPrice    decimal.Decimal
	category     string
	discountCode string
	totalPrice   decimal.Decimal
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a validated Order in New status.
//
// Validation rules:
//   - id must be a constructed UUID
//   - product must be non-empty
//   - quantity must be positive
//   - unitPrice and totalPrice must be non-negative
//   - createdAt must be set; it is normalized to UTC
//
// An empty category defaults to DefaultCategory. The discount code is kept
// as given; an empty string means no code was supplied. The total price is
// computed by the pricing engine before construction and never recomputed.
func NewOrder(
	id kernel.UUID,
	product string,
	quantity int,
	unitPrice decimal.Decimal,
	category string,
	discountCode string,
	totalPrice decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		discountCode:  discountCode,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProduct(product),
		o.setQuantity(quantity),
		o.setUnitPrice(unitPrice),
		o.setCategory(category),
		o.setTotalPrice(totalPrice),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Clone returns a copy of the order. Everything but the status is immutable
// after construction, so a shallow copy is safe to mutate independently.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Product returns the ordered product identifier.
func (o *Order) Product() string {
	return o.product
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// UnitPrice returns the per-unit price fixed at creation.
func (o *Order) UnitPrice() decimal.Decimal {
	return o.unitPrice
}

// Category returns the order's classification (informational only).
func (o *Order) Category() string {
	return o.category
}

// DiscountCode returns the promo code supplied at creation, or "" if none.
func (o *Order) DiscountCode() string {
	return o.discountCode
}

// TotalPrice returns the final price computed once at creation.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the UTC creation timestamp. It is also the instant used
// for quota bucketing (calendar day boundary = UTC midnight).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkPaid records a successful charge. Valid only from New.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPendingApproval places the order on hold for manual sign-off.
// Valid only from New.
func (o *Order) MarkPendingApproval() error {
	newStatus, err := o.status.HoldForApproval()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order into the terminal Cancelled status.
// Callers must treat an already-Cancelled order as a no-op before calling.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	o.product = product
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is negative", unitPrice))
	}
	o.unitPrice = unitPrice
	return nil
}

func (o *Order) setCategory(category string) error {
	if category == "" {
		category = DefaultCategory
	}
	o.category = category
	return nil
}

func (o *Order) setTotalPrice(totalPrice decimal.Decimal) error {
	if totalPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid", fmt.Errorf("%s is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
