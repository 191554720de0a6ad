// Package ports defines the contracts between the order workflow and its
// collaborators (inventory, payment, discount, notification) as well as the
// order registry. These interfaces establish the dependency-inversion
// boundary: the core consumes them, adapters implement them.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// InventoryService manages stock levels and reservations for products.
//
// Reservation discipline: ReserveStock soft-holds units before the
// payment/approval decision; ReduceStock converts a hold into a permanent
// deduction; IncreaseStock returns units to available stock, which is also
// how the workflow releases a reservation after a failed payment.
type InventoryService interface {
	// CheckStock reports whether at least quantity units are available.
	CheckStock(ctx context.Context, product string, quantity int) (bool, error)

	// ReserveStock soft-holds quantity units. Returns false if the hold
	// cannot be taken (e.g. a concurrent reservation won the race).
	ReserveStock(ctx context.Context, product string, quantity int) (bool, error)

	// ReduceStock converts a reservation into a permanent deduction.
	ReduceStock(ctx context.Context, product string, quantity int) error

	// IncreaseStock returns quantity units to available stock.
	IncreaseStock(ctx context.Context, product string, quantity int) error
}

// PaymentService decides and executes charges for orders.
type PaymentService interface {
	// NeedsManualApproval reports whether the order requires human sign-off
	// before charging. When true, ProcessPayment must not be invoked.
	NeedsManualApproval(ctx context.Context, o *order.Order) (bool, error)

	// ProcessPayment charges the order. Returns true on a successful charge.
	ProcessPayment(ctx context.Context, o *order.Order) (bool, error)
}

// DiscountService resolves promo codes to flat discount amounts.
type DiscountService interface {
	// ValidateCode returns the flat amount subtractable for the code.
	// An unknown or invalid code yields zero, not an error.
	ValidateCode(ctx context.Context, code string) (decimal.Decimal, error)
}

// NotificationService dispatches customer notifications. Calls are
// fire-and-forget from the workflow's perspective: returned errors are
// logged but never fail or block the order operation.
type NotificationService interface {
	SendPaidConfirmation(ctx context.Context, o *order.Order) error
	SendPendingApproval(ctx context.Context, o *order.Order) error
	SendCancellation(ctx context.Context, o *order.Order) error
}
