package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRegistry is the insertion-ordered store of all accepted orders.
// Orders that fail validation or payment are never added. Entries are only
// mutated in place by the cancellation workflow; Update makes that mutation
// explicit to the registry.
type OrderRegistry interface {
	// Add appends a new order. The order id must not already be registered.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a state change to an already registered order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns an OrderNotFoundError from the
	// errs package when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns a snapshot of all registered orders in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus returns the GetAll snapshot filtered to the given
	// status, preserving creation order.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
