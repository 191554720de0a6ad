package memory

import (
	"context"
	"sync"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// OrderRegistry is the in-memory, insertion-ordered store of accepted orders.
//
// Entries are snapshots: Add and Update store a clone of the aggregate and
// every getter returns clones, so callers never share a mutable order with
// the registry or with each other. A state change made on a retrieved order
// becomes visible only through Update, which swaps the stored snapshot under
// the write lock. Ids are unique for the registry's lifetime; duplicates are
// rejected.
type OrderRegistry struct {
	mu     sync.RWMutex
	orders []*order.Order
	index  map[kernel.UUID]int
}

// NewOrderRegistry creates an empty registry.
func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{
		index: make(map[kernel.UUID]int),
	}
}

// Add appends a new order. Fails if the order is invalid or its id is
// already registered.
func (r *OrderRegistry) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order id is already registered")
	}

	r.orders = append(r.orders, aggregate.Clone())
	r.index[aggregate.ID()] = len(r.orders) - 1
	return nil
}

// Update replaces the stored snapshot of a registered order, publishing the
// caller's state change to subsequent readers.
func (r *OrderRegistry) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	position, exists := r.index[aggregate.ID()]
	if !exists {
		return errs.NewOrderNotFoundError(aggregate.ID().String())
	}

	r.orders[position] = aggregate.Clone()
	return nil
}

// Get retrieves an order by id, or an OrderNotFoundError for unknown ids.
func (r *OrderRegistry) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	position, exists := r.index[id]
	if !exists {
		return nil, errs.NewOrderNotFoundError(id.String())
	}
	return r.orders[position].Clone(), nil
}

// GetAll returns a snapshot of all orders in creation order.
func (r *OrderRegistry) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*order.Order, len(r.orders))
	for position, o := range r.orders {
		snapshot[position] = o.Clone()
	}
	return snapshot, nil
}

// GetAllInStatus returns the snapshot filtered to the given status,
// creation order preserved.
func (r *OrderRegistry) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.Status() == status {
			filtered = append(filtered, o.Clone())
		}
	}
	return filtered, nil
}
