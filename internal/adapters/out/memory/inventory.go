package memory

import (
	"context"
	"sync"
)

type stockLevel struct {
	onHand   int
	reserved int
}

// Inventory is an in-memory InventoryService with reservation bookkeeping.
//
// ReserveStock holds units against free stock (on hand minus reserved),
// ReduceStock consumes a hold permanently, and IncreaseStock returns units
// to availability: it releases an outstanding hold first and tops up on-hand
// stock for the remainder, which covers both the payment-failure release and
// the paid-order cancellation restock.
type Inventory struct {
	mu     sync.Mutex
	levels map[string]*stockLevel
}

// NewInventory creates an inventory preloaded with the given on-hand
// quantities per product.
func NewInventory(initial map[string]int) *Inventory {
	levels := make(map[string]*stockLevel, len(initial))
	for product, quantity := range initial {
		levels[product] = &stockLevel{onHand: quantity}
	}
	return &Inventory{levels: levels}
}

// CheckStock reports whether at least quantity free units are available.
func (i *Inventory) CheckStock(_ context.Context, product string, quantity int) (bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	level := i.levels[product]
	return level != nil && level.onHand-level.reserved >= quantity, nil
}

// ReserveStock soft-holds quantity units against free stock.
func (i *Inventory) ReserveStock(_ context.Context, product string, quantity int) (bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	level := i.levels[product]
	if level == nil || level.onHand-level.reserved < quantity {
		return false, nil
	}

	level.reserved += quantity
	return true, nil
}

// ReduceStock converts a reservation into a permanent deduction.
func (i *Inventory) ReduceStock(_ context.Context, product string, quantity int) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	level := i.levels[product]
	if level == nil {
		return nil
	}

	level.onHand -= quantity
	if level.reserved >= quantity {
		level.reserved -= quantity
	} else {
		level.reserved = 0
	}
	return nil
}

// IncreaseStock returns quantity units to availability, releasing any
// outstanding hold before adding to on-hand stock.
func (i *Inventory) IncreaseStock(_ context.Context, product string, quantity int) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	level := i.levels[product]
	if level == nil {
		level = &stockLevel{}
		i.levels[product] = level
	}

	if level.reserved >= quantity {
		level.reserved -= quantity
		return nil
	}

	remainder := quantity - level.reserved
	level.reserved = 0
	level.onHand += remainder
	return nil
}

// Free returns the currently available (unreserved) quantity for a product.
func (i *Inventory) Free(product string) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	level := i.levels[product]
	if level == nil {
		return 0
	}
	return level.onHand - level.reserved
}
