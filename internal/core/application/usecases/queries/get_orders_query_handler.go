package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// GetOrdersQueryHandler returns all accepted orders in creation order.
// The result is a snapshot: iterating it is restartable and finite even if
// orders are created concurrently.
type GetOrdersQueryHandler struct {
	registry ports.OrderRegistry
}

// NewGetOrdersQueryHandler creates a handler over the given registry.
func NewGetOrdersQueryHandler(registry ports.OrderRegistry) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{registry: registry}
}

// Handle executes the query.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.registry.GetAll(ctx)
}
