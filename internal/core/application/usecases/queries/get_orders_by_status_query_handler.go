package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// GetOrdersByStatusQueryHandler returns the registry snapshot filtered to a
// single lifecycle status, creation order preserved.
type GetOrdersByStatusQueryHandler struct {
	registry ports.OrderRegistry
}

// NewGetOrdersByStatusQueryHandler creates a handler over the given registry.
func NewGetOrdersByStatusQueryHandler(registry ports.OrderRegistry) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{registry: registry}
}

// Handle executes the query.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.registry.GetAllInStatus(ctx, query.Status())
}
