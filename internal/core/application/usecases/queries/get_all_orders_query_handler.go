package queries

import (
	"context"

	"diner/internal/core/domain/model/order"
	"diner/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves every order from the repository.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle executes the query. Returns the orders in insertion order; an
// empty store yields an empty (non-nil) slice.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetAll(ctx)
}
