package commands

import (
	"context"

	"diner/internal/core/domain/model/order"
	"diner/internal/core/ports"
)

// UpdateOrderCommandHandler handles order updates. The fetched record is
// mutated in place through the aggregate's Update method, which runs the
// status transition through the state machine before any field is written.
type UpdateOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(orders ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orders: orders,
	}
}

// Handle processes the order update command and returns the updated order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err := existing.Update(cmd.DeliverTo(), cmd.MobileNumber(), cmd.Status(), cmd.Items()); err != nil {
		return nil, err
	}

	if err := h.orders.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}
