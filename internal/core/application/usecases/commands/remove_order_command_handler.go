package commands

import (
	"context"

	"diner/internal/core/ports"
)

// RemoveOrderCommandHandler handles order deletion. The order must exist
// and be in pending status; anything else fails without touching the store.
type RemoveOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewRemoveOrderCommandHandler creates a handler for order deletion.
func NewRemoveOrderCommandHandler(orders ports.OrderRepository) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		orders: orders,
	}
}

// Handle processes the order removal command.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existing, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := existing.EnsureRemovable(); err != nil {
		return err
	}

	return h.orders.Remove(ctx, cmd.OrderID())
}
