package commands

import (
	"context"

	"diner/internal/core/domain/model/order"
	"diner/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing an
// order: it draws a fresh identifier, constructs the aggregate and appends
// it to the repository.
//
// Example:
//
//	items, _ := ... // line items built from the request payload
//	cmd, _ := commands.NewCreateOrderCommand("221B Baker Street", "555-0100", order.Pending, items)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommandHandler struct {
	orders ports.OrderRepository
	ids    ports.IdentifierGenerator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(orders ports.OrderRepository, ids ports.IdentifierGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
		ids:    ids,
	}
}

// Handle processes the order creation command and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(h.ids.Next(), cmd.DeliverTo(), cmd.MobileNumber(), cmd.Status(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err := h.orders.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
