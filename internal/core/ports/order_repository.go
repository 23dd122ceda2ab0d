package ports

import (
	"context"

	"diner/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Like DishRepository, implementations hand out live references and updates
// mutate the stored record in place.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and its id must not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update acknowledges changes to an existing order.
	// The order must already exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no order has that id.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll retrieves every order in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Remove deletes the order with the given id.
	// Returns an errs.ObjectNotFoundError if no order has that id.
	Remove(ctx context.Context, id string) error
}
