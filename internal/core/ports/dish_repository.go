package ports

import (
	"context"

	"diner/internal/core/domain/model/dish"
)

// DishRepository defines the persistence contract for dish entities.
// Implementations own the records for the process lifetime and hand out
// live references: callers mutate a fetched dish in place and then call
// Update to acknowledge the change.
type DishRepository interface {
	// Add persists a new dish. The dish must be valid and its id must not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update acknowledges changes to an existing dish.
	// The dish must already exist in the repository.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no dish has that id.
	Get(ctx context.Context, id string) (*dish.Dish, error)

	// GetAll retrieves every dish in insertion order.
	GetAll(ctx context.Context) ([]*dish.Dish, error)
}
