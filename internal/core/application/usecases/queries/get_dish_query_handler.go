package queries

import (
	"context"

	"diner/internal/core/domain/model/dish"
	"diner/internal/core/ports"
)

// GetDishQueryHandler retrieves a single dish from the repository.
type GetDishQueryHandler struct {
	dishes ports.DishRepository
}

// NewGetDishQueryHandler creates a handler for single-dish lookups.
func NewGetDishQueryHandler(dishes ports.DishRepository) GetDishQueryHandler {
	return GetDishQueryHandler{dishes: dishes}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError if no dish
// has the requested id.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.dishes.Get(ctx, query.DishID())
}
