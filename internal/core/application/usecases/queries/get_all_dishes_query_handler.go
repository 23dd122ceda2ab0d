package queries

import (
	"context"

	"diner/internal/core/domain/model/dish"
	"diner/internal/core/ports"
)

// GetAllDishesQueryHandler retrieves every dish from the repository.
type GetAllDishesQueryHandler struct {
	dishes ports.DishRepository
}

// NewGetAllDishesQueryHandler creates a handler for menu listing.
func NewGetAllDishesQueryHandler(dishes ports.DishRepository) GetAllDishesQueryHandler {
	return GetAllDishesQueryHandler{dishes: dishes}
}

// Handle executes the query. Returns the dishes in insertion order; an
// empty menu yields an empty (non-nil) slice.
func (h GetAllDishesQueryHandler) Handle(ctx context.Context, query GetAllDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.dishes.GetAll(ctx)
}
