package commands

import (
	"context"

	"diner/internal/core/domain/model/dish"
	"diner/internal/core/ports"
)

// UpdateDishCommandHandler handles dish updates. The fetched record is
// mutated in place, which preserves identity for any other reference to the
// same dish; the id field is never reassigned.
type UpdateDishCommandHandler struct {
	dishes ports.DishRepository
}

// NewUpdateDishCommandHandler creates a handler for dish updates.
func NewUpdateDishCommandHandler(dishes ports.DishRepository) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{
		dishes: dishes,
	}
}

// Handle processes the dish update command and returns the updated dish.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.dishes.Get(ctx, cmd.DishID())
	if err != nil {
		return nil, err
	}

	if err := existing.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.ImageURL()); err != nil {
		return nil, err
	}

	if err := h.dishes.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}
