package commands

import (
	"context"

	"diner/internal/core/domain/model/dish"
	"diner/internal/core/ports"
)

// CreateDishCommandHandler handles the business logic for adding a dish to
// the menu: it draws a fresh identifier, constructs the entity and appends
// it to the repository.
type CreateDishCommandHandler struct {
	dishes ports.DishRepository
	ids    ports.IdentifierGenerator
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(dishes ports.DishRepository, ids ports.IdentifierGenerator) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		dishes: dishes,
		ids:    ids,
	}
}

// Handle processes the dish creation command and returns the created dish.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := dish.NewDish(h.ids.Next(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.ImageURL())
	if err != nil {
		return nil, err
	}

	if err := h.dishes.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
