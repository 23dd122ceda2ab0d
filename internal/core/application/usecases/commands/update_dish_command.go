package commands

import (
	"errors"
	"fmt"

	"diner/internal/pkg/errs"
	"diner/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand represents a request to overwrite the mutable fields of
// an existing dish. The identifier selects the dish and is itself never
// changed by an update.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	dishID      string
	name        string
	description string
	price       int
	imageURL    string

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a command to update an existing dish.
// Validates the same field rules as dish creation plus a non-empty id.
func NewUpdateDishCommand(dishID, name, description string, price int, imageURL string) (UpdateDishCommand, error) {
	cmd := UpdateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDishID(dishID),
		cmd.setName(name),
		cmd.setDescription(description),
		cmd.setPrice(price),
		cmd.setImageURL(imageURL),
	); err != nil {
		return UpdateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the identifier of the dish to update.
func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

// Name returns the new dish name.
func (c UpdateDishCommand) Name() string {
	return c.name
}

// Description returns the new dish description.
func (c UpdateDishCommand) Description() string {
	return c.description
}

// Price returns the new dish price.
func (c UpdateDishCommand) Price() int {
	return c.price
}

// ImageURL returns the new dish image URL.
func (c UpdateDishCommand) ImageURL() string {
	return c.imageURL
}

func (c *UpdateDishCommand) setDishID(dishID string) error {
	if dishID == "" {
		return errs.NewValueIsRequiredError("dishId")
	}
	c.dishID = dishID
	return nil
}

func (c *UpdateDishCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateDishCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *UpdateDishCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	c.price = price
	return nil
}

func (c *UpdateDishCommand) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	c.imageURL = imageURL
	return nil
}
