package commands

import (
	"errors"
	"fmt"

	"diner/internal/pkg/errs"
	"diner/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a new dish to the menu.
// The dish identifier is not part of the command; it is assigned by the
// handler from the identifier generator.
//
// Example:
//
//	cmd, err := commands.NewCreateDishCommand("Broiled salmon", "With capers", 19, "https://example.com/salmon.jpg")
//	if err != nil {
//	    return fmt.Errorf("invalid dish data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       int
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish to the menu.
// Validates that name, description and image URL are non-empty and that the
// price is a positive integer.
func NewCreateDishCommand(name, description string, price int, imageURL string) (CreateDishCommand, error) {
	cmd := CreateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setDescription(description),
		cmd.setPrice(price),
		cmd.setImageURL(imageURL),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c CreateDishCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c CreateDishCommand) Price() int {
	return c.price
}

// ImageURL returns the dish image URL.
func (c CreateDishCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDishCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateDishCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	c.price = price
	return nil
}

func (c *CreateDishCommand) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	c.imageURL = imageURL
	return nil
}
