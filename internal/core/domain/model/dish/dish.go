package dish

import (
	"errors"
	"fmt"

	"diner/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the NewDish factory method.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish represents a single menu item.
//
// Dish maintains these invariants:
//   - id is assigned at construction and never reassigned
//   - name, description and image URL are non-empty
//   - price is an integer strictly greater than 0
//
// Menu items are never deleted; they are created once and then mutated in
// place through Update, so any reference handed out by the repository stays
// valid across updates.
type Dish struct {
	// id is the unique identifier for the dish, immutable once assigned
	id string

	// name is the display name of the dish
	name string

	// description explains the dish to customers
	description string

	// price in whole currency units (must be positive)
	price int

	// imageURL points at a picture of the dish
	imageURL string

	// isConstructed ensures the dish was created via NewDish
	isConstructed bool
}

// NewDish creates a new Dish with validation. This is the only way to create
// a valid Dish.
//
// Example:
//
//	d, err := dish.NewDish(ids.Next(), "Broiled salmon", "With capers", 19, "https://example.com/salmon.jpg")
//	if err != nil {
//	    // handle validation error
//	}
func NewDish(id, name, description string, price int, imageURL string) (*Dish, error) {
	d := &Dish{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setDescription(description),
		d.setPrice(price),
		d.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Dish instance was properly constructed through NewDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// IsEqual compares two dishes by their unique identifiers.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id == other.id
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() string {
	return d.id
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish's description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish's price in whole currency units.
func (d *Dish) Price() int {
	return d.price
}

// ImageURL returns the URL of the dish's picture.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Update overwrites every mutable field of the dish with the given values.
// The id is never touched. All values are validated before any field is
// written, so a failed update leaves the dish unchanged.
func (d *Dish) Update(name, description string, price int, imageURL string) error {
	updated := *d
	if err := errors.Join(
		updated.setName(name),
		updated.setDescription(description),
		updated.setPrice(price),
		updated.setImageURL(imageURL),
	); err != nil {
		return err
	}

	*d = updated
	return nil
}

func (d *Dish) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	d.imageURL = imageURL
	return nil
}
