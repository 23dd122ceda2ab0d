package queries

import (
	"errors"

	"diner/internal/pkg/errs"
	"diner/internal/pkg/guard"
)

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

// GetDishQuery retrieves a single dish by its identifier.
type GetDishQuery struct { //nolint:recvcheck //using for validation
	dishID string

	guard guard.ConstructorGuard
}

// NewGetDishQuery creates a query for the dish with the given id.
func NewGetDishQuery(dishID string) (GetDishQuery, error) {
	query := GetDishQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDishID(dishID); err != nil {
		return GetDishQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

// DishID returns the requested dish identifier.
func (q GetDishQuery) DishID() string {
	return q.dishID
}

func (q *GetDishQuery) setDishID(dishID string) error {
	if dishID == "" {
		return errs.NewValueIsRequiredError("dishId")
	}
	q.dishID = dishID
	return nil
}
