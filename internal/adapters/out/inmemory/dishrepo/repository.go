// Package dishrepo provides the in-memory dish repository.
package dishrepo

import (
	"context"
	"fmt"
	"sync"

	"diner/internal/core/domain/model/dish"
	"diner/internal/pkg/errs"
)

// Repository is an in-memory implementation of ports.DishRepository.
//
// Records live for the process lifetime in a keyed map for O(1) lookup plus
// an insertion-order index for listing. A single mutex serializes writers,
// preserving the at-most-one-mutator-at-a-time invariant under a concurrent
// HTTP server. Stored values are pointers: callers that mutate a fetched
// dish mutate the stored record.
type Repository struct {
	mu      sync.Mutex
	byID    map[string]*dish.Dish
	ordered []*dish.Dish
}

// NewRepository creates an empty dish repository.
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*dish.Dish),
	}
}

// Add persists a new dish. Fails if the dish is invalid or its id is
// already taken.
func (r *Repository) Add(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("dish %q already exists", aggregate.ID()),
		)
	}

	r.byID[aggregate.ID()] = aggregate
	r.ordered = append(r.ordered, aggregate)
	return nil
}

// Update acknowledges changes to an existing dish. The stored record is the
// same pointer the caller mutated, so this only verifies the dish is known.
func (r *Repository) Update(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("dishId", aggregate.ID())
	}
	return nil
}

// Get retrieves a dish by id.
func (r *Repository) Get(_ context.Context, id string) (*dish.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("dishId", id)
	}
	return found, nil
}

// GetAll retrieves every dish in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*dish.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*dish.Dish, len(r.ordered))
	copy(all, r.ordered)
	return all, nil
}
