// Package orderrepo provides the in-memory order repository.
package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"diner/internal/core/domain/model/order"
	"diner/internal/pkg/errs"
)

// Repository is an in-memory implementation of ports.OrderRepository.
//
// Same layout as the dish repository: keyed map for lookup, insertion-order
// slice for listing, one mutex per collection. Orders additionally support
// removal, which splices the record out of the insertion-order index.
type Repository struct {
	mu      sync.Mutex
	byID    map[string]*order.Order
	ordered []*order.Order
}

// NewRepository creates an empty order repository.
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*order.Order),
	}
}

// Add persists a new order. Fails if the order is invalid or its id is
// already taken.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("order %q already exists", aggregate.ID()),
		)
	}

	r.byID[aggregate.ID()] = aggregate
	r.ordered = append(r.ordered, aggregate)
	return nil
}

// Update acknowledges changes to an existing order. The stored record is
// the same pointer the caller mutated, so this only verifies the order is
// known.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}
	return nil
}

// Get retrieves an order by id.
func (r *Repository) Get(_ context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return found, nil
}

// GetAll retrieves every order in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*order.Order, len(r.ordered))
	copy(all, r.ordered)
	return all, nil
}

// Remove deletes the order with the given id from both indexes.
func (r *Repository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	delete(r.byID, id)
	for i, o := range r.ordered {
		if o.ID() == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return nil
}
