package order

import (
	"fmt"

	"diner/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──┬──> preparing ──> out-for-delivery ──> delivered
//	          │        ▲                 ▲
//	          └────────┴─────────────────┘
//	  (any non-delivered status may move to any valid status,
//	   including back to itself)
//
// The machine enforces membership and one terminal rule: delivered has no
// outbound transitions. It is not a strict sequential pipeline.
//
// An order is stored with whatever status the caller supplied at creation;
// membership is only enforced when the status is changed. A Status read from
// storage may therefore fail Validate.
type Status string

const (
	// Pending is the status of a freshly placed order. Only pending orders
	// may be deleted.
	Pending Status = "pending"

	// Preparing indicates the kitchen is working on the order.
	Preparing Status = "preparing"

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery Status = "out-for-delivery"

	// Delivered indicates the order reached the customer. This is a final
	// state with no further transitions allowed.
	Delivered Status = "delivered"
)

// validStatuses returns the set of recognized status values in display order.
func validStatuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// ValidStatusNames returns the recognized status values as strings, in the
// order they are listed to clients.
func ValidStatusNames() []string {
	statuses := validStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status is one of the recognized values.
func (s Status) Validate() error {
	for _, valid := range validStatuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// TransitionTo validates a transition from s to next and returns the new
// status.
//
// Returns an error if s is terminal or next is not a recognized status. Any
// non-terminal status may transition to any recognized status, including
// re-entering itself.
func (s Status) TransitionTo(next Status) (Status, error) {
	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is a terminal status and cannot be changed", s),
		)
	}
	if err := next.Validate(); err != nil {
		return "", err
	}
	return next, nil
}
