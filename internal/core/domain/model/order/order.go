package order

import (
	"errors"
	"fmt"

	"diner/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsDelivered is returned when a mutation is attempted on a
	// delivered order.
	ErrOrderIsDelivered = errors.New("a delivered order cannot be changed")
)

// LineItem is one entry of an order: a snapshot of the dish as it was
// ordered plus the requested quantity.
//
// The dish fields are a snapshot, not a live reference into the menu, so a
// later menu update does not rewrite history in existing orders. Quantity
// zero is accepted; only negative quantities are invalid.
type LineItem struct {
	dishID      string
	name        string
	description string
	price       int
	imageURL    string
	quantity    int
}

// NewLineItem creates a line item from a dish snapshot and a quantity.
// Quantity must not be negative.
func NewLineItem(dishID, name, description string, price int, imageURL string, quantity int) (LineItem, error) {
	if quantity < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	return LineItem{
		dishID:      dishID,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		quantity:    quantity,
	}, nil
}

// DishID returns the identifier of the ordered dish.
func (li LineItem) DishID() string { return li.dishID }

// Name returns the name of the ordered dish at order time.
func (li LineItem) Name() string { return li.name }

// Description returns the description of the ordered dish at order time.
func (li LineItem) Description() string { return li.description }

// Price returns the price of the ordered dish at order time.
func (li LineItem) Price() int { return li.price }

// ImageURL returns the image URL of the ordered dish at order time.
func (li LineItem) ImageURL() string { return li.imageURL }

// Quantity returns how many units of the dish were ordered.
func (li LineItem) Quantity() int { return li.quantity }

// Order represents a customer order. It is the aggregate root for the
// order lifecycle.
//
// Order maintains these invariants:
//   - id is assigned at construction and never reassigned
//   - deliverTo and mobileNumber are non-empty
//   - the line-item list contains at least one element at all times
//   - once the status is delivered, the order is immutable
//
// The status supplied at creation is stored verbatim; membership in the
// valid status set is enforced only when the status is changed. See Status.
type Order struct {
	id           string
	deliverTo    string
	mobileNumber string
	status       Status
	items        []LineItem

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// create a valid Order.
func NewOrder(id, deliverTo, mobileNumber string, status Status, items []LineItem) (*Order, error) {
	o := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDeliverTo(deliverTo),
		o.setMobileNumber(mobileNumber),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// DeliverTo returns the delivery address.
func (o *Order) DeliverTo() string {
	return o.deliverTo
}

// MobileNumber returns the customer's contact number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items. The returned slice is a copy;
// mutating it does not affect the order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Update overwrites every mutable field of the order with the given values
// and transitions the status. The id is never touched.
//
// The status transition is validated through the state machine: a delivered
// order rejects any update, and the new status must be a recognized value.
// All values are validated before any field is written, so a failed update
// leaves the order unchanged.
func (o *Order) Update(deliverTo, mobileNumber string, status Status, items []LineItem) error {
	newStatus, err := o.status.TransitionTo(status)
	if err != nil {
		return err
	}

	updated := *o
	if err := errors.Join(
		updated.setDeliverTo(deliverTo),
		updated.setMobileNumber(mobileNumber),
		updated.setItems(items),
	); err != nil {
		return err
	}

	updated.status = newStatus
	*o = updated
	return nil
}

// EnsureRemovable reports whether the order may be deleted.
// Only pending orders are removable.
func (o *Order) EnsureRemovable() error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("an order with status %q cannot be deleted", o.status.String()),
		)
	}
	return nil
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	o.deliverTo = deliverTo
	return nil
}

func (o *Order) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	o.mobileNumber = mobileNumber
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
