package commands

import (
	"errors"

	"diner/internal/core/domain/model/order"
	"diner/internal/pkg/errs"
	"diner/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
//
// The status is carried verbatim: the create path stores whatever
// status the caller supplied, including an empty one, and membership in the
// valid status set is enforced only when the status is later changed.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	deliverTo    string
	mobileNumber string
	status       order.Status
	items        []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates that the delivery address and mobile number are non-empty and
// that at least one line item is present. The status is not validated.
func NewCreateOrderCommand(deliverTo, mobileNumber string, status order.Status, items []order.LineItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliverTo(deliverTo),
		cmd.setMobileNumber(mobileNumber),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// DeliverTo returns the delivery address.
func (c CreateOrderCommand) DeliverTo() string {
	return c.deliverTo
}

// MobileNumber returns the customer's contact number.
func (c CreateOrderCommand) MobileNumber() string {
	return c.mobileNumber
}

// Status returns the caller-supplied initial status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the order's line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c *CreateOrderCommand) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	c.deliverTo = deliverTo
	return nil
}

func (c *CreateOrderCommand) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	c.mobileNumber = mobileNumber
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}
	c.items = items
	return nil
}
