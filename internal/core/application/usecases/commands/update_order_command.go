package commands

import (
	"errors"

	"diner/internal/core/domain/model/order"
	"diner/internal/pkg/errs"
	"diner/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to overwrite the mutable fields
// of an existing order, including a status transition. The identifier
// selects the order and is itself never changed by an update.
//
// Unlike creation, the requested status here must be a recognized value;
// the aggregate's state machine enforces that during Handle.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	deliverTo    string
	mobileNumber string
	status       order.Status
	items        []order.LineItem

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
func NewUpdateOrderCommand(orderID, deliverTo, mobileNumber string, status order.Status, items []order.LineItem) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliverTo(deliverTo),
		cmd.setMobileNumber(mobileNumber),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// DeliverTo returns the new delivery address.
func (c UpdateOrderCommand) DeliverTo() string {
	return c.deliverTo
}

// MobileNumber returns the new contact number.
func (c UpdateOrderCommand) MobileNumber() string {
	return c.mobileNumber
}

// Status returns the requested status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the new line items.
func (c UpdateOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	c.deliverTo = deliverTo
	return nil
}

func (c *UpdateOrderCommand) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	c.mobileNumber = mobileNumber
	return nil
}

func (c *UpdateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}
	c.items = items
	return nil
}
