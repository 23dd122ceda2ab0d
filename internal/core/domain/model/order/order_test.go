package order_test

import (
	"testing"

	"diner/internal/core/domain/model/order"
	"diner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, quantity int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem("d-1", "Salmon", "Fish", 19, "img", quantity)
	require.NoError(t, err)
	return item
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create a line item with a positive quantity", func(t *testing.T) {
		item, err := order.NewLineItem("d-1", "Salmon", "Fish", 19, "img", 2)

		require.NoError(t, err)
		assert.Equal(t, "d-1", item.DishID())
		assert.Equal(t, "Salmon", item.Name())
		assert.Equal(t, "Fish", item.Description())
		assert.Equal(t, 19, item.Price())
		assert.Equal(t, "img", item.ImageURL())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("should accept quantity zero", func(t *testing.T) {
		item, err := order.NewLineItem("d-1", "Salmon", "Fish", 19, "img", 0)

		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("should reject a negative quantity", func(t *testing.T) {
		_, err := order.NewLineItem("d-1", "Salmon", "Fish", 19, "img", -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a valid order", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 2)}

		o, err := order.NewOrder("o-1", "221B Baker Street", "555-0100", order.Pending, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "o-1", o.ID())
		assert.Equal(t, "221B Baker Street", o.DeliverTo())
		assert.Equal(t, "555-0100", o.MobileNumber())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should store an arbitrary status verbatim", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1)}

		o, err := order.NewOrder("o-1", "address", "number", "anything-goes", items)

		require.NoError(t, err)
		assert.Equal(t, order.Status("anything-goes"), o.Status())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1)}

		cases := []struct {
			name         string
			id           string
			deliverTo    string
			mobileNumber string
			items        []order.LineItem
		}{
			{"empty id", "", "address", "number", items},
			{"empty deliverTo", "o-1", "", "number", items},
			{"empty mobileNumber", "o-1", "address", "", items},
			{"no line items", "o-1", "address", "number", nil},
		}

		for _, tc := range cases {
			t.Run("should reject "+tc.name, func(t *testing.T) {
				_, err := order.NewOrder(tc.id, tc.deliverTo, tc.mobileNumber, order.Pending, tc.items)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject an order that bypassed the constructor", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Update(t *testing.T) {
	newOrder := func(t *testing.T, status order.Status) *order.Order {
		t.Helper()
		o, err := order.NewOrder("o-1", "address", "number", status, []order.LineItem{mustLineItem(t, 2)})
		require.NoError(t, err)
		return o
	}

	t.Run("should overwrite every field except the id", func(t *testing.T) {
		o := newOrder(t, order.Pending)
		newItems := []order.LineItem{mustLineItem(t, 5), mustLineItem(t, 1)}

		require.NoError(t, o.Update("new address", "new number", order.Preparing, newItems))

		assert.Equal(t, "o-1", o.ID())
		assert.Equal(t, "new address", o.DeliverTo())
		assert.Equal(t, "new number", o.MobileNumber())
		assert.Equal(t, order.Preparing, o.Status())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should reject any update of a delivered order", func(t *testing.T) {
		o := newOrder(t, order.Delivered)

		err := o.Update("new address", "new number", order.Pending, []order.LineItem{mustLineItem(t, 1)})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "address", o.DeliverTo())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject an unrecognized new status", func(t *testing.T) {
		o := newOrder(t, order.Pending)

		err := o.Update("address", "number", "sideways", []order.LineItem{mustLineItem(t, 1)})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should leave the order unchanged when a field is invalid", func(t *testing.T) {
		o := newOrder(t, order.Pending)

		err := o.Update("", "number", order.Preparing, []order.LineItem{mustLineItem(t, 1)})

		require.Error(t, err)
		assert.Equal(t, "address", o.DeliverTo())
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_EnsureRemovable(t *testing.T) {
	t.Run("should allow removing a pending order", func(t *testing.T) {
		o, err := order.NewOrder("o-1", "address", "number", order.Pending, []order.LineItem{mustLineItem(t, 1)})
		require.NoError(t, err)

		require.NoError(t, o.EnsureRemovable())
	})

	t.Run("should reject removing a non-pending order", func(t *testing.T) {
		for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
			o, err := order.NewOrder("o-1", "address", "number", status, []order.LineItem{mustLineItem(t, 1)})
			require.NoError(t, err)

			err = o.EnsureRemovable()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a copy of the line items", func(t *testing.T) {
		o, err := order.NewOrder("o-1", "address", "number", order.Pending,
			[]order.LineItem{mustLineItem(t, 2)})
		require.NoError(t, err)

		items := o.Items()
		items[0] = mustLineItem(t, 99)

		assert.Equal(t, 2, o.Items()[0].Quantity())
	})
}
