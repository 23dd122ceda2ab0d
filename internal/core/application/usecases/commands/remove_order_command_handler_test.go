package commands_test

import (
	"context"
	"testing"

	"diner/internal/core/application/usecases/commands"
	"diner/internal/core/domain/model/order"
	"diner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	existing := storedOrder(t, order.Pending)
	cmd, _ := commands.NewRemoveOrderCommand("o-1")

	orders := new(MockOrderRepository)
	mock.InOrder(
		orders.On("Get", mock.Anything, "o-1").Return(existing, nil).Once(),
		orders.On("Remove", mock.Anything, "o-1").Return(nil).Once(),
	)

	h := commands.NewRemoveOrderCommandHandler(orders)
	require.NoError(t, h.Handle(ctx, cmd))
	orders.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.RemoveOrderCommand{} // not constructed properly

	h := commands.NewRemoveOrderCommandHandler(new(MockOrderRepository))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestRemoveOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewRemoveOrderCommand("ghost")

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, "ghost").
		Return(nil, errs.NewObjectNotFoundError("orderId", "ghost")).Once()

	h := commands.NewRemoveOrderCommandHandler(orders)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_NonPendingOrder(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewRemoveOrderCommand("o-1")

	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, "o-1").Return(storedOrder(t, status), nil).Once()

		h := commands.NewRemoveOrderCommandHandler(orders)
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		orders.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	}
}
