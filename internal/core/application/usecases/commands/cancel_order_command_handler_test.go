package commands_test

import (
	"errors"
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)

	updated := sampleOrder(t, id, order.StatusCancelled)
	client := new(MockOrderServiceClient)
	client.On("CancelOrder", ctx, id).Return(updated, nil).Once()
	invalidator := new(MockCacheInvalidator)
	invalidator.On("InvalidateOrders").Once()

	h := commands.NewCancelOrderCommandHandler(client, invalidator)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, got.Status())
	client.AssertExpectations(t)
	invalidator.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UpstreamError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)

	upstreamErr := errors.New("conflict")
	client := new(MockOrderServiceClient)
	client.On("CancelOrder", ctx, id).Return(nil, upstreamErr).Once()
	invalidator := new(MockCacheInvalidator)

	h := commands.NewCancelOrderCommandHandler(client, invalidator)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, upstreamErr)
	invalidator.AssertNotCalled(t, "InvalidateOrders")
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	client := new(MockOrderServiceClient)
	h := commands.NewCancelOrderCommandHandler(client, new(MockCacheInvalidator))

	_, err := h.Handle(t.Context(), commands.CancelOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	client.AssertNotCalled(t, "CancelOrder")
}
