package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// CancelOrderCommandHandler asks the upstream order service to cancel an
// order and invalidates cached reads on success.
type CancelOrderCommandHandler struct {
	orderServiceClient ports.OrderServiceClient
	cacheInvalidator   CacheInvalidator
}

// NewCancelOrderCommandHandler creates a handler for the cancel action.
func NewCancelOrderCommandHandler(
	orderServiceClient ports.OrderServiceClient,
	cacheInvalidator CacheInvalidator,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orderServiceClient: orderServiceClient,
		cacheInvalidator:   cacheInvalidator,
	}
}

// Handle cancels the order and returns the updated order.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context, cmd CancelOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.orderServiceClient.CancelOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	h.cacheInvalidator.InvalidateOrders()
	return updated, nil
}
