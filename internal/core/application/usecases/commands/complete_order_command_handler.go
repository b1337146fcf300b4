package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// CompleteOrderCommandHandler asks the upstream order service to complete
// an order and invalidates cached reads on success.
type CompleteOrderCommandHandler struct {
	orderServiceClient ports.OrderServiceClient
	cacheInvalidator   CacheInvalidator
}

// NewCompleteOrderCommandHandler creates a handler for the complete action.
func NewCompleteOrderCommandHandler(
	orderServiceClient ports.OrderServiceClient,
	cacheInvalidator CacheInvalidator,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		orderServiceClient: orderServiceClient,
		cacheInvalidator:   cacheInvalidator,
	}
}

// Handle completes the order and returns the updated order.
func (h *CompleteOrderCommandHandler) Handle(
	ctx context.Context, cmd CompleteOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.orderServiceClient.CompleteOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	h.cacheInvalidator.InvalidateOrders()
	return updated, nil
}
