package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// ChangeOrderStatusCommandHandler asks the upstream order service to move
// an order to a chosen status and invalidates cached reads on success.
type ChangeOrderStatusCommandHandler struct {
	orderServiceClient ports.OrderServiceClient
	cacheInvalidator   CacheInvalidator
}

// NewChangeOrderStatusCommandHandler creates a handler for direct status
// changes.
func NewChangeOrderStatusCommandHandler(
	orderServiceClient ports.OrderServiceClient,
	cacheInvalidator CacheInvalidator,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orderServiceClient: orderServiceClient,
		cacheInvalidator:   cacheInvalidator,
	}
}

// Handle updates the order status and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.orderServiceClient.UpdateOrderStatus(ctx, cmd.OrderID(), cmd.Status())
	if err != nil {
		return nil, err
	}

	h.cacheInvalidator.InvalidateOrders()
	return updated, nil
}
