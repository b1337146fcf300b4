package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// MarkOrderReadyCommandHandler asks the upstream order service to move an
// order to the ready status and invalidates cached reads on success.
type MarkOrderReadyCommandHandler struct {
	orderServiceClient ports.OrderServiceClient
	cacheInvalidator   CacheInvalidator
}

// NewMarkOrderReadyCommandHandler creates a handler for the mark-ready action.
func NewMarkOrderReadyCommandHandler(
	orderServiceClient ports.OrderServiceClient,
	cacheInvalidator CacheInvalidator,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		orderServiceClient: orderServiceClient,
		cacheInvalidator:   cacheInvalidator,
	}
}

// Handle marks the order ready and returns the updated order.
func (h *MarkOrderReadyCommandHandler) Handle(
	ctx context.Context, cmd MarkOrderReadyCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.orderServiceClient.MarkOrderReady(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	h.cacheInvalidator.InvalidateOrders()
	return updated, nil
}
