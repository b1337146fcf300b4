package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// SubmitOrderCommandHandler submits validated drafts to the upstream order
// service. The service assigns the identifier, initial status and
// timestamps; the handler invalidates cached reads once the order exists.
type SubmitOrderCommandHandler struct {
	orderServiceClient ports.OrderServiceClient
	cacheInvalidator   CacheInvalidator
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(
	orderServiceClient ports.OrderServiceClient,
	cacheInvalidator CacheInvalidator,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		orderServiceClient: orderServiceClient,
		cacheInvalidator:   cacheInvalidator,
	}
}

// Handle submits the order and returns it as the upstream service created it.
// The cache is invalidated only after a successful submission.
func (h *SubmitOrderCommandHandler) Handle(
	ctx context.Context, cmd SubmitOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.orderServiceClient.CreateOrder(
		ctx, cmd.CustomerName(), cmd.OrderType(), cmd.Items(), cmd.Address())
	if err != nil {
		return nil, err
	}

	h.cacheInvalidator.InvalidateOrders()
	return created, nil
}
