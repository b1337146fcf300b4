package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// GetOrderQueryHandler serves single orders through the cache.
type GetOrderQueryHandler struct {
	orderServiceClient ports.OrderServiceClient
	orderCache         ports.OrderCache
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(
	orderServiceClient ports.OrderServiceClient,
	orderCache ports.OrderCache,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderServiceClient: orderServiceClient,
		orderCache:         orderCache,
	}
}

// Handle returns the order, served from cache while fresh.
// Propagates errs.ErrObjectNotFound when the service has no such order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context, query GetOrderQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id := query.OrderID().String()
	if cached, ok := h.orderCache.GetByID(id); ok {
		return cached, nil
	}

	found, err := h.orderServiceClient.GetOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	h.orderCache.SetByID(id, found)
	return found, nil
}
