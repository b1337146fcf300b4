package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// GetOrdersByStatusQueryHandler serves status-filtered order lists through
// the cache. The unfiltered form is served exactly like the full list.
type GetOrdersByStatusQueryHandler struct {
	orderServiceClient ports.OrderServiceClient
	orderCache         ports.OrderCache
}

// NewGetOrdersByStatusQueryHandler creates a handler for status filters.
func NewGetOrdersByStatusQueryHandler(
	orderServiceClient ports.OrderServiceClient,
	orderCache ports.OrderCache,
) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{
		orderServiceClient: orderServiceClient,
		orderCache:         orderCache,
	}
}

// Handle returns the orders matching the filter, served from cache while
// fresh.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context, query GetOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.AllStatuses() {
		return h.handleAll(ctx)
	}

	if orders, ok := h.orderCache.GetByStatus(query.Status()); ok {
		return orders, nil
	}

	orders, err := h.orderServiceClient.GetOrdersByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	h.orderCache.SetByStatus(query.Status(), orders)
	return orders, nil
}

func (h GetOrdersByStatusQueryHandler) handleAll(ctx context.Context) ([]*order.Order, error) {
	if orders, ok := h.orderCache.GetList(); ok {
		return orders, nil
	}

	orders, err := h.orderServiceClient.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	h.orderCache.SetList(orders)
	return orders, nil
}
