package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// GetAllOrdersQueryHandler serves the full order list through the cache.
type GetAllOrdersQueryHandler struct {
	orderServiceClient ports.OrderServiceClient
	orderCache         ports.OrderCache
}

// NewGetAllOrdersQueryHandler creates a handler for the full order list.
func NewGetAllOrdersQueryHandler(
	orderServiceClient ports.OrderServiceClient,
	orderCache ports.OrderCache,
) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{
		orderServiceClient: orderServiceClient,
		orderCache:         orderCache,
	}
}

// Handle returns every order, served from cache while fresh.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context, query GetAllOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

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
