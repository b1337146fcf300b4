package queries

import (
	"context"
	"sort"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// GetDashboardQueryHandler aggregates dashboard statistics over the full
// order list, read through the cache.
type GetDashboardQueryHandler struct {
	orderServiceClient ports.OrderServiceClient
	orderCache         ports.OrderCache
}

// NewGetDashboardQueryHandler creates a handler for dashboard statistics.
func NewGetDashboardQueryHandler(
	orderServiceClient ports.OrderServiceClient,
	orderCache ports.OrderCache,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		orderServiceClient: orderServiceClient,
		orderCache:         orderCache,
	}
}

// Handle computes the statistics from the current order collection.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context, query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	orders, ok := h.orderCache.GetList()
	if !ok {
		fetched, err := h.orderServiceClient.GetAllOrders(ctx)
		if err != nil {
			return GetDashboardQueryResponse{}, err
		}
		h.orderCache.SetList(fetched)
		orders = fetched
	}

	return aggregate(orders), nil
}

func aggregate(orders []*order.Order) GetDashboardQueryResponse {
	distribution := make(map[order.Status]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		distribution[status] = 0
	}

	response := GetDashboardQueryResponse{
		TotalOrders:        len(orders),
		TotalRevenue:       kernel.ZeroMoney(),
		StatusDistribution: distribution,
	}

	for _, o := range orders {
		response.TotalRevenue = response.TotalRevenue.Add(o.TotalPrice())
		distribution[o.Status()]++

		if o.Status() == order.StatusCompleted {
			response.CompletedOrders++
		}
		if o.Status().IsPending() {
			response.PendingOrders++
		}
	}

	response.RecentOrders = recentOrders(orders)
	return response
}

// recentOrders returns the newest orders by creation time, capped at the
// dashboard limit. The input slice is not modified.
func recentOrders(orders []*order.Order) []*order.Order {
	recent := make([]*order.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt().After(recent[j].CreatedAt())
	})

	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	return recent
}
