package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// recentOrdersLimit caps how many latest orders the dashboard shows.
const recentOrdersLimit = 5

// GetDashboardQuery computes the shop's dashboard statistics over the
// current order collection.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the dashboard statistics.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse carries the aggregated statistics:
//
//   - TotalOrders counts every order regardless of status
//   - TotalRevenue sums the total price of every order
//   - CompletedOrders counts completed orders
//   - PendingOrders counts orders in a non-terminal status
//   - StatusDistribution has one entry per status, zero counts included
//   - RecentOrders holds the newest orders, at most five
type GetDashboardQueryResponse struct {
	TotalOrders        int
	TotalRevenue       kernel.Money
	CompletedOrders    int
	PendingOrders      int
	StatusDistribution map[order.Status]int
	RecentOrders       []*order.Order
}
