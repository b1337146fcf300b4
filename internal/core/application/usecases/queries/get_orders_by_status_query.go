package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves the orders currently in one status.
// The all-statuses form returns the full list unfiltered; it exists so a
// status picker with an "all" choice maps onto a single query shape.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status      order.Status
	allStatuses bool

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query filtered to one status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	statusQuery := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusQuery.setStatus(status); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return statusQuery, nil
}

// NewGetOrdersForAllStatusesQuery creates the unfiltered form of the query.
func NewGetOrdersForAllStatusesQuery() GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{
		allStatuses: true,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// AllStatuses reports whether the query asks for the unfiltered list.
func (q GetOrdersByStatusQuery) AllStatuses() bool {
	return q.allStatuses
}

// Status returns the status filter. Meaningless when AllStatuses is true.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}
