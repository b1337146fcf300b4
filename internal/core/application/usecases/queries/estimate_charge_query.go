package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var ErrEstimateChargeQueryIsNotConstructed = errors.New(
	"EstimateChargeQuery must be created via NewEstimateChargeQuery constructor",
)

// EstimateChargeQuery asks for a pre-submission charge estimate over a set
// of validated items. The estimate includes the fulfillment fees of the
// chosen order type; the upstream order service remains authoritative for
// what an order actually costs.
type EstimateChargeQuery struct { //nolint:recvcheck //using for validation
	orderType order.Type
	items     []order.Item

	guard guard.ConstructorGuard
}

// NewEstimateChargeQuery creates a charge estimate query.
func NewEstimateChargeQuery(
	orderType order.Type, items []order.Item,
) (EstimateChargeQuery, error) {
	chargeQuery := EstimateChargeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		chargeQuery.setOrderType(orderType),
		chargeQuery.setItems(items),
	); err != nil {
		return EstimateChargeQuery{}, err
	}

	return chargeQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q EstimateChargeQuery) Validate() error {
	return q.guard.Validate(ErrEstimateChargeQueryIsNotConstructed)
}

// OrderType returns the fulfillment type priced by the estimate.
func (q EstimateChargeQuery) OrderType() order.Type {
	return q.orderType
}

// Items returns the items the estimate covers.
func (q EstimateChargeQuery) Items() []order.Item {
	items := make([]order.Item, len(q.items))
	copy(items, q.items)
	return items
}

func (q *EstimateChargeQuery) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	q.orderType = orderType
	return nil
}

func (q *EstimateChargeQuery) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	q.items = make([]order.Item, len(items))
	copy(q.items, items)
	return nil
}

// EstimateChargeQueryResponse carries the charge breakdown: the plain item
// sum, the fulfillment fees on top, and their total.
type EstimateChargeQueryResponse struct {
	ItemsTotal kernel.Money
	Fees       kernel.Money
	Total      kernel.Money
}
