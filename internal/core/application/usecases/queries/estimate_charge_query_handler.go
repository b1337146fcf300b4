package queries

import (
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
)

// EstimateChargeQueryHandler prices a charge estimate with the pricing
// strategy of the order's fulfillment type. Purely local, no upstream call.
type EstimateChargeQueryHandler struct{}

// NewEstimateChargeQueryHandler creates a handler for charge estimates.
func NewEstimateChargeQueryHandler() EstimateChargeQueryHandler {
	return EstimateChargeQueryHandler{}
}

// Handle computes the charge breakdown for the query's items.
func (h EstimateChargeQueryHandler) Handle(
	query EstimateChargeQuery,
) (EstimateChargeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateChargeQueryResponse{}, err
	}

	items := query.Items()
	pricing := services.PricingFor(query.OrderType())

	return EstimateChargeQueryResponse{
		ItemsTotal: order.SumItemTotals(items),
		Fees:       pricing.Fees(),
		Total:      pricing.Quote(items),
	}, nil
}
