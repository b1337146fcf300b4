package services

import (
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// Standing fees applied by the delivery pricing strategy.
var (
	packagingFee = mustMoney(2.00)
	deliveryFee  = mustMoney(5.00)
)

func mustMoney(v float64) kernel.Money {
	money, err := kernel.NewMoneyFromFloat(v)
	if err != nil {
		panic(err)
	}
	return money
}

// PricingStrategy estimates the charge for a set of order items before the
// order is submitted. The estimate is advisory: the upstream order service
// remains the source of truth for what an order actually costs, and the
// order's own total stays the plain sum of its item totals.
type PricingStrategy interface {
	// Quote returns the estimated charge for the items.
	Quote(items []order.Item) kernel.Money

	// Fees returns the surcharge the strategy adds on top of the item sum.
	Fees() kernel.Money
}

// DineInPricing charges exactly the sum of item totals. Nothing is added
// for orders consumed in the shop.
type DineInPricing struct{}

// NewDineInPricing creates the dine-in pricing strategy.
func NewDineInPricing() DineInPricing {
	return DineInPricing{}
}

// Quote returns the plain sum of item totals.
func (DineInPricing) Quote(items []order.Item) kernel.Money {
	return order.SumItemTotals(items)
}

// Fees returns zero.
func (DineInPricing) Fees() kernel.Money {
	return kernel.ZeroMoney()
}

// DeliveryPricing charges the sum of item totals plus a packaging fee of
// 2.00 and a delivery fee of 5.00.
type DeliveryPricing struct{}

// NewDeliveryPricing creates the delivery pricing strategy.
func NewDeliveryPricing() DeliveryPricing {
	return DeliveryPricing{}
}

// Quote returns the item sum plus packaging and delivery fees.
func (p DeliveryPricing) Quote(items []order.Item) kernel.Money {
	return order.SumItemTotals(items).Add(p.Fees())
}

// Fees returns the packaging fee plus the delivery fee.
func (DeliveryPricing) Fees() kernel.Money {
	return packagingFee.Add(deliveryFee)
}

// PricingFor selects the pricing strategy for an order type. Unknown types
// fall back to dine-in pricing, the conservative estimate.
func PricingFor(orderType order.Type) PricingStrategy {
	if orderType == order.TypeDelivery {
		return NewDeliveryPricing()
	}
	return NewDineInPricing()
}
