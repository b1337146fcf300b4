package order

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product line within an order: a product name, a quantity of at
// least one, a non-negative unit price, and a total derived from the two.
//
// The total is computed at construction and can never be set independently;
// editing quantity or unit price means constructing a new Item, which
// recomputes it. This keeps the per-item invariant
// totalPrice == quantity x unitPrice structural.
type Item struct {
	productName string
	quantity    int
	unitPrice   kernel.Money
	totalPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line. The product name must be non-empty after
// trimming and the quantity at least 1; the unit price is non-negative by
// construction of Money. The item total is derived as quantity x unitPrice.
func NewItem(productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	productName = strings.TrimSpace(productName)

	var err error
	if productName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("productName"))
	}
	if quantity < 1 || quantity > maxItemQuantity {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity))
	}
	if err != nil {
		return Item{}, err
	}

	return Item{
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		totalPrice:  unitPrice.MultiplyInt(quantity),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// maxItemQuantity bounds a single line; larger orders add more lines.
const maxItemQuantity = 999

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the product name of the line.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns how many units the line orders.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the derived line total, quantity x unitPrice.
func (i Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

// SumItemTotals derives an order total as the sum of the line totals.
// This is the single place the order-level invariant
// order.totalPrice == sum(item.totalPrice) is computed.
func SumItemTotals(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	return total
}
