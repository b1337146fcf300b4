package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAddressRequired is returned when a delivery order carries no address.
	ErrAddressRequired = errors.New("delivery orders must have an address")

	// ErrAddressNotAllowed is returned when a dine-in order carries an address.
	ErrAddressNotAllowed = errors.New("dine-in orders must not have an address")

	// ErrNoItems is returned when an order carries no line items.
	ErrNoItems = errors.New("order must have at least one item")
)

// Order represents a customer transaction at the coffee shop. The upstream
// order service owns every persisted order: it assigns the identifier and
// timestamps and applies all status transitions. This type reconstructs that
// state behind validated invariants so the rest of the desk can rely on them:
//
//   - the identifier is a valid UUID and the customer name is non-empty
//   - a delivery order has a fully populated address, a dine-in order has none
//   - there is at least one line item and every item holds its own invariants
//   - the total price is derived as the sum of item totals, never stored
//
// Orders can only be created through the NewOrder constructor.
type Order struct {
	// id is the identifier assigned by the upstream order service
	id kernel.UUID

	// customerName is the name the order was placed under
	customerName string

	// orderType says whether the order is dine-in or delivery
	orderType Type

	// status is the current state in the order lifecycle
	status Status

	// items are the ordered product lines, in order
	items []Item

	// totalPrice is derived from items at construction
	totalPrice kernel.Money

	// address is the delivery destination (nil for dine-in)
	address *Address

	// createdAt and updatedAt are assigned upstream
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder reconstructs an Order from upstream state with validation.
// This is the only way to create a valid Order.
//
// The total price is always recomputed from the items; a total reported by
// the wire is never trusted over the derivation.
func NewOrder(
	id kernel.UUID,
	customerName string,
	orderType Type,
	status Status,
	items []Item,
	address *Address,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setOrderType(orderType),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := order.setAddress(address); err != nil {
		return nil, err
	}

	order.totalPrice = SumItemTotals(order.items)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// OrderType returns whether the order is dine-in or delivery.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the derived order total, the sum of item totals.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Address returns the delivery destination, or nil for dine-in orders.
func (o *Order) Address() *Address {
	return o.address
}

// CreatedAt returns the upstream creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the upstream last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AvailableActions returns the lifecycle actions the desk offers for the
// order's current status. See Status.AvailableActions for the exact table.
func (o *Order) AvailableActions() []Action {
	return o.status.AvailableActions()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d: %w", i, err))
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setAddress enforces the address presence rule and therefore requires the
// order type to be set first.
func (o *Order) setAddress(address *Address) error {
	if o.orderType == TypeDelivery {
		if address == nil {
			return ErrAddressRequired
		}
		if err := address.Validate(); err != nil {
			return err
		}
	}
	if o.orderType == TypeDineIn && address != nil {
		return ErrAddressNotAllowed
	}
	o.address = address
	return nil
}
