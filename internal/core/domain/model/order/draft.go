package order

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// Draft is an order under composition at the desk. Unlike Order it has no
// identity and no timestamps: it exists only in memory until it is submitted
// to the upstream order service, which turns it into a persisted Order.
//
// A draft is deliberately permissive while being edited. Lines may be empty or
// half filled, the address may be incomplete. The submit gate is Validate:
// a draft that fails validation is rejected locally and no request is sent.
type Draft struct {
	customerName string
	orderType    Type
	lines        []DraftLine

	street     string
	city       string
	postalCode string
	country    string
}

// DraftLine is one product line being composed. Its total is derived from
// quantity and unit price on read and never stored.
type DraftLine struct {
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

// TotalPrice returns quantity x unitPrice for the line, or zero while the
// quantity is not yet positive.
func (l DraftLine) TotalPrice() kernel.Money {
	if l.Quantity < 1 {
		return kernel.ZeroMoney()
	}
	return l.UnitPrice.MultiplyInt(l.Quantity)
}

// NewDraft starts an empty dine-in draft, the default order type at the desk.
func NewDraft() *Draft {
	return &Draft{orderType: TypeDineIn}
}

// SetCustomerName records the customer the order is for.
func (d *Draft) SetCustomerName(name string) {
	d.customerName = name
}

// SetOrderType switches the draft between dine-in and delivery.
// Address fields are kept either way; they only count for delivery.
func (d *Draft) SetOrderType(orderType Type) {
	d.orderType = orderType
}

// SetAddress records the delivery destination fields.
func (d *Draft) SetAddress(street, city, postalCode, country string) {
	d.street = street
	d.city = city
	d.postalCode = postalCode
	d.country = country
}

// AddLine appends a product line to the draft.
func (d *Draft) AddLine(line DraftLine) {
	d.lines = append(d.lines, line)
}

// RemoveLine deletes the line at the given position, keeping line order.
func (d *Draft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.lines) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(d.lines)-1)
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	return nil
}

// UpdateLine replaces the line at the given position. The line total is
// derived, so editing quantity or unit price recomputes it implicitly.
func (d *Draft) UpdateLine(index int, line DraftLine) error {
	if index < 0 || index >= len(d.lines) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(d.lines)-1)
	}
	d.lines[index] = line
	return nil
}

// CustomerName returns the customer the draft is for.
func (d *Draft) CustomerName() string {
	return d.customerName
}

// OrderType returns the draft's fulfillment type.
func (d *Draft) OrderType() Type {
	return d.orderType
}

// Lines returns a copy of the draft's product lines.
func (d *Draft) Lines() []DraftLine {
	lines := make([]DraftLine, len(d.lines))
	copy(lines, d.lines)
	return lines
}

// TotalPrice returns the running total of the draft, the sum of line totals.
// It is recomputed on every call, so edits are always reflected.
func (d *Draft) TotalPrice() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range d.lines {
		total = total.Add(line.TotalPrice())
	}
	return total
}

// Validate is the submit gate. A draft is submittable when:
//
//   - the customer name is non-empty
//   - there is at least one line
//   - every line has a product name and a quantity of at least 1
//     (unit prices are non-negative by construction of Money)
//   - for delivery, all four address fields are non-empty
//
// All failures are joined so a form can surface them at once.
func (d *Draft) Validate() error {
	var err error
	if strings.TrimSpace(d.customerName) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customerName"))
	}
	if typeErr := d.orderType.Validate(); typeErr != nil {
		err = errors.Join(err, typeErr)
	}
	if len(d.lines) == 0 {
		err = errors.Join(err, ErrNoItems)
	}
	if _, itemsErr := d.buildItems(); itemsErr != nil {
		err = errors.Join(err, itemsErr)
	}
	if d.orderType == TypeDelivery {
		if _, addrErr := NewAddress(d.street, d.city, d.postalCode, d.country); addrErr != nil {
			err = errors.Join(err, addrErr)
		}
	}
	return err
}

// IsSubmittable reports whether Validate passes.
func (d *Draft) IsSubmittable() bool {
	return d.Validate() == nil
}

// BuildItems materializes the draft lines into validated order items.
// Fails when the draft is not submittable.
func (d *Draft) BuildItems() ([]Item, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.buildItems()
}

// BuildAddress materializes the delivery address, or nil for dine-in drafts.
// Fails when the draft is not submittable.
func (d *Draft) BuildAddress() (*Address, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.orderType != TypeDelivery {
		return nil, nil
	}
	address, err := NewAddress(d.street, d.city, d.postalCode, d.country)
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (d *Draft) buildItems() ([]Item, error) {
	items := make([]Item, 0, len(d.lines))
	var err error
	for _, line := range d.lines {
		item, itemErr := NewItem(line.ProductName, line.Quantity, line.UnitPrice)
		if itemErr != nil {
			err = errors.Join(err, itemErr)
			continue
		}
		items = append(items, item)
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}
