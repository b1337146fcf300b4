package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to submit a composed order draft
// to the upstream order service. The draft is validated at construction:
// an invalid draft never produces a command, so no request is ever sent
// for it.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	orderType    order.Type
	items        []order.Item
	address      *order.Address

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command from an order draft.
// Fails with the draft's joined validation errors when the draft is not
// submittable.
func NewSubmitOrderCommand(draft *order.Draft) (SubmitOrderCommand, error) {
	submitCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := submitCommand.setDraft(draft); err != nil {
		return SubmitOrderCommand{}, err
	}

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// CustomerName returns the customer the order is for.
func (c SubmitOrderCommand) CustomerName() string {
	return c.customerName
}

// OrderType returns the order's fulfillment type.
func (c SubmitOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Items returns the validated order items built from the draft.
func (c SubmitOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// Address returns the delivery address, or nil for dine-in orders.
func (c SubmitOrderCommand) Address() *order.Address {
	return c.address
}

func (c *SubmitOrderCommand) setDraft(draft *order.Draft) error {
	items, err := draft.BuildItems()
	if err != nil {
		return err
	}
	address, err := draft.BuildAddress()
	if err != nil {
		return err
	}

	c.customerName = draft.CustomerName()
	c.orderType = draft.OrderType()
	c.items = items
	c.address = address
	return nil
}
