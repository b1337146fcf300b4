package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Type distinguishes how an order is fulfilled: at a table or by delivery.
// Delivery orders require a full Address; dine-in orders must not carry one.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDineIn is an order consumed in the shop.
	TypeDineIn

	// TypeDelivery is an order delivered to an address.
	TypeDelivery
)

// typeNames maps valid order types to their wire names.
func typeNames() map[Type]string {
	return map[Type]string{
		TypeDineIn:   "DINE_IN",
		TypeDelivery: "DELIVERY",
	}
}

// ParseType converts a wire name such as "DELIVERY" into a Type.
func ParseType(name string) (Type, error) {
	for orderType, typeName := range typeNames() {
		if typeName == name {
			return orderType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderType",
		fmt.Errorf("%q is not a valid order type", name),
	)
}

// Validate checks if the Type value is a member of the enumeration.
func (t Type) Validate() error {
	if _, ok := typeNames()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the wire name of the type, e.g. "DINE_IN".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (t Type) String() string {
	if name, ok := typeNames()[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Label returns the display label for the order type.
func (t Type) Label() string {
	switch t {
	case TypeDineIn:
		return "堂食"
	case TypeDelivery:
		return "外送"
	default:
		return "未知"
	}
}
