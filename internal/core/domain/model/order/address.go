package order

import (
	"errors"
	"strings"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a value object holding a delivery destination. All four fields
// are required together: a delivery order carries a fully populated address,
// a dine-in order carries none. Fields are trimmed on construction.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address, requiring every field to be non-empty
// after trimming. Field errors are joined so a draft form can surface all
// missing fields at once.
func NewAddress(street, city, postalCode, country string) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	postalCode = strings.TrimSpace(postalCode)
	country = strings.TrimSpace(country)

	var err error
	if street == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("street"))
	}
	if city == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("city"))
	}
	if postalCode == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("postalCode"))
	}
	if country == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("country"))
	}
	if err != nil {
		return Address{}, err
	}

	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}
