package menu

import (
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// Entry is one product on the coffee menu.
type Entry struct {
	name  string
	price kernel.Money
}

// Name returns the product name.
func (e Entry) Name() string {
	return e.name
}

// Price returns the unit price.
func (e Entry) Price() kernel.Money {
	return e.price
}

// Catalog is the fixed menu the desk prefills drafts from. It is not the
// source of truth for pricing on persisted orders; upstream order items carry
// their own unit prices.
type Catalog struct {
	entries []Entry
}

// Default returns the shop's menu.
func Default() Catalog {
	return Catalog{entries: []Entry{
		{name: "浓缩咖啡", price: mustPrice(3.50)},
		{name: "美式咖啡", price: mustPrice(4.00)},
		{name: "卡布奇诺", price: mustPrice(4.50)},
		{name: "拿铁", price: mustPrice(4.00)},
		{name: "摩卡", price: mustPrice(5.00)},
		{name: "玛奇朵", price: mustPrice(4.50)},
		{name: "平白咖啡", price: mustPrice(4.50)},
		{name: "爱尔兰咖啡", price: mustPrice(6.00)},
	}}
}

// Entries returns the menu entries in menu order.
func (c Catalog) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Find returns the entry with the given product name.
func (c Catalog) Find(name string) (Entry, error) {
	for _, entry := range c.entries {
		if entry.name == name {
			return entry, nil
		}
	}
	return Entry{}, errs.NewObjectNotFoundError("menuEntry", name)
}

func mustPrice(value float64) kernel.Money {
	price, err := kernel.NewMoneyFromFloat(value)
	if err != nil {
		panic(err)
	}
	return price
}
