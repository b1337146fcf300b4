package ports

import "coffeeshop/internal/core/domain/model/order"

// OrderCache is a short-lived read cache over the upstream order service.
// Entries expire on their own after the configured freshness window; on any
// successful mutation the whole order keyspace is invalidated at once, so
// the next read of any shape goes back to the service.
type OrderCache interface {
	// GetList returns the cached full order list, if fresh.
	GetList() ([]*order.Order, bool)

	// SetList caches the full order list.
	SetList(orders []*order.Order)

	// GetByID returns the cached order with the given identifier, if fresh.
	GetByID(id string) (*order.Order, bool)

	// SetByID caches a single order under its identifier.
	SetByID(id string, o *order.Order)

	// GetByStatus returns the cached list for a status, if fresh.
	GetByStatus(status order.Status) ([]*order.Order, bool)

	// SetByStatus caches the list for a status.
	SetByStatus(status order.Status, orders []*order.Order)

	// InvalidateOrders drops every cached order entry.
	InvalidateOrders()
}
