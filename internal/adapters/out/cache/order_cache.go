package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// Cache keys share the "orders" prefix so a mutation can invalidate the
// whole order keyspace in one sweep, whatever query shapes are cached.
const (
	listKey        = "orders"
	byIDPrefix     = "orders/id/"
	byStatusPrefix = "orders/status/"
)

// OrderCache is a TTL-bounded read cache over the upstream order service.
// Entries expire on their own after the freshness window; mutations drop
// every order entry at once, mirroring read-after-write invalidation.
type OrderCache struct {
	store *gocache.Cache
}

// NewOrderCache creates a cache whose entries stay fresh for ttl.
func NewOrderCache(ttl time.Duration) *OrderCache {
	return &OrderCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

var _ ports.OrderCache = (*OrderCache)(nil)

// GetList returns the cached full order list, if fresh.
func (c *OrderCache) GetList() ([]*order.Order, bool) {
	return c.getList(listKey)
}

// SetList caches the full order list.
func (c *OrderCache) SetList(orders []*order.Order) {
	c.store.SetDefault(listKey, orders)
}

// GetByID returns the cached order with the given identifier, if fresh.
func (c *OrderCache) GetByID(id string) (*order.Order, bool) {
	value, ok := c.store.Get(byIDPrefix + id)
	if !ok {
		return nil, false
	}
	cached, ok := value.(*order.Order)
	return cached, ok
}

// SetByID caches a single order under its identifier.
func (c *OrderCache) SetByID(id string, o *order.Order) {
	c.store.SetDefault(byIDPrefix+id, o)
}

// GetByStatus returns the cached list for a status, if fresh.
func (c *OrderCache) GetByStatus(status order.Status) ([]*order.Order, bool) {
	return c.getList(byStatusPrefix + status.String())
}

// SetByStatus caches the list for a status.
func (c *OrderCache) SetByStatus(status order.Status, orders []*order.Order) {
	c.store.SetDefault(byStatusPrefix+status.String(), orders)
}

// InvalidateOrders drops every cached order entry, whatever its shape.
func (c *OrderCache) InvalidateOrders() {
	for key := range c.store.Items() {
		if key == listKey || strings.HasPrefix(key, byIDPrefix) || strings.HasPrefix(key, byStatusPrefix) {
			c.store.Delete(key)
		}
	}
}

func (c *OrderCache) getList(key string) ([]*order.Order, bool) {
	value, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	cached, ok := value.([]*order.Order)
	return cached, ok
}
