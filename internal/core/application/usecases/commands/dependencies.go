// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, upstream call, and
// cache invalidation on success.
package commands

// CacheInvalidator drops cached order reads after a successful mutation.
// Every command handler fires it so the next read of any shape goes back
// to the upstream order service.
type CacheInvalidator interface {
	InvalidateOrders()
}
