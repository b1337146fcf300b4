package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderServiceClient is the outbound contract to the upstream order service,
// the sole owner of persisted orders. Every read returns fully reconstructed
// aggregates; every write returns the updated aggregate as the service sees
// it after the mutation.
type OrderServiceClient interface {
	// GetAllOrders retrieves every order, newest first.
	GetAllOrders(ctx context.Context) ([]*order.Order, error)

	// GetOrder retrieves a single order by its identifier.
	// Returns errs.ErrObjectNotFound when the service has no such order.
	GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOrdersByStatus retrieves the orders currently in the given status.
	GetOrdersByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// CreateOrder submits a new order built from validated draft parts.
	// The service assigns the identifier, status and timestamps.
	CreateOrder(
		ctx context.Context,
		customerName string,
		orderType order.Type,
		items []order.Item,
		address *order.Address,
	) (*order.Order, error)

	// UpdateOrderStatus moves an order to the given status.
	UpdateOrderStatus(ctx context.Context, id kernel.UUID, status order.Status) (*order.Order, error)

	// MarkOrderReady marks a paid or preparing order as ready for pickup.
	MarkOrderReady(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CompleteOrder completes a ready order.
	CompleteOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CancelOrder cancels a created or paid order.
	CancelOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
