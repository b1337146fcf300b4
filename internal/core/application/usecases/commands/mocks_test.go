package commands_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderServiceClient struct{ mock.Mock }

func (m *MockOrderServiceClient) GetAllOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return orders(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return single(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) GetOrdersByStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return orders(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) CreateOrder(
	ctx context.Context,
	customerName string,
	orderType order.Type,
	items []order.Item,
	address *order.Address,
) (*order.Order, error) {
	args := m.Called(ctx, customerName, orderType, items, address)
	return single(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) UpdateOrderStatus(
	ctx context.Context, id kernel.UUID, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	return single(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) MarkOrderReady(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return single(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) CompleteOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return single(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) CancelOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return single(args.Get(0)), args.Error(1)
}

func single(v any) *order.Order {
	if v == nil {
		return nil
	}
	return v.(*order.Order)
}

func orders(v any) []*order.Order {
	if v == nil {
		return nil
	}
	return v.([]*order.Order)
}

type MockCacheInvalidator struct{ mock.Mock }

func (m *MockCacheInvalidator) InvalidateOrders() {
	m.Called()
}

func sampleOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromFloat(4.00)
	require.NoError(t, err)
	item, err := order.NewItem("美式咖啡", 2, price)
	require.NoError(t, err)

	now := time.Now()
	o, err := order.NewOrder(id, "王小明", order.TypeDineIn, status,
		[]order.Item{item}, nil, now, now)
	require.NoError(t, err)
	return o
}
