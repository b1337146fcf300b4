package queries_test

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
	return orderList(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderValue(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) GetOrdersByStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return orderList(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) CreateOrder(
	ctx context.Context,
	customerName string,
	orderType order.Type,
	items []order.Item,
	address *order.Address,
) (*order.Order, error) {
	args := m.Called(ctx, customerName, orderType, items, address)
	return orderValue(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) UpdateOrderStatus(
	ctx context.Context, id kernel.UUID, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	return orderValue(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) MarkOrderReady(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderValue(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) CompleteOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderValue(args.Get(0)), args.Error(1)
}

func (m *MockOrderServiceClient) CancelOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderValue(args.Get(0)), args.Error(1)
}

func orderValue(v any) *order.Order {
	if v == nil {
		return nil
	}
	return v.(*order.Order)
}

func orderList(v any) []*order.Order {
	if v == nil {
		return nil
	}
	return v.([]*order.Order)
}

type MockOrderCache struct{ mock.Mock }

func (m *MockOrderCache) GetList() ([]*order.Order, bool) {
	args := m.Called()
	return orderList(args.Get(0)), args.Bool(1)
}

func (m *MockOrderCache) SetList(orders []*order.Order) {
	m.Called(orders)
}

func (m *MockOrderCache) GetByID(id string) (*order.Order, bool) {
	args := m.Called(id)
	return orderValue(args.Get(0)), args.Bool(1)
}

func (m *MockOrderCache) SetByID(id string, o *order.Order) {
	m.Called(id, o)
}

func (m *MockOrderCache) GetByStatus(status order.Status) ([]*order.Order, bool) {
	args := m.Called(status)
	return orderList(args.Get(0)), args.Bool(1)
}

func (m *MockOrderCache) SetByStatus(status order.Status, orders []*order.Order) {
	m.Called(status, orders)
}

func (m *MockOrderCache) InvalidateOrders() {
	m.Called()
}

func orderWith(
	t *testing.T, status order.Status, total float64, createdAt time.Time,
) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromFloat(total)
	require.NoError(t, err)
	item, err := order.NewItem("拿铁", 1, price)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "王小明", order.TypeDineIn, status,
		[]order.Item{item}, nil, createdAt, createdAt)
	require.NoError(t, err)
	return o
}
