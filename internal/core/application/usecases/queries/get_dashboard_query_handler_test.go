package queries_test

import (
	"testing"
	"time"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	orders := []*order.Order{
		orderWith(t, order.StatusCreated, 4.00, base),
		orderWith(t, order.StatusPaid, 5.00, base.Add(1*time.Minute)),
		orderWith(t, order.StatusPreparing, 4.50, base.Add(2*time.Minute)),
		orderWith(t, order.StatusCompleted, 6.00, base.Add(3*time.Minute)),
		orderWith(t, order.StatusCompleted, 3.50, base.Add(4*time.Minute)),
		orderWith(t, order.StatusCancelled, 4.00, base.Add(5*time.Minute)),
	}

	cache := new(MockOrderCache)
	cache.On("GetList").Return(orders, true).Once()

	h := queries.NewGetDashboardQueryHandler(new(MockOrderServiceClient), cache)
	stats, err := h.Handle(ctx, queries.NewGetDashboardQuery())

	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalOrders)
	assert.Equal(t, "27.00", stats.TotalRevenue.String())
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.Equal(t, 3, stats.PendingOrders)
}

func TestGetDashboardQueryHandler_Handle_DistributionIncludesZeroCounts(t *testing.T) {
	ctx := t.Context()
	orders := []*order.Order{orderWith(t, order.StatusPaid, 5.00, time.Now())}

	cache := new(MockOrderCache)
	cache.On("GetList").Return(orders, true).Once()

	h := queries.NewGetDashboardQueryHandler(new(MockOrderServiceClient), cache)
	stats, err := h.Handle(ctx, queries.NewGetDashboardQuery())

	require.NoError(t, err)
	require.Len(t, stats.StatusDistribution, len(order.AllStatuses()))
	assert.Equal(t, 1, stats.StatusDistribution[order.StatusPaid])
	assert.Equal(t, 0, stats.StatusDistribution[order.StatusReady])
	assert.Equal(t, 0, stats.StatusDistribution[order.StatusCancelled])
}

func TestGetDashboardQueryHandler_Handle_RecentOrders(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	orders := make([]*order.Order, 0, 7)
	for i := range 7 {
		orders = append(orders, orderWith(t, order.StatusCreated, 4.00, base.Add(time.Duration(i)*time.Minute)))
	}

	cache := new(MockOrderCache)
	cache.On("GetList").Return(orders, true).Once()

	h := queries.NewGetDashboardQueryHandler(new(MockOrderServiceClient), cache)
	stats, err := h.Handle(ctx, queries.NewGetDashboardQuery())

	require.NoError(t, err)
	require.Len(t, stats.RecentOrders, 5)
	assert.True(t, stats.RecentOrders[0].IsEqual(orders[6]))
	assert.True(t, stats.RecentOrders[4].IsEqual(orders[2]))
}

func TestGetDashboardQueryHandler_Handle_EmptyCollection(t *testing.T) {
	ctx := t.Context()

	cache := new(MockOrderCache)
	cache.On("GetList").Return(nil, false).Once()
	cache.On("SetList", ([]*order.Order)(nil)).Once()
	client := new(MockOrderServiceClient)
	client.On("GetAllOrders", ctx).Return(nil, nil).Once()

	h := queries.NewGetDashboardQueryHandler(client, cache)
	stats, err := h.Handle(ctx, queries.NewGetDashboardQuery())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, "0.00", stats.TotalRevenue.String())
	assert.Empty(t, stats.RecentOrders)
	assert.Equal(t, 0, stats.StatusDistribution[order.StatusCreated])
}
