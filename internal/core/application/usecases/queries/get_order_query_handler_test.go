package queries_test

import (
	"testing"
	"time"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle_CacheHit(t *testing.T) {
	ctx := t.Context()
	cached := orderWith(t, order.StatusReady, 4.50, time.Now())

	cache := new(MockOrderCache)
	cache.On("GetByID", cached.ID().String()).Return(cached, true).Once()
	client := new(MockOrderServiceClient)

	query, err := queries.NewGetOrderQuery(cached.ID())
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(client, cache)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, got.IsEqual(cached))
	client.AssertNotCalled(t, "GetOrder")
}

func TestGetOrderQueryHandler_Handle_CacheMiss(t *testing.T) {
	ctx := t.Context()
	fetched := orderWith(t, order.StatusPaid, 5.00, time.Now())

	cache := new(MockOrderCache)
	cache.On("GetByID", fetched.ID().String()).Return(nil, false).Once()
	cache.On("SetByID", fetched.ID().String(), fetched).Once()
	client := new(MockOrderServiceClient)
	client.On("GetOrder", ctx, fetched.ID()).Return(fetched, nil).Once()

	query, err := queries.NewGetOrderQuery(fetched.ID())
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(client, cache)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, got.IsEqual(fetched))
	cache.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cache := new(MockOrderCache)
	cache.On("GetByID", id.String()).Return(nil, false).Once()
	client := new(MockOrderServiceClient)
	client.On("GetOrder", ctx, id).
		Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(client, cache)
	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cache.AssertNotCalled(t, "SetByID")
}
