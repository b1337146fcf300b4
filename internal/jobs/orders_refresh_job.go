package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/ports"
)

// OrdersRefreshJob keeps the order list cache warm. Every thirty seconds,
// the freshness window of cached reads, it drops and refetches the full
// list so dashboards and pickers keep answering from a warm cache instead
// of paying the upstream round trip.
type OrdersRefreshJob struct {
	handler    queries.GetAllOrdersQueryHandler
	orderCache ports.OrderCache
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOrdersRefreshJob creates the refresh job over the list query handler.
func NewOrdersRefreshJob(
	handler queries.GetAllOrdersQueryHandler,
	orderCache ports.OrderCache,
	logger *slog.Logger,
) *OrdersRefreshJob {
	return &OrdersRefreshJob{
		handler:    handler,
		orderCache: orderCache,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "orders_refresh_job"),
	}
}

// Start begins the refresh job to run every thirty seconds.
func (j *OrdersRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		j.orderCache.InvalidateOrders()
		if _, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery()); err != nil {
			// The next read pays the round trip itself; nothing else to do here.
			j.logger.ErrorContext(ctx, "Orders refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orders refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the refresh job.
func (j *OrdersRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orders refresh job stopped")
}
