package jobs

import (
	"fmt"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ordersRefreshJob *OrdersRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	orderCache ports.OrderCache,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ordersRefreshJob: NewOrdersRefreshJob(getAllOrdersHandler, orderCache, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ordersRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start orders refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ordersRefreshJob.Stop()
}
