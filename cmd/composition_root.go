package cmd

import (
	"log/slog"
	"os"

	"coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/out/cache"
	"coffeeshop/internal/adapters/out/orderservice"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/jobs"
)

// CompositionRoot wires the adapters into the application use cases.
type CompositionRoot struct {
	orderServiceClient *orderservice.Client
	orderCache         *cache.OrderCache
	logger             *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client, err := orderservice.NewClient(
		config.OrderServiceURL, config.OrderServiceTimeout, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orderServiceClient: client,
		orderCache:         cache.NewOrderCache(config.CacheTTL),
		logger:             logger,
	}, nil
}

// Logger returns the process logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// CreateServer builds the API server over the full handler set.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		commands.NewSubmitOrderCommandHandler(c.orderServiceClient, c.orderCache),
		commands.NewMarkOrderReadyCommandHandler(c.orderServiceClient, c.orderCache),
		commands.NewCompleteOrderCommandHandler(c.orderServiceClient, c.orderCache),
		commands.NewCancelOrderCommandHandler(c.orderServiceClient, c.orderCache),
		commands.NewChangeOrderStatusCommandHandler(c.orderServiceClient, c.orderCache),
		c.CreateGetAllOrdersQueryHandler(),
		queries.NewGetOrderQueryHandler(c.orderServiceClient, c.orderCache),
		queries.NewGetOrdersByStatusQueryHandler(c.orderServiceClient, c.orderCache),
		queries.NewGetDashboardQueryHandler(c.orderServiceClient, c.orderCache),
		queries.NewEstimateChargeQueryHandler(),
		menu.Default(),
	)
}

// CreateGetAllOrdersQueryHandler builds the list query handler, shared by
// the API server and the refresh job.
func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderServiceClient, c.orderCache)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAllOrdersQueryHandler(), c.orderCache, c.logger)
}
