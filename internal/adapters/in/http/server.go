package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"coffeeshop/internal/adapters/out/orderservice"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// allStatusesFilter is the pseudo-status a status picker sends to ask for
// the unfiltered order list.
const allStatusesFilter = "ALL"

// Localized alerts per view. Validation failures carry the validation
// message itself instead; they never reach the upstream service.
const (
	msgLoadOrdersFailed    = "加载订单错误"
	msgLoadOrderFailed     = "加载订单详情错误"
	msgLoadDashboardFailed = "加载仪表板数据错误"
	msgCreateOrderFailed   = "创建订单失败，请重试。"
	msgUpdateOrderFailed   = "更新订单失败，请重试。"
	msgOrderNotFound       = "订单不存在"
)

// Server exposes the order desk API. It coordinates between HTTP handlers
// and application use cases.
type Server struct {
	submitOrderHandler       commands.SubmitOrderCommandHandler
	markOrderReadyHandler    commands.MarkOrderReadyCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getDashboardHandler      queries.GetDashboardQueryHandler
	estimateChargeHandler    queries.EstimateChargeQueryHandler

	catalog menu.Catalog
}

// NewServer creates the API server with the required command and query
// handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
	estimateChargeHandler queries.EstimateChargeQueryHandler,
	catalog menu.Catalog,
) *Server {
	return &Server{
		submitOrderHandler:       submitOrderHandler,
		markOrderReadyHandler:    markOrderReadyHandler,
		completeOrderHandler:     completeOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getDashboardHandler:      getDashboardHandler,
		estimateChargeHandler:    estimateChargeHandler,
		catalog:                  catalog,
	}
}

// RegisterRoutes mounts the API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/menu", s.GetMenu)
	e.GET("/dashboard", s.GetDashboard)

	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.GET("/orders/status/:status", s.GetOrdersByStatus)
	e.POST("/orders", s.CreateOrder)
	e.POST("/orders/quote", s.QuoteOrder)
	e.PUT("/orders/:id/status", s.UpdateOrderStatus)
	e.PUT("/orders/:id/ready", s.MarkOrderReady)
	e.PUT("/orders/:id/complete", s.CompleteOrder)
	e.DELETE("/orders/:id", s.CancelOrder)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /menu - the shop's product catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toMenuResponse(s.catalog))
}

// GetOrders handles GET /orders - retrieves every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err, msgLoadOrdersFailed)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders, time.Now()))
}

// GetOrder handles GET /orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, msgLoadOrderFailed)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found, time.Now()))
}

// GetOrdersByStatus handles GET /orders/status/:status. The ALL
// pseudo-status returns the full list unfiltered.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	raw := ctx.Param("status")

	var query queries.GetOrdersByStatusQuery
	if raw == allStatusesFilter {
		query = queries.NewGetOrdersForAllStatusesQuery()
	} else {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		query, err = queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, msgLoadOrdersFailed)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders, time.Now()))
}

// GetDashboard handles GET /dashboard - the aggregated shop statistics.
func (s *Server) GetDashboard(ctx echo.Context) error {
	stats, err := s.getDashboardHandler.Handle(
		ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return s.errorResponse(ctx, err, msgLoadDashboardFailed)
	}

	return ctx.JSON(http.StatusOK, toDashboardResponse(stats, time.Now()))
}

// CreateOrder handles POST /orders - submits a new order. The body is
// rebuilt as a draft so the submission gate matches the domain rules; an
// invalid draft is rejected here and no upstream request is made.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	draft, err := request.toDraft(s.catalog)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(draft)
	if err != nil {
		return badRequest(ctx, err)
	}

	created, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, msgCreateOrderFailed)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created, time.Now()))
}

// QuoteOrder handles POST /orders/quote - estimates the charge for a draft
// without submitting anything.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	orderType, err := order.ParseType(request.OrderType)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, line := range request.Items {
		unitPrice, priceErr := line.unitPrice(s.catalog)
		if priceErr != nil {
			return badRequest(ctx, priceErr)
		}
		item, itemErr := order.NewItem(line.ProductName, line.Quantity, unitPrice)
		if itemErr != nil {
			return badRequest(ctx, itemErr)
		}
		items = append(items, item)
	}

	query, err := queries.NewEstimateChargeQuery(orderType, items)
	if err != nil {
		return badRequest(ctx, err)
	}

	estimate, err := s.estimateChargeHandler.Handle(query)
	if err != nil {
		return badRequest(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQuoteResponse(estimate))
}

// UpdateOrderStatus handles PUT /orders/:id/status?status=X.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	status, err := order.ParseStatus(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, msgUpdateOrderFailed)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated, time.Now()))
}

// MarkOrderReady handles PUT /orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, msgUpdateOrderFailed)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated, time.Now()))
}

// CompleteOrder handles PUT /orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, msgUpdateOrderFailed)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated, time.Now()))
}

// CancelOrder handles DELETE /orders/:id. The order is not deleted, it
// moves to the cancelled status.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, msgUpdateOrderFailed)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated, time.Now()))
}

func (s *Server) orderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// errorResponse maps use case failures onto the API error taxonomy:
// not-found answers 404, upstream rejections answer 502, anything else is
// the view's localized alert with a 500.
func (s *Server) errorResponse(ctx echo.Context, err error, alert string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: msgOrderNotFound,
		})
	}

	var statusErr *orderservice.UnexpectedStatusError
	if errors.As(err, &statusErr) {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: alert,
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: alert,
	})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
