package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

var ErrBaseURLIsRequired = errors.New("order service base url is required")

// UnexpectedStatusError is returned when the order service answers with a
// non-2xx status other than 404.
type UnexpectedStatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("order service returned %d for %s %s", e.StatusCode, e.Method, e.Path)
}

// Client talks to the upstream order service over its JSON REST API.
// Transport failures on reads are retried once. Mutations are never
// retried, a lost response could mean the service already applied the
// change. The service's own error responses are not retried either,
// they map onto the error taxonomy directly:
//
//   - 404 becomes errs.ErrObjectNotFound
//   - any other non-2xx becomes *UnexpectedStatusError
//   - a transport failure that survives the retry is returned as is
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an order service client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("component", "orderservice")),
	}, nil
}

var _ ports.OrderServiceClient = (*Client)(nil)

// GetAllOrders retrieves every order, newest first.
func (c *Client) GetAllOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &dtos); err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// GetOrder retrieves a single order by its identifier.
func (c *Client) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders/"+id.String(), nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// GetOrdersByStatus retrieves the orders currently in the given status.
func (c *Client) GetOrdersByStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders/status/"+status.String(), nil, &dtos); err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// CreateOrder submits a new order. The service assigns the identifier,
// initial status and timestamps.
func (c *Client) CreateOrder(
	ctx context.Context,
	customerName string,
	orderType order.Type,
	items []order.Item,
	address *order.Address,
) (*order.Order, error) {
	body := toCreateOrderDTO(customerName, orderType, items, address)

	var dto orderDTO
	if err := c.do(ctx, http.MethodPost, "/orders", body, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// UpdateOrderStatus moves an order to the given status.
func (c *Client) UpdateOrderStatus(
	ctx context.Context, id kernel.UUID, status order.Status,
) (*order.Order, error) {
	path := fmt.Sprintf("/orders/%s/status?status=%s", id.String(), url.QueryEscape(status.String()))

	var dto orderDTO
	if err := c.do(ctx, http.MethodPut, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// MarkOrderReady marks a paid or preparing order as ready for pickup.
func (c *Client) MarkOrderReady(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodPut, "/orders/"+id.String()+"/ready", nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// CompleteOrder completes a ready order.
func (c *Client) CompleteOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodPut, "/orders/"+id.String()+"/complete", nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// CancelOrder cancels a created or paid order. The service keeps the order,
// it only moves to the cancelled status.
func (c *Client) CancelOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodDelete, "/orders/"+id.String(), nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// do issues the request and decodes a 2xx response body into out.
// A transport failure on a GET is retried once; mutations fail
// immediately so a create or transition is never submitted twice.
// HTTP error responses are final.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = encoded
	}

	response, err := c.send(ctx, method, path, payload)
	if err != nil && method == http.MethodGet {
		c.logger.WarnContext(ctx, "request failed, retrying",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		response, err = c.send(ctx, method, path, payload)
	}
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundError("order", path)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, response.Body)
		return &UnexpectedStatusError{Method: method, Path: path, StatusCode: response.StatusCode}
	}

	return json.NewDecoder(response.Body).Decode(out)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")

	return c.httpClient.Do(request)
}
