package http

import (
	"time"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/display"
)

// ErrorResponse is the API error body. Message carries the localized alert
// the desk shows for the failed view.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the submission body. Address fields are flat and
// only meaningful for delivery orders.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	OrderType    string             `json:"orderType"`
	Items        []OrderItemRequest `json:"items"`
	Street       string             `json:"street,omitempty"`
	City         string             `json:"city,omitempty"`
	PostalCode   string             `json:"postalCode,omitempty"`
	Country      string             `json:"country,omitempty"`
}

// OrderItemRequest is one product line of a submission or quote request.
// UnitPrice may be omitted for a product on the menu; the catalog price is
// used then.
type OrderItemRequest struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// unitPrice resolves the line's unit price, falling back to the catalog for
// lines composed straight from the menu.
func (r OrderItemRequest) unitPrice(catalog menu.Catalog) (kernel.Money, error) {
	if r.UnitPrice == 0 {
		entry, err := catalog.Find(r.ProductName)
		if err != nil {
			return kernel.Money{}, err
		}
		return entry.Price(), nil
	}
	return kernel.NewMoneyFromFloat(r.UnitPrice)
}

// QuoteRequest asks for a charge estimate before submitting an order.
type QuoteRequest struct {
	OrderType string             `json:"orderType"`
	Items     []OrderItemRequest `json:"items"`
}

// toDraft rebuilds the request as an order draft so submission runs through
// the same validation gate the domain defines.
func (r CreateOrderRequest) toDraft(catalog menu.Catalog) (*order.Draft, error) {
	orderType, err := order.ParseType(r.OrderType)
	if err != nil {
		return nil, err
	}

	draft := order.NewDraft()
	draft.SetCustomerName(r.CustomerName)
	draft.SetOrderType(orderType)
	draft.SetAddress(r.Street, r.City, r.PostalCode, r.Country)

	for _, item := range r.Items {
		unitPrice, priceErr := item.unitPrice(catalog)
		if priceErr != nil {
			return nil, priceErr
		}
		draft.AddLine(order.DraftLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	return draft, nil
}

// OrderResponse is the API view of an order, wire fields plus the display
// fields the desk renders directly.
type OrderResponse struct {
	ID               string              `json:"id"`
	CustomerName     string              `json:"customerName"`
	OrderType        string              `json:"orderType"`
	OrderTypeLabel   string              `json:"orderTypeLabel"`
	Status           string              `json:"status"`
	StatusLabel      string              `json:"statusLabel"`
	StatusColor      string              `json:"statusColor"`
	Items            []OrderItemResponse `json:"items"`
	TotalPrice       float64             `json:"totalPrice"`
	TotalPriceText   string              `json:"totalPriceText"`
	Address          *AddressResponse    `json:"address,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	CreatedAtText    string              `json:"createdAtText"`
	CreatedAgoText   string              `json:"createdAgoText"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	AvailableActions []string            `json:"availableActions"`
}

// OrderItemResponse is one product line of an order response.
type OrderItemResponse struct {
	ProductName    string  `json:"productName"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	TotalPrice     float64 `json:"totalPrice"`
	TotalPriceText string  `json:"totalPriceText"`
}

// AddressResponse is the delivery destination of an order response.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func toOrderResponse(o *order.Order, now time.Time) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductName:    item.ProductName(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice().Float64(),
			TotalPrice:     item.TotalPrice().Float64(),
			TotalPriceText: display.Currency(item.TotalPrice()),
		})
	}

	actions := make([]string, 0, 2)
	for _, action := range o.AvailableActions() {
		actions = append(actions, string(action))
	}

	response := OrderResponse{
		ID:               o.ID().String(),
		CustomerName:     o.CustomerName(),
		OrderType:        o.OrderType().String(),
		OrderTypeLabel:   o.OrderType().Label(),
		Status:           o.Status().String(),
		StatusLabel:      o.Status().Label(),
		StatusColor:      o.Status().Color(),
		Items:            items,
		TotalPrice:       o.TotalPrice().Float64(),
		TotalPriceText:   display.Currency(o.TotalPrice()),
		CreatedAt:        o.CreatedAt(),
		CreatedAtText:    display.Date(o.CreatedAt()),
		CreatedAgoText:   display.RelativeTime(o.CreatedAt(), now),
		UpdatedAt:        o.UpdatedAt(),
		AvailableActions: actions,
	}

	if address := o.Address(); address != nil {
		response.Address = &AddressResponse{
			Street:     address.Street(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		}
	}

	return response
}

func toOrderResponses(orders []*order.Order, now time.Time) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o, now))
	}
	return responses
}

// StatusCountResponse is one slice of the dashboard distribution.
type StatusCountResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

// DashboardResponse carries the aggregated shop statistics.
type DashboardResponse struct {
	TotalOrders        int                   `json:"totalOrders"`
	TotalRevenue       float64               `json:"totalRevenue"`
	TotalRevenueText   string                `json:"totalRevenueText"`
	CompletedOrders    int                   `json:"completedOrders"`
	PendingOrders      int                   `json:"pendingOrders"`
	StatusDistribution []StatusCountResponse `json:"statusDistribution"`
	RecentOrders       []OrderResponse       `json:"recentOrders"`
}

func toDashboardResponse(stats queries.GetDashboardQueryResponse, now time.Time) DashboardResponse {
	distribution := make([]StatusCountResponse, 0, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		distribution = append(distribution, StatusCountResponse{
			Status: status.String(),
			Label:  status.Label(),
			Color:  status.Color(),
			Count:  stats.StatusDistribution[status],
		})
	}

	return DashboardResponse{
		TotalOrders:        stats.TotalOrders,
		TotalRevenue:       stats.TotalRevenue.Float64(),
		TotalRevenueText:   display.Currency(stats.TotalRevenue),
		CompletedOrders:    stats.CompletedOrders,
		PendingOrders:      stats.PendingOrders,
		StatusDistribution: distribution,
		RecentOrders:       toOrderResponses(stats.RecentOrders, now),
	}
}

// MenuEntryResponse is one product of the menu.
type MenuEntryResponse struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	PriceText string  `json:"priceText"`
}

func toMenuResponse(catalog menu.Catalog) []MenuEntryResponse {
	entries := make([]MenuEntryResponse, 0, len(catalog.Entries()))
	for _, entry := range catalog.Entries() {
		entries = append(entries, MenuEntryResponse{
			Name:      entry.Name(),
			Price:     entry.Price().Float64(),
			PriceText: display.Currency(entry.Price()),
		})
	}
	return entries
}

// QuoteResponse carries the estimated charge breakdown for a draft.
type QuoteResponse struct {
	ItemsTotal     float64 `json:"itemsTotal"`
	ItemsTotalText string  `json:"itemsTotalText"`
	Fees           float64 `json:"fees"`
	FeesText       string  `json:"feesText"`
	Total          float64 `json:"total"`
	TotalText      string  `json:"totalText"`
}

func toQuoteResponse(estimate queries.EstimateChargeQueryResponse) QuoteResponse {
	return QuoteResponse{
		ItemsTotal:     estimate.ItemsTotal.Float64(),
		ItemsTotalText: display.Currency(estimate.ItemsTotal),
		Fees:           estimate.Fees.Float64(),
		FeesText:       display.Currency(estimate.Fees),
		Total:          estimate.Total.Float64(),
		TotalText:      display.Currency(estimate.Total),
	}
}
