package orderservice

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// Wire representation of the upstream order service. Timestamps are
// ISO-8601; monetary amounts are plain JSON numbers at two decimals.

type orderDTO struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	OrderType    string      `json:"orderType"`
	Status       string      `json:"status"`
	Items        []itemDTO   `json:"items"`
	TotalPrice   float64     `json:"totalPrice"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Address      *addressDTO `json:"address,omitempty"`
}

type itemDTO struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

type addressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// createOrderDTO is the submission body. Address fields are flattened and
// omitted for dine-in orders, matching the service's contract.
type createOrderDTO struct {
	CustomerName string    `json:"customerName"`
	OrderType    string    `json:"orderType"`
	Items        []itemDTO `json:"items"`
	Street       string    `json:"street,omitempty"`
	City         string    `json:"city,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	Country      string    `json:"country,omitempty"`
}

func toCreateOrderDTO(
	customerName string,
	orderType order.Type,
	items []order.Item,
	address *order.Address,
) createOrderDTO {
	dto := createOrderDTO{
		CustomerName: customerName,
		OrderType:    orderType.String(),
		Items:        make([]itemDTO, 0, len(items)),
	}
	for _, item := range items {
		dto.Items = append(dto.Items, itemDTO{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Float64(),
			TotalPrice:  item.TotalPrice().Float64(),
		})
	}
	if address != nil {
		dto.Street = address.Street()
		dto.City = address.City()
		dto.PostalCode = address.PostalCode()
		dto.Country = address.Country()
	}
	return dto
}

// toDomain reconstructs the aggregate, rederiving the total from items.
func (d orderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	orderType, err := order.ParseType(d.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(d.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(d.Items))
	for _, itemDTO := range d.Items {
		unitPrice, priceErr := kernel.NewMoneyFromFloat(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice", priceErr)
		}
		item, itemErr := order.NewItem(itemDTO.ProductName, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var address *order.Address
	if d.Address != nil {
		built, addrErr := order.NewAddress(
			d.Address.Street, d.Address.City, d.Address.PostalCode, d.Address.Country)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &built
	}

	return order.NewOrder(id, d.CustomerName, orderType, status, items, address,
		d.CreatedAt, d.UpdatedAt)
}

func toDomainList(dtos []orderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
