// Package http provides the inbound HTTP adapter exposing production order
// operations over a JSON API.
package http

import (
	"fabrication/internal/core/application/usecases/queries"
	"fabrication/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for creating a production order.
type CreateOrderRequest struct {
	OrderNumber string `json:"orderNumber"`
	CustomerID  int64  `json:"customerId"`
	TeamID      int64  `json:"teamId"`
}

// ItemRequest is one line item in a replace-items request.
type ItemRequest struct {
	ProductType string `json:"productType"`
	WidthMm     int    `json:"widthMm"`
	HeightMm    int    `json:"heightMm"`
	Quantity    int    `json:"quantity"`
}

// OrderResponse is the JSON representation of a production order.
type OrderResponse struct {
	ID          int64  `json:"id"`
	OrderUUID   string `json:"orderUUID"`
	OrderNumber string `json:"orderNumber"`
	CustomerID  int64  `json:"customerId"`
	TeamID      int64  `json:"teamId"`
	StatusID    int    `json:"statusId"`
}

// ItemResponse is the JSON representation of a persisted line item.
type ItemResponse struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	ProductType string `json:"productType"`
	WidthMm     int    `json:"widthMm"`
	HeightMm    int    `json:"heightMm"`
	Quantity    int    `json:"quantity"`
}

// SummaryItemResponse carries per-item material figures in a summary.
type SummaryItemResponse struct {
	ItemID            int64   `json:"itemId"`
	ProductType       string  `json:"productType"`
	WidthMm           int     `json:"widthMm"`
	HeightMm          int     `json:"heightMm"`
	Quantity          int     `json:"quantity"`
	ProfileMeters     float64 `json:"profileMeters"`
	GlassSquareMeters float64 `json:"glassSquareMeters"`
	HardwareUnits     int     `json:"hardwareUnits"`
}

// RequirementsResponse carries the aggregated material totals of an order.
type RequirementsResponse struct {
	TotalProfileMeters     float64 `json:"totalProfileMeters"`
	TotalGlassSquareMeters float64 `json:"totalGlassSquareMeters"`
	TotalHardwareUnits     int     `json:"totalHardwareUnits"`
}

// SummaryResponse is the JSON representation of a material requirements summary.
type SummaryResponse struct {
	OrderID      int64                 `json:"orderId"`
	Items        []SummaryItemResponse `json:"items"`
	Requirements RequirementsResponse  `json:"requirements"`
}

func orderFromDomain(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:          aggregate.ID(),
		OrderUUID:   aggregate.OrderUUID().String(),
		OrderNumber: aggregate.OrderNumber(),
		CustomerID:  aggregate.CustomerID(),
		TeamID:      aggregate.TeamID(),
		StatusID:    aggregate.Status().Code(),
	}
}

func orderFromRow(row queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:          row.ID,
		OrderUUID:   row.OrderUUID.String(),
		OrderNumber: row.OrderNumber,
		CustomerID:  row.CustomerID,
		TeamID:      row.TeamID,
		StatusID:    row.Status,
	}
}

func itemFromDomain(item *order.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID(),
		OrderID:     item.OrderID(),
		ProductType: item.ProductType(),
		WidthMm:     item.WidthMm(),
		HeightMm:    item.HeightMm(),
		Quantity:    item.Quantity(),
	}
}
