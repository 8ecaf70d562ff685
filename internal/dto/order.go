package dto

import (
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"gte=0"`
	Notes     string          `json:"notes"`
}

// OrderDeliveryRequest carries the delivery part of a delivery order.
type OrderDeliveryRequest struct {
	ZoneID     string          `json:"zoneID" binding:"required"`
	Address    string          `json:"address" binding:"required"`
	Locality   string          `json:"locality"`
	DistanceKm decimal.Decimal `json:"distanceKm" binding:"gte=0"`
}

// PlaceOrderRequest defines the data needed to place an order.
type PlaceOrderRequest struct {
	StallID       string                `json:"stallID" binding:"required"`
	CustomerName  string                `json:"customerName" binding:"required"`
	CustomerPhone string                `json:"customerPhone"`
	OrderType     string                `json:"orderType" binding:"required,oneof=dine-in takeaway delivery"`
	Items         []OrderItemRequest    `json:"items" binding:"required,min=1,dive"`
	Discount      decimal.Decimal       `json:"discount" binding:"gte=0"`
	PaymentMode   string                `json:"paymentMode" binding:"omitempty,oneof=cash bank-transfer upi cheque card"`
	Delivery      *OrderDeliveryRequest `json:"delivery" binding:"required_if=OrderType delivery"`
}

// AdvanceOrderRequest moves an order to its next status.
type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed preparing ready out-for-delivery delivered"`
	Note   string `json:"note" binding:"max=300"`
	// Rating is the optional customer rating of the rider, used when a
	// delivery order is marked delivered.
	Rating *decimal.Decimal `json:"rating" binding:"omitempty,gte=0,lte=5"`
	VersionGuard
}

// AssignRiderRequest sets the rider of a delivery order.
type AssignRiderRequest struct {
	PersonID string `json:"personID" binding:"required"`
	VersionGuard
}
