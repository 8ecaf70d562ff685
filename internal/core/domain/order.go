package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

// IsValid reports whether the order type is known.
func (t OrderType) IsValid() bool {
	return t == OrderDineIn || t == OrderTakeaway || t == OrderDelivery
}

type OrderStatus string

const (
	OrderPlaced         OrderStatus = "placed"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderReady          OrderStatus = "ready"
	OrderOutForDelivery OrderStatus = "out-for-delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// orderFlow lists the forward moves allowed from each status.
var orderFlow = map[OrderStatus][]OrderStatus{
	OrderPlaced:         {OrderConfirmed},
	OrderConfirmed:      {OrderPreparing},
	OrderPreparing:      {OrderReady},
	OrderReady:          {OrderOutForDelivery, OrderDelivered},
	OrderOutForDelivery: {OrderDelivered},
}

// CanCancel reports whether the kitchen has not yet finished the order.
func (s OrderStatus) CanCancel() bool {
	return s == OrderPlaced || s == OrderConfirmed || s == OrderPreparing
}

type OrderItem struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Notes     string          `json:"notes,omitempty"`
}

// LineTotal is quantity times unit price.
func (it OrderItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// DeliveryInfo is present on delivery orders.
type DeliveryInfo struct {
	ZoneID           string          `json:"zoneID"`
	Address          string          `json:"address"`
	Locality         string          `json:"locality,omitempty"`
	DistanceKm       decimal.Decimal `json:"distanceKm"`
	DeliveryPersonID string          `json:"deliveryPersonID,omitempty"`
	EstimatedWindow  DeliveryWindow  `json:"estimatedWindow"`
}

// StatusEvent is one entry in the order timeline.
type StatusEvent struct {
	Status OrderStatus `json:"status"`
	At     time.Time   `json:"at"`
	By     Actor       `json:"by"`
	Note   string      `json:"note,omitempty"`
}

// Order is a customer order placed at a stall.
type Order struct {
	OrderID            string          `json:"orderID"`
	StallID            string          `json:"stallID"`
	CustomerName       string          `json:"customerName"`
	CustomerPhone      string          `json:"customerPhone,omitempty"`
	OrderType          OrderType       `json:"orderType"`
	Items              []OrderItem     `json:"items"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Discount           decimal.Decimal `json:"discount"`
	DeliveryCharge     decimal.Decimal `json:"deliveryCharge"`
	Total              decimal.Decimal `json:"total"`
	PaymentMode        PaymentMode     `json:"paymentMode"`
	Delivery           *DeliveryInfo   `json:"delivery,omitempty"`
	Status             OrderStatus     `json:"status"`
	Timeline           []StatusEvent   `json:"timeline"`
	PlacedAt           time.Time       `json:"placedAt"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	IsActive           bool            `json:"isActive"`
	Versioned
	AuditFields
}

// NewOrderInput carries the fields needed to place an order.
type NewOrderInput struct {
	StallID       string
	CustomerName  string
	CustomerPhone string
	OrderType     OrderType
	Items         []OrderItem
	Discount      decimal.Decimal
	PaymentMode   PaymentMode
	Delivery      *DeliveryInfo
}

// NewOrder validates the input and builds a placed order. Delivery orders
// are priced separately through ApplyDelivery.
func NewOrder(id string, in NewOrderInput, actor Actor, now time.Time) (*Order, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.StallID) == "" {
		return nil, fmt.Errorf("%w: stall id is required", apperrors.ErrValidation)
	}
	if !in.OrderType.IsValid() {
		return nil, fmt.Errorf("%w: unknown order type %q", apperrors.ErrValidation, in.OrderType)
	}
	if in.PaymentMode != "" && !in.PaymentMode.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, in.PaymentMode)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: an order needs at least one item", apperrors.ErrValidation)
	}
	subtotal := decimal.Zero
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() || strings.TrimSpace(it.ProductID) == "" {
			return nil, fmt.Errorf("%w: each item needs a product, a positive quantity and a non-negative price", apperrors.ErrValidation)
		}
		subtotal = subtotal.Add(it.LineTotal())
	}
	if in.Discount.IsNegative() || in.Discount.GreaterThan(subtotal) {
		return nil, fmt.Errorf("%w: discount must be between 0 and the subtotal", apperrors.ErrValidation)
	}
	var delivery *DeliveryInfo
	if in.OrderType == OrderDelivery {
		if in.Delivery == nil || strings.TrimSpace(in.Delivery.ZoneID) == "" || strings.TrimSpace(in.Delivery.Address) == "" {
			return nil, fmt.Errorf("%w: delivery orders need a zone and an address", apperrors.ErrValidation)
		}
		if in.Delivery.DistanceKm.IsNegative() {
			return nil, fmt.Errorf("%w: distance cannot be negative", apperrors.ErrValidation)
		}
		d := *in.Delivery
		delivery = &d
	}

	o := &Order{
		OrderID:       id,
		StallID:       in.StallID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		OrderType:     in.OrderType,
		Items:         slices.Clone(in.Items),
		Subtotal:      RoundMoney(subtotal),
		Discount:      in.Discount,
		PaymentMode:   in.PaymentMode,
		Delivery:      delivery,
		Status:        OrderPlaced,
		Timeline:      []StatusEvent{{Status: OrderPlaced, At: now, By: actor}},
		PlacedAt:      now,
		IsActive:      true,
	}
	o.recalculateTotal()
	return o, nil
}

func (o *Order) recalculateTotal() {
	o.Total = RoundMoney(o.Subtotal.Sub(o.Discount).Add(o.DeliveryCharge))
}

// ApplyDelivery checks the zone rules and prices the delivery at now.
func (o *Order) ApplyDelivery(zone *DeliveryZone, now time.Time) error {
	if o.OrderType != OrderDelivery || o.Delivery == nil {
		return fmt.Errorf("%w: order %s is not a delivery order", apperrors.ErrValidation, o.OrderID)
	}
	if zone.ZoneID != o.Delivery.ZoneID || zone.StallID != o.StallID {
		return fmt.Errorf("%w: zone %s does not serve this order", apperrors.ErrValidation, zone.ZoneID)
	}
	payable := o.Subtotal.Sub(o.Discount)
	if err := zone.ValidateOrder(payable, o.Delivery.DistanceKm); err != nil {
		return err
	}
	charge, err := zone.CalculateDeliveryCharge(payable, o.Delivery.DistanceKm, now)
	if err != nil {
		return err
	}
	d := *o.Delivery
	d.EstimatedWindow = zone.EstimateDeliveryTime(now)
	o.Delivery = &d
	o.DeliveryCharge = charge
	o.recalculateTotal()
	return nil
}

// AssignRider sets the delivery person before the order leaves the stall.
func (o *Order) AssignRider(personID string) error {
	if o.OrderType != OrderDelivery || o.Delivery == nil {
		return fmt.Errorf("%w: order %s is not a delivery order", apperrors.ErrValidation, o.OrderID)
	}
	if strings.TrimSpace(personID) == "" {
		return fmt.Errorf("%w: delivery person id is required", apperrors.ErrValidation)
	}
	if !o.Status.CanCancel() && o.Status != OrderReady {
		return apperrors.NewInvalidTransitionError("order", string(o.Status), "assign a rider to")
	}
	d := *o.Delivery
	d.DeliveryPersonID = personID
	o.Delivery = &d
	return nil
}

// AdvanceStatus moves the order forward and appends to its timeline.
// Delivery orders must leave through out-for-delivery with a rider assigned;
// other orders go straight from ready to delivered.
func (o *Order) AdvanceStatus(to OrderStatus, actor Actor, note string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !slices.Contains(orderFlow[o.Status], to) {
		return apperrors.NewInvalidTransitionError("order", string(o.Status), "move to "+string(to)+" an")
	}
	if o.Status == OrderReady {
		isDelivery := o.OrderType == OrderDelivery
		if isDelivery != (to == OrderOutForDelivery) {
			return apperrors.NewInvalidTransitionError("order", string(o.Status), "move to "+string(to)+" a "+string(o.OrderType))
		}
		if isDelivery && o.Delivery.DeliveryPersonID == "" {
			return fmt.Errorf("%w: assign a delivery person before dispatch", apperrors.ErrValidation)
		}
	}
	o.Status = to
	o.Timeline = append(slices.Clone(o.Timeline), StatusEvent{Status: to, At: now, By: actor, Note: note})
	return nil
}

// Cancel stops an order the kitchen has not finished.
func (o *Order) Cancel(actor Actor, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !o.Status.CanCancel() {
		return apperrors.NewInvalidTransitionError("order", string(o.Status), "cancel")
	}
	if err := requireReason(reason, "cancellation reason"); err != nil {
		return err
	}
	o.Status = OrderCancelled
	o.CancellationReason = reason
	o.Timeline = append(slices.Clone(o.Timeline), StatusEvent{Status: OrderCancelled, At: now, By: actor, Note: reason})
	return nil
}
