package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// OrderReaderSvc defines read operations for orders
type OrderReaderSvc interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Order, error)
}

// OrderWorkflowSvc drives orders through their status timeline.
type OrderWorkflowSvc interface {
	// PlaceOrder creates an order. Delivery orders are priced against their
	// zone at placement time.
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest, actor domain.Actor) (*domain.Order, error)
	AssignRider(ctx context.Context, orderID string, req dto.AssignRiderRequest, actor domain.Actor) (*domain.Order, error)
	// AdvanceOrder moves the order forward. Delivering a delivery order also
	// records the outcome on the zone's counters.
	AdvanceOrder(ctx context.Context, orderID string, req dto.AdvanceOrderRequest, actor domain.Actor) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Order, error)
}

// OrderSvcFacade combines all order service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWorkflowSvc
}
