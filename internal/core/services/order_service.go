package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	zoneRepo  portsrepo.DeliveryZoneRepositoryFacade
}

// NewOrderService creates the service driving the order timeline. Delivery
// orders are priced and tracked against zones read from zoneRepo.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, zoneRepo portsrepo.DeliveryZoneRepositoryFacade, opts ...Option) portssvc.OrderSvcFacade {
	return &orderService{
		BaseService: newBaseService(opts),
		orderRepo:   orderRepo,
		zoneRepo:    zoneRepo,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get order", slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest, actor domain.Actor) (*domain.Order, error) {
	if err := s.EnsureStall(ctx, req.StallID); err != nil {
		return nil, err
	}

	in := domain.NewOrderInput{
		StallID:       req.StallID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderType:     domain.OrderType(req.OrderType),
		Items:         make([]domain.OrderItem, len(req.Items)),
		Discount:      req.Discount,
		PaymentMode:   domain.PaymentMode(req.PaymentMode),
	}
	for i, it := range req.Items {
		in.Items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Notes:     it.Notes,
		}
	}
	if req.Delivery != nil {
		in.Delivery = &domain.DeliveryInfo{
			ZoneID:     req.Delivery.ZoneID,
			Address:    req.Delivery.Address,
			Locality:   req.Delivery.Locality,
			DistanceKm: req.Delivery.DistanceKm,
		}
	}

	now := s.Now()
	order, err := domain.NewOrder(uuid.NewString(), in, actor, now)
	if err != nil {
		return nil, err
	}

	if order.OrderType == domain.OrderDelivery {
		zone, err := s.zoneRepo.FindByID(ctx, order.Delivery.ZoneID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load delivery zone for order", slog.String("zone_id", order.Delivery.ZoneID))
			return nil, err
		}
		if loc := order.Delivery.Locality; loc != "" && !zone.CoversLocality(loc) {
			return nil, apperrors.NewValidationFailedError("zone " + zone.Name + " does not deliver to " + loc)
		}
		if err := order.ApplyDelivery(zone, now); err != nil {
			return nil, err
		}
	}

	order.Versioned = domain.Versioned{Version: 1}
	order.AuditFields = domain.NewAuditFields(actor.UserID, now)
	if err := s.orderRepo.Save(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("stall_id", order.StallID))
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.LogInfo(ctx, "Order placed",
		slog.String("order_id", order.OrderID),
		slog.String("type", string(order.OrderType)),
		slog.String("total", order.Total.StringFixed(domain.MoneyPlaces)))
	return order, nil
}

func (s *orderService) AssignRider(ctx context.Context, orderID string, req dto.AssignRiderRequest, actor domain.Actor) (*domain.Order, error) {
	return s.mutate(ctx, orderID, req.ExpectedVersion, actor, func(o *domain.Order) error {
		if o.Delivery != nil {
			zone, err := s.zoneRepo.FindByID(ctx, o.Delivery.ZoneID)
			if err != nil {
				return err
			}
			i := slices.IndexFunc(zone.DeliveryPersons, func(p domain.DeliveryPerson) bool { return p.PersonID == req.PersonID })
			if i < 0 {
				return apperrors.NewNotFoundError("delivery person " + req.PersonID + " not found in zone")
			}
			if !zone.DeliveryPersons[i].IsAvailable {
				return apperrors.NewValidationFailedError("delivery person " + req.PersonID + " is unavailable")
			}
		}
		return o.AssignRider(req.PersonID)
	})
}

func (s *orderService) AdvanceOrder(ctx context.Context, orderID string, req dto.AdvanceOrderRequest, actor domain.Actor) (*domain.Order, error) {
	now := s.Now()
	order, err := s.mutate(ctx, orderID, req.ExpectedVersion, actor, func(o *domain.Order) error {
		return o.AdvanceStatus(domain.OrderStatus(req.Status), actor, req.Note, now)
	})
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderDelivered && order.Delivery != nil && order.Delivery.DeliveryPersonID != "" {
		s.recordDelivery(ctx, order, req.Rating, actor, now)
	}
	return order, nil
}

// recordDelivery feeds a delivered order into the zone's rider counters. The
// order is already stored, so failures are logged only.
func (s *orderService) recordDelivery(ctx context.Context, order *domain.Order, rating *decimal.Decimal, actor domain.Actor, now time.Time) {
	outcome := domain.DeliveryOutcome{
		Successful:      true,
		DeliveryMinutes: minutesSinceDispatch(order, now),
		OrderAmount:     order.Total,
		Rating:          rating,
	}
	_, err := mutate[domain.DeliveryZone](ctx, s.zoneRepo, "delivery zone", order.Delivery.ZoneID, nil, actor, now,
		func(z *domain.DeliveryZone) error {
			return z.RecordDelivery(order.Delivery.DeliveryPersonID, outcome)
		})
	if err != nil {
		s.LogError(ctx, err, "Failed to record delivery on zone",
			slog.String("order_id", order.OrderID),
			slog.String("zone_id", order.Delivery.ZoneID))
	}
}

func minutesSinceDispatch(order *domain.Order, now time.Time) int {
	for i := len(order.Timeline) - 1; i >= 0; i-- {
		if order.Timeline[i].Status == domain.OrderOutForDelivery {
			return int(now.Sub(order.Timeline[i].At).Minutes())
		}
	}
	return int(now.Sub(order.PlacedAt).Minutes())
}

func (s *orderService) CancelOrder(ctx context.Context, orderID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Order, error) {
	now := s.Now()
	return s.mutate(ctx, orderID, req.ExpectedVersion, actor, func(o *domain.Order) error {
		return o.Cancel(actor, req.Reason, now)
	})
}

func (s *orderService) mutate(ctx context.Context, orderID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.Order) error) (*domain.Order, error) {
	order, err := mutate[domain.Order](ctx, s.orderRepo, "order", orderID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update order", slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}
