package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/google/uuid"
)

type deliveryZoneService struct {
	BaseService
	zoneRepo portsrepo.DeliveryZoneRepositoryFacade
}

// NewDeliveryZoneService creates the service pricing deliveries and managing zones.
func NewDeliveryZoneService(repo portsrepo.DeliveryZoneRepositoryFacade, opts ...Option) portssvc.DeliveryZoneSvcFacade {
	return &deliveryZoneService{
		BaseService: newBaseService(opts),
		zoneRepo:    repo,
	}
}

var _ portssvc.DeliveryZoneSvcFacade = (*deliveryZoneService)(nil)

func (s *deliveryZoneService) GetZone(ctx context.Context, zoneID string) (*domain.DeliveryZone, error) {
	zone, err := s.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get delivery zone", slog.String("zone_id", zoneID))
		}
		return nil, err
	}
	return zone, nil
}

func (s *deliveryZoneService) ListZones(ctx context.Context, filter portsrepo.ListFilter) ([]domain.DeliveryZone, error) {
	zones, err := s.zoneRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list delivery zones", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list delivery zones: %w", err)
	}
	return zones, nil
}

func (s *deliveryZoneService) CreateZone(ctx context.Context, req dto.CreateDeliveryZoneRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := s.EnsureStall(ctx, req.StallID); err != nil {
		return nil, err
	}

	zone := domain.DeliveryZone{
		ZoneID:      uuid.NewString(),
		StallID:     req.StallID,
		IsActive:    true,
		Versioned:   domain.Versioned{Version: 1},
		AuditFields: domain.NewAuditFields(actor.UserID, s.Now()),
	}
	req.ApplyTo(&zone)
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		s.LogError(ctx, err, "Failed to save delivery zone", slog.String("stall_id", req.StallID))
		return nil, fmt.Errorf("failed to create delivery zone: %w", err)
	}
	s.LogInfo(ctx, "Delivery zone created", slog.String("zone_id", zone.ZoneID), slog.String("stall_id", zone.StallID))
	return &zone, nil
}

func (s *deliveryZoneService) UpdateZone(ctx context.Context, zoneID string, req dto.UpdateDeliveryZoneRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	return s.mutate(ctx, zoneID, req.ExpectedVersion, actor, func(z *domain.DeliveryZone) error {
		req.ApplyTo(z)
		return z.Validate()
	})
}

func (s *deliveryZoneService) DeactivateZone(ctx context.Context, zoneID string, expectedVersion *int64, actor domain.Actor) error {
	_, err := s.mutate(ctx, zoneID, expectedVersion, actor, func(z *domain.DeliveryZone) error {
		z.IsActive = false
		return nil
	})
	return err
}

func (s *deliveryZoneService) QuoteDelivery(ctx context.Context, zoneID string, req dto.DeliveryQuoteRequest) (*dto.DeliveryQuoteResponse, error) {
	zone, err := s.GetZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	resp := &dto.DeliveryQuoteResponse{
		ZoneID:          zone.ZoneID,
		IsPeakHour:      zone.IsPeakHour(now),
		EstimatedWindow: zone.EstimateDeliveryTime(now),
	}

	if req.Locality != "" && !zone.CoversLocality(req.Locality) {
		resp.Reason = "locality " + req.Locality + " is outside the zone"
		return resp, nil
	}
	if err := zone.ValidateOrder(req.OrderAmount, req.DistanceKm); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		resp.Reason = err.Error()
		return resp, nil
	}

	charge, err := zone.CalculateDeliveryCharge(req.OrderAmount, req.DistanceKm, now)
	if err != nil {
		return nil, err
	}
	free := zone.DeliveryCharge.FreeDeliveryAbove
	resp.Serviceable = true
	resp.DeliveryCharge = charge
	resp.FreeDelivery = free.IsPositive() && req.OrderAmount.GreaterThanOrEqual(free)
	return resp, nil
}

func (s *deliveryZoneService) PeakStatus(ctx context.Context, zoneID string) (*dto.PeakStatusResponse, error) {
	zone, err := s.GetZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	return &dto.PeakStatusResponse{
		ZoneID:          zone.ZoneID,
		IsPeakHour:      zone.IsPeakHour(now),
		EstimatedWindow: zone.EstimateDeliveryTime(now),
	}, nil
}

func (s *deliveryZoneService) AssignDeliveryPerson(ctx context.Context, zoneID string, req dto.AssignDeliveryPersonRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	now := s.Now()
	return s.mutate(ctx, zoneID, req.ExpectedVersion, actor, func(z *domain.DeliveryZone) error {
		return z.AssignDeliveryPerson(domain.DeliveryPerson{PersonID: req.PersonID, Name: req.Name, Phone: req.Phone}, now)
	})
}

func (s *deliveryZoneService) RemoveDeliveryPerson(ctx context.Context, zoneID, personID string, expectedVersion *int64, actor domain.Actor) (*domain.DeliveryZone, error) {
	return s.mutate(ctx, zoneID, expectedVersion, actor, func(z *domain.DeliveryZone) error {
		return z.RemoveDeliveryPerson(personID)
	})
}

func (s *deliveryZoneService) SetPersonAvailability(ctx context.Context, zoneID, personID string, req dto.PersonAvailabilityRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	return s.mutate(ctx, zoneID, req.ExpectedVersion, actor, func(z *domain.DeliveryZone) error {
		return z.SetPersonAvailability(personID, req.Available)
	})
}

func (s *deliveryZoneService) RecordDelivery(ctx context.Context, zoneID string, req dto.RecordDeliveryRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	outcome := domain.DeliveryOutcome{
		Successful:      req.Successful,
		DeliveryMinutes: req.DeliveryMinutes,
		OrderAmount:     req.OrderAmount,
		Rating:          req.Rating,
	}
	return s.mutate(ctx, zoneID, req.ExpectedVersion, actor, func(z *domain.DeliveryZone) error {
		return z.RecordDelivery(req.PersonID, outcome)
	})
}

func (s *deliveryZoneService) mutate(ctx context.Context, zoneID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.DeliveryZone) error) (*domain.DeliveryZone, error) {
	zone, err := mutate[domain.DeliveryZone](ctx, s.zoneRepo, "delivery zone", zoneID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update delivery zone", slog.String("zone_id", zoneID))
		return nil, err
	}
	return zone, nil
}
