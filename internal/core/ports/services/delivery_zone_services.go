package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// DeliveryZoneReaderSvc defines read operations for delivery zones
type DeliveryZoneReaderSvc interface {
	GetZone(ctx context.Context, zoneID string) (*domain.DeliveryZone, error)
	ListZones(ctx context.Context, filter portsrepo.ListFilter) ([]domain.DeliveryZone, error)
}

// DeliveryZoneWriterSvc defines configuration changes to delivery zones
type DeliveryZoneWriterSvc interface {
	CreateZone(ctx context.Context, req dto.CreateDeliveryZoneRequest, actor domain.Actor) (*domain.DeliveryZone, error)
	UpdateZone(ctx context.Context, zoneID string, req dto.UpdateDeliveryZoneRequest, actor domain.Actor) (*domain.DeliveryZone, error)
	DeactivateZone(ctx context.Context, zoneID string, expectedVersion *int64, actor domain.Actor) error
}

// DeliveryPricingSvc prices deliveries against a zone's rules.
type DeliveryPricingSvc interface {
	// QuoteDelivery prices a prospective order. An order the zone cannot
	// serve is reported in the response rather than as an error.
	QuoteDelivery(ctx context.Context, zoneID string, req dto.DeliveryQuoteRequest) (*dto.DeliveryQuoteResponse, error)

	// PeakStatus reports whether the zone is currently inside a peak window.
	PeakStatus(ctx context.Context, zoneID string) (*dto.PeakStatusResponse, error)
}

// DeliveryFleetSvc manages the riders of a zone.
type DeliveryFleetSvc interface {
	AssignDeliveryPerson(ctx context.Context, zoneID string, req dto.AssignDeliveryPersonRequest, actor domain.Actor) (*domain.DeliveryZone, error)
	RemoveDeliveryPerson(ctx context.Context, zoneID, personID string, expectedVersion *int64, actor domain.Actor) (*domain.DeliveryZone, error)
	SetPersonAvailability(ctx context.Context, zoneID, personID string, req dto.PersonAvailabilityRequest, actor domain.Actor) (*domain.DeliveryZone, error)
	RecordDelivery(ctx context.Context, zoneID string, req dto.RecordDeliveryRequest, actor domain.Actor) (*domain.DeliveryZone, error)
}

// DeliveryZoneSvcFacade combines all delivery zone service interfaces
type DeliveryZoneSvcFacade interface {
	DeliveryZoneReaderSvc
	DeliveryZoneWriterSvc
	DeliveryPricingSvc
	DeliveryFleetSvc
}
