package dto

import (
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeakHourRequest describes one peak window.
type PeakHourRequest struct {
	DayOfWeek         string `json:"dayOfWeek" binding:"required,oneof=all sunday monday tuesday wednesday thursday friday saturday"`
	StartTime         string `json:"startTime" binding:"required,hhmm"`
	EndTime           string `json:"endTime" binding:"required,hhmm"`
	ExtraDelayMinutes int    `json:"extraDelayMinutes" binding:"gte=0"`
}

// DeliveryChargeRequest mirrors domain.DeliveryChargeConfig.
type DeliveryChargeRequest struct {
	BaseCharge        decimal.Decimal `json:"baseCharge" binding:"gte=0"`
	PerKmCharge       decimal.Decimal `json:"perKmCharge" binding:"gte=0"`
	FreeDeliveryAbove decimal.Decimal `json:"freeDeliveryAbove" binding:"gte=0"`
	SurgeEnabled      bool            `json:"surgeEnabled"`
	SurgeMultiplier   decimal.Decimal `json:"surgeMultiplier" binding:"gte=0"`
}

// DeliveryZoneRequest defines the editable configuration of a zone.
type DeliveryZoneRequest struct {
	Name                  string                `json:"name" binding:"required,max=100"`
	Description           string                `json:"description"`
	Localities            []string              `json:"localities"`
	Pincodes              []string              `json:"pincodes" binding:"dive,numeric"`
	DeliveryCharge        DeliveryChargeRequest `json:"deliveryCharge"`
	MinimumOrderAmount    decimal.Decimal       `json:"minimumOrderAmount" binding:"gte=0"`
	MaxDeliveryDistanceKm decimal.Decimal       `json:"maxDeliveryDistanceKm" binding:"gte=0"`
	MinDeliveryMinutes    int                   `json:"minDeliveryMinutes" binding:"gte=0"`
	MaxDeliveryMinutes    int                   `json:"maxDeliveryMinutes" binding:"gtefield=MinDeliveryMinutes"`
	PeakHours             []PeakHourRequest     `json:"peakHours" binding:"dive"`
}

// CreateDeliveryZoneRequest defines data for creating a zone.
type CreateDeliveryZoneRequest struct {
	StallID string `json:"stallID" binding:"required"`
	DeliveryZoneRequest
}

// UpdateDeliveryZoneRequest replaces a zone's configuration.
type UpdateDeliveryZoneRequest struct {
	DeliveryZoneRequest
	VersionGuard
}

// ApplyTo copies the configuration onto the zone.
func (r DeliveryZoneRequest) ApplyTo(z *domain.DeliveryZone) {
	z.Name = r.Name
	z.Description = r.Description
	z.Localities = r.Localities
	z.Pincodes = r.Pincodes
	z.DeliveryCharge = domain.DeliveryChargeConfig{
		BaseCharge:        r.DeliveryCharge.BaseCharge,
		PerKmCharge:       r.DeliveryCharge.PerKmCharge,
		FreeDeliveryAbove: r.DeliveryCharge.FreeDeliveryAbove,
		SurgePricing: domain.SurgePricing{
			Enabled:    r.DeliveryCharge.SurgeEnabled,
			Multiplier: r.DeliveryCharge.SurgeMultiplier,
		},
	}
	z.MinimumOrderAmount = r.MinimumOrderAmount
	z.MaxDeliveryDistanceKm = r.MaxDeliveryDistanceKm
	z.EstimatedDeliveryTime = domain.DeliveryWindow{MinTime: r.MinDeliveryMinutes, MaxTime: r.MaxDeliveryMinutes}
	z.PeakHours = make([]domain.PeakHour, len(r.PeakHours))
	for i, p := range r.PeakHours {
		z.PeakHours[i] = domain.PeakHour{
			DayOfWeek:         p.DayOfWeek,
			StartTime:         p.StartTime,
			EndTime:           p.EndTime,
			ExtraDelayMinutes: p.ExtraDelayMinutes,
		}
	}
}

// DeliveryQuoteRequest asks for the charge of a prospective order.
type DeliveryQuoteRequest struct {
	OrderAmount decimal.Decimal `json:"orderAmount" binding:"gte=0"`
	DistanceKm  decimal.Decimal `json:"distanceKm" binding:"gte=0"`
	Locality    string          `json:"locality"`
}

// DeliveryQuoteResponse is the priced delivery.
type DeliveryQuoteResponse struct {
	ZoneID          string                `json:"zoneID"`
	DeliveryCharge  decimal.Decimal       `json:"deliveryCharge"`
	IsPeakHour      bool                  `json:"isPeakHour"`
	FreeDelivery    bool                  `json:"freeDelivery"`
	EstimatedWindow domain.DeliveryWindow `json:"estimatedWindow"`
	Serviceable     bool                  `json:"serviceable"`
	Reason          string                `json:"reason,omitempty"`
}

// PeakStatusResponse reports whether a zone is in a peak window.
type PeakStatusResponse struct {
	ZoneID          string                `json:"zoneID"`
	IsPeakHour      bool                  `json:"isPeakHour"`
	EstimatedWindow domain.DeliveryWindow `json:"estimatedWindow"`
}

// AssignDeliveryPersonRequest adds a rider to a zone.
type AssignDeliveryPersonRequest struct {
	PersonID string `json:"personID" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	VersionGuard
}

// PersonAvailabilityRequest toggles a rider's availability.
type PersonAvailabilityRequest struct {
	Available bool `json:"available"`
	VersionGuard
}

// RecordDeliveryRequest reports a finished delivery.
type RecordDeliveryRequest struct {
	PersonID        string           `json:"personID" binding:"required"`
	Successful      bool             `json:"successful"`
	DeliveryMinutes int              `json:"deliveryMinutes" binding:"gte=0"`
	OrderAmount     decimal.Decimal  `json:"orderAmount" binding:"gte=0"`
	Rating          *decimal.Decimal `json:"rating" binding:"omitempty,gte=0,lte=5"`
	VersionGuard
}
