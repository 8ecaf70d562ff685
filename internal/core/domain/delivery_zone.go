package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PeakDayAll matches every day of the week.
const PeakDayAll = "all"

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// SurgePricing multiplies the delivery charge inside peak windows.
type SurgePricing struct {
	Enabled    bool            `json:"enabled"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// DeliveryChargeConfig is the zone's pricing rule.
type DeliveryChargeConfig struct {
	BaseCharge        decimal.Decimal `json:"baseCharge"`
	PerKmCharge       decimal.Decimal `json:"perKmCharge"`
	FreeDeliveryAbove decimal.Decimal `json:"freeDeliveryAbove"` // 0 disables free delivery
	SurgePricing      SurgePricing    `json:"surgePricing"`
}

// DeliveryWindow is an estimated delivery time range in minutes.
type DeliveryWindow struct {
	MinTime int `json:"minTime"`
	MaxTime int `json:"maxTime"`
}

// PeakHour is a recurring daily window with elevated charges and delays.
type PeakHour struct {
	DayOfWeek         string `json:"dayOfWeek"` // monday..sunday or "all"
	StartTime         string `json:"startTime"` // HH:MM, 24h
	EndTime           string `json:"endTime"`   // HH:MM, may be earlier than StartTime to wrap midnight
	ExtraDelayMinutes int    `json:"extraDelayMinutes"`
}

// Contains reports whether now falls inside the window.
func (p PeakHour) Contains(now time.Time) bool {
	day := strings.ToLower(strings.TrimSpace(p.DayOfWeek))
	if day != PeakDayAll && day != weekdays[now.Weekday()] {
		return false
	}
	start, err := minuteOfDay(p.StartTime)
	if err != nil {
		return false
	}
	end, err := minuteOfDay(p.EndTime)
	if err != nil {
		return false
	}
	m := now.Hour()*60 + now.Minute()
	if start <= end {
		return m >= start && m < end
	}
	return m >= start || m < end
}

func (p PeakHour) validate() error {
	day := strings.ToLower(strings.TrimSpace(p.DayOfWeek))
	if day != PeakDayAll && !slices.Contains(weekdays, day) {
		return fmt.Errorf("%w: invalid peak hour day %q", apperrors.ErrValidation, p.DayOfWeek)
	}
	if _, err := minuteOfDay(p.StartTime); err != nil {
		return err
	}
	if _, err := minuteOfDay(p.EndTime); err != nil {
		return err
	}
	if p.StartTime == p.EndTime {
		return fmt.Errorf("%w: peak hour window %s-%s is empty", apperrors.ErrValidation, p.StartTime, p.EndTime)
	}
	if p.ExtraDelayMinutes < 0 {
		return fmt.Errorf("%w: extra delay cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", apperrors.ErrValidation, hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DeliveryPerson is a rider assigned to a zone.
type DeliveryPerson struct {
	PersonID             string          `json:"personID"`
	Name                 string          `json:"name"`
	Phone                string          `json:"phone"`
	IsAvailable          bool            `json:"isAvailable"`
	TotalDeliveries      int             `json:"totalDeliveries"`
	SuccessfulDeliveries int             `json:"successfulDeliveries"`
	FailedDeliveries     int             `json:"failedDeliveries"`
	AverageRating        decimal.Decimal `json:"averageRating"`
	RatingCount          int             `json:"ratingCount"`
	AssignedAt           time.Time       `json:"assignedAt"`
}

// ZonePerformance aggregates delivery counters for a zone.
type ZonePerformance struct {
	TotalOrders            int             `json:"totalOrders"`
	SuccessfulDeliveries   int             `json:"successfulDeliveries"`
	FailedDeliveries       int             `json:"failedDeliveries"`
	TotalRevenue           decimal.Decimal `json:"totalRevenue"`
	AverageDeliveryMinutes decimal.Decimal `json:"averageDeliveryMinutes"`
}

// DeliveryOutcome is reported when a delivery finishes.
type DeliveryOutcome struct {
	Successful      bool             `json:"successful"`
	DeliveryMinutes int              `json:"deliveryMinutes"`
	OrderAmount     decimal.Decimal  `json:"orderAmount"`
	Rating          *decimal.Decimal `json:"rating,omitempty"` // 0-5
}

// DeliveryZone is a delivery coverage area with its own pricing and timing rules.
type DeliveryZone struct {
	ZoneID                string               `json:"zoneID"`
	StallID               string               `json:"stallID"`
	Name                  string               `json:"name"`
	Description           string               `json:"description"`
	Localities            []string             `json:"localities"`
	Pincodes              []string             `json:"pincodes"`
	DeliveryCharge        DeliveryChargeConfig `json:"deliveryCharge"`
	MinimumOrderAmount    decimal.Decimal      `json:"minimumOrderAmount"`
	MaxDeliveryDistanceKm decimal.Decimal      `json:"maxDeliveryDistanceKm"` // 0 means unlimited
	EstimatedDeliveryTime DeliveryWindow       `json:"estimatedDeliveryTime"`
	PeakHours             []PeakHour           `json:"peakHours"`
	DeliveryPersons       []DeliveryPerson     `json:"deliveryPersons"`
	ZonePerformance       ZonePerformance      `json:"zonePerformance"`
	IsActive              bool                 `json:"isActive"`
	Versioned
	AuditFields
}

// Validate checks the zone configuration.
func (z *DeliveryZone) Validate() error {
	if strings.TrimSpace(z.Name) == "" {
		return fmt.Errorf("%w: zone name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(z.StallID) == "" {
		return fmt.Errorf("%w: stall id is required", apperrors.ErrValidation)
	}
	dc := z.DeliveryCharge
	for name, v := range map[string]decimal.Decimal{
		"base charge":           dc.BaseCharge,
		"per km charge":         dc.PerKmCharge,
		"free delivery above":   dc.FreeDeliveryAbove,
		"minimum order amount":  z.MinimumOrderAmount,
		"max delivery distance": z.MaxDeliveryDistanceKm,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", apperrors.ErrValidation, name)
		}
	}
	if dc.SurgePricing.Enabled && dc.SurgePricing.Multiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: surge multiplier must be at least 1", apperrors.ErrValidation)
	}
	w := z.EstimatedDeliveryTime
	if w.MinTime < 0 || w.MaxTime < w.MinTime {
		return fmt.Errorf("%w: estimated delivery time must satisfy 0 <= min <= max", apperrors.ErrValidation)
	}
	for _, p := range z.PeakHours {
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsPeakHour reports whether now falls inside any configured peak window.
func (z *DeliveryZone) IsPeakHour(now time.Time) bool {
	for _, p := range z.PeakHours {
		if p.Contains(now) {
			return true
		}
	}
	return false
}

// CalculateDeliveryCharge prices a delivery of orderAmount over distanceKm at now.
func (z *DeliveryZone) CalculateDeliveryCharge(orderAmount, distanceKm decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if orderAmount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: order amount cannot be negative", apperrors.ErrValidation)
	}
	if distanceKm.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: distance cannot be negative", apperrors.ErrValidation)
	}
	dc := z.DeliveryCharge
	if dc.FreeDeliveryAbove.IsPositive() && orderAmount.GreaterThanOrEqual(dc.FreeDeliveryAbove) {
		return decimal.Zero, nil
	}
	charge := dc.BaseCharge.Add(dc.PerKmCharge.Mul(distanceKm))
	if dc.SurgePricing.Enabled && z.IsPeakHour(now) {
		charge = charge.Mul(dc.SurgePricing.Multiplier)
	}
	return RoundToUnit(charge), nil
}

// EstimateDeliveryTime returns the delivery window at now, widened by the
// largest extra delay among the active peak windows.
func (z *DeliveryZone) EstimateDeliveryTime(now time.Time) DeliveryWindow {
	extra := 0
	for _, p := range z.PeakHours {
		if p.Contains(now) && p.ExtraDelayMinutes > extra {
			extra = p.ExtraDelayMinutes
		}
	}
	return DeliveryWindow{
		MinTime: z.EstimatedDeliveryTime.MinTime + extra,
		MaxTime: z.EstimatedDeliveryTime.MaxTime + extra,
	}
}

// ValidateOrder checks minimum order and maximum distance rules.
func (z *DeliveryZone) ValidateOrder(orderAmount, distanceKm decimal.Decimal) error {
	if !z.IsActive {
		return fmt.Errorf("%w: delivery zone %s is inactive", apperrors.ErrValidation, z.ZoneID)
	}
	if orderAmount.LessThan(z.MinimumOrderAmount) {
		return fmt.Errorf("%w: order amount %s is below the zone minimum %s",
			apperrors.ErrValidation, orderAmount.StringFixed(MoneyPlaces), z.MinimumOrderAmount.StringFixed(MoneyPlaces))
	}
	if z.MaxDeliveryDistanceKm.IsPositive() && distanceKm.GreaterThan(z.MaxDeliveryDistanceKm) {
		return fmt.Errorf("%w: distance %s km exceeds the zone limit of %s km",
			apperrors.ErrValidation, distanceKm.String(), z.MaxDeliveryDistanceKm.String())
	}
	return nil
}

// CoversLocality reports whether the locality or pincode is served.
func (z *DeliveryZone) CoversLocality(locality string) bool {
	needle := strings.ToLower(strings.TrimSpace(locality))
	if needle == "" {
		return false
	}
	for _, l := range z.Localities {
		if strings.ToLower(strings.TrimSpace(l)) == needle {
			return true
		}
	}
	return slices.Contains(z.Pincodes, needle)
}

// AssignDeliveryPerson adds a rider to the zone.
func (z *DeliveryZone) AssignDeliveryPerson(p DeliveryPerson, now time.Time) error {
	if strings.TrimSpace(p.PersonID) == "" || strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: delivery person id and name are required", apperrors.ErrValidation)
	}
	if z.findPerson(p.PersonID) >= 0 {
		return fmt.Errorf("%w: delivery person %s already assigned", apperrors.ErrDuplicate, p.PersonID)
	}
	z.DeliveryPersons = append(z.DeliveryPersons, DeliveryPerson{
		PersonID:    p.PersonID,
		Name:        p.Name,
		Phone:       p.Phone,
		IsAvailable: true,
		AssignedAt:  now,
	})
	return nil
}

// RemoveDeliveryPerson unassigns a rider.
func (z *DeliveryZone) RemoveDeliveryPerson(personID string) error {
	i := z.findPerson(personID)
	if i < 0 {
		return apperrors.NewNotFoundError("delivery person " + personID + " not found in zone")
	}
	z.DeliveryPersons = slices.Delete(slices.Clone(z.DeliveryPersons), i, i+1)
	return nil
}

// SetPersonAvailability toggles whether a rider can take orders.
func (z *DeliveryZone) SetPersonAvailability(personID string, available bool) error {
	i := z.findPerson(personID)
	if i < 0 {
		return apperrors.NewNotFoundError("delivery person " + personID + " not found in zone")
	}
	z.DeliveryPersons[i].IsAvailable = available
	return nil
}

// RecordDelivery advances rider and zone counters for a finished delivery.
func (z *DeliveryZone) RecordDelivery(personID string, outcome DeliveryOutcome) error {
	i := z.findPerson(personID)
	if i < 0 {
		return apperrors.NewNotFoundError("delivery person " + personID + " not found in zone")
	}
	if outcome.DeliveryMinutes < 0 || outcome.OrderAmount.IsNegative() {
		return fmt.Errorf("%w: delivery minutes and order amount cannot be negative", apperrors.ErrValidation)
	}
	if r := outcome.Rating; r != nil && (r.IsNegative() || r.GreaterThan(decimal.NewFromInt(5))) {
		return fmt.Errorf("%w: rating must be between 0 and 5", apperrors.ErrValidation)
	}

	person := z.DeliveryPersons[i]
	perf := z.ZonePerformance

	person.TotalDeliveries++
	perf.TotalOrders++
	if outcome.Successful {
		person.SuccessfulDeliveries++
		perf.SuccessfulDeliveries++
		perf.TotalRevenue = perf.TotalRevenue.Add(outcome.OrderAmount)
		n := decimal.NewFromInt(int64(perf.SuccessfulDeliveries))
		prev := perf.AverageDeliveryMinutes.Mul(n.Sub(decimal.NewFromInt(1)))
		perf.AverageDeliveryMinutes = RoundMoney(prev.Add(decimal.NewFromInt(int64(outcome.DeliveryMinutes))).Div(n))
	} else {
		person.FailedDeliveries++
		perf.FailedDeliveries++
	}
	if outcome.Rating != nil {
		count := decimal.NewFromInt(int64(person.RatingCount))
		total := person.AverageRating.Mul(count).Add(*outcome.Rating)
		person.RatingCount++
		person.AverageRating = RoundMoney(total.Div(decimal.NewFromInt(int64(person.RatingCount))))
	}

	z.DeliveryPersons[i] = person
	z.ZonePerformance = perf
	return nil
}

func (z *DeliveryZone) findPerson(personID string) int {
	return slices.IndexFunc(z.DeliveryPersons, func(p DeliveryPerson) bool {
		return p.PersonID == personID
	})
}
