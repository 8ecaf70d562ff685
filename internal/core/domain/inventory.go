package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ProductionHouse addresses the central kitchen stock of a batch.
const ProductionHouse = "production-house"

const expiryAlertInterval = 24 * time.Hour

// BatchStatus is derived from the expiry date.
type BatchStatus string

const (
	BatchFresh      BatchStatus = "fresh"
	BatchNearExpiry BatchStatus = "near-expiry"
	BatchExpired    BatchStatus = "expired"
)

type ItemKind string

const (
	ItemProduct     ItemKind = "product"
	ItemRawMaterial ItemKind = "raw-material"
)

type WastageReason string

const (
	WastageExpired  WastageReason = "expired"
	WastageDamaged  WastageReason = "damaged"
	WastageSpoiled  WastageReason = "spoiled"
	WastageSpillage WastageReason = "spillage"
	WastageOther    WastageReason = "other"
)

// IsValid reports whether the reason is known.
func (r WastageReason) IsValid() bool {
	switch r {
	case WastageExpired, WastageDamaged, WastageSpoiled, WastageSpillage, WastageOther:
		return true
	}
	return false
}

type StallStock struct {
	StallID     string          `json:"stallID"`
	Quantity    decimal.Decimal `json:"quantity"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// WastageRecord is immutable once appended.
type WastageRecord struct {
	WastageID  string          `json:"wastageID"`
	Location   string          `json:"location"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     WastageReason   `json:"reason"`
	Notes      string          `json:"notes,omitempty"`
	CostImpact decimal.Decimal `json:"costImpact"`
	RecordedBy Actor           `json:"recordedBy"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// WastageInput describes wastage to record.
type WastageInput struct {
	WastageID string
	Location  string
	Quantity  decimal.Decimal
	Reason    WastageReason
	Notes     string
}

type NearExpiryAlert struct {
	Enabled          bool       `json:"enabled"`
	DaysBeforeExpiry int        `json:"daysBeforeExpiry"`
	LastAlertSentAt  *time.Time `json:"lastAlertSentAt,omitempty"`
}

// Inventory is a dated batch of stock spread over the production house and
// the stalls.
type Inventory struct {
	BatchID              string          `json:"batchID"`
	BatchNumber          string          `json:"batchNumber"`
	ItemID               string          `json:"itemID"`
	ItemName             string          `json:"itemName"`
	ItemKind             ItemKind        `json:"itemKind"`
	Unit                 string          `json:"unit"`
	ManufactureDate      time.Time       `json:"manufactureDate"`
	ExpiryDate           time.Time       `json:"expiryDate"`
	CostPerUnit          decimal.Decimal `json:"costPerUnit"`
	TotalStockQuantity   decimal.Decimal `json:"totalStockQuantity"`
	ProductionHouseStock decimal.Decimal `json:"productionHouseStock"`
	StallWiseStock       []StallStock    `json:"stallWiseStock"`
	MinimumStockLevel    decimal.Decimal `json:"minimumStockLevel"`
	NearExpiryAlert      NearExpiryAlert `json:"nearExpiryAlert"`
	DaysUntilExpiry      int             `json:"daysUntilExpiry"`
	BatchStatus          BatchStatus     `json:"batchStatus"`
	TotalBatchValue      decimal.Decimal `json:"totalBatchValue"`
	WastageRecords       []WastageRecord `json:"wastageRecords"`
	TotalWastageCost     decimal.Decimal `json:"totalWastageCost"`
	IsActive             bool            `json:"isActive"`
	Versioned
	AuditFields
}

// Validate checks the batch header.
func (b *Inventory) Validate() error {
	if strings.TrimSpace(b.ItemName) == "" || strings.TrimSpace(b.BatchNumber) == "" {
		return fmt.Errorf("%w: item name and batch number are required", apperrors.ErrValidation)
	}
	if b.ItemKind != ItemProduct && b.ItemKind != ItemRawMaterial {
		return fmt.Errorf("%w: unknown item kind %q", apperrors.ErrValidation, b.ItemKind)
	}
	if b.ExpiryDate.IsZero() {
		return fmt.Errorf("%w: expiry date is required", apperrors.ErrValidation)
	}
	if !b.ManufactureDate.IsZero() && b.ExpiryDate.Before(b.ManufactureDate) {
		return fmt.Errorf("%w: expiry date is before manufacture date", apperrors.ErrValidation)
	}
	if b.CostPerUnit.IsNegative() || b.ProductionHouseStock.IsNegative() || b.MinimumStockLevel.IsNegative() {
		return fmt.Errorf("%w: cost and stock levels cannot be negative", apperrors.ErrValidation)
	}
	if b.NearExpiryAlert.DaysBeforeExpiry < 0 {
		return fmt.Errorf("%w: alert days cannot be negative", apperrors.ErrValidation)
	}
	for _, s := range b.StallWiseStock {
		if s.Quantity.IsNegative() || strings.TrimSpace(s.StallID) == "" {
			return fmt.Errorf("%w: stall stock entries need a stall and a non-negative quantity", apperrors.ErrValidation)
		}
	}
	return nil
}

// Refresh recomputes every derived field at now. Expired batches are
// deactivated.
func (b *Inventory) Refresh(now time.Time) {
	days := math.Ceil(b.ExpiryDate.Sub(now).Hours() / 24)
	b.DaysUntilExpiry = int(days)
	switch {
	case b.DaysUntilExpiry < 0:
		b.BatchStatus = BatchExpired
	case b.DaysUntilExpiry <= b.NearExpiryAlert.DaysBeforeExpiry:
		b.BatchStatus = BatchNearExpiry
	default:
		b.BatchStatus = BatchFresh
	}
	if b.BatchStatus == BatchExpired {
		b.IsActive = false
	}

	total := b.ProductionHouseStock
	for _, s := range b.StallWiseStock {
		total = total.Add(s.Quantity)
	}
	b.TotalStockQuantity = total
	b.TotalBatchValue = RoundMoney(total.Mul(b.CostPerUnit))

	wastage := decimal.Zero
	for _, w := range b.WastageRecords {
		wastage = wastage.Add(w.CostImpact)
	}
	b.TotalWastageCost = wastage
}

// StockAt returns the quantity held at a location.
func (b *Inventory) StockAt(location string) (decimal.Decimal, bool) {
	if location == ProductionHouse {
		return b.ProductionHouseStock, true
	}
	if i := b.findStall(location); i >= 0 {
		return b.StallWiseStock[i].Quantity, true
	}
	return decimal.Zero, false
}

func (b *Inventory) findStall(stallID string) int {
	return slices.IndexFunc(b.StallWiseStock, func(s StallStock) bool {
		return s.StallID == stallID
	})
}

func (b *Inventory) requireActive(action string) error {
	if !b.IsActive {
		state := "inactive"
		if b.BatchStatus == BatchExpired {
			state = string(BatchExpired)
		}
		return apperrors.NewInvalidTransitionError("inventory batch", state, action)
	}
	return nil
}

func requirePositive(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	return nil
}

// setStock writes qty to location on a copy of the stall list.
func (b *Inventory) setStock(location string, qty decimal.Decimal, now time.Time) {
	if location == ProductionHouse {
		b.ProductionHouseStock = qty
		return
	}
	stalls := slices.Clone(b.StallWiseStock)
	if i := b.findStall(location); i >= 0 {
		stalls[i].Quantity = qty
		stalls[i].LastUpdated = now
	} else {
		stalls = append(stalls, StallStock{StallID: location, Quantity: qty, LastUpdated: now})
	}
	b.StallWiseStock = stalls
}

// AddStock increases stock at a location, creating the stall entry when
// needed.
func (b *Inventory) AddStock(location string, qty decimal.Decimal, now time.Time) error {
	if err := requirePositive(qty); err != nil {
		return err
	}
	if err := b.requireActive("add stock to"); err != nil {
		return err
	}
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("%w: location is required", apperrors.ErrValidation)
	}
	current, _ := b.StockAt(location)
	b.setStock(location, current.Add(qty), now)
	b.Refresh(now)
	return nil
}

// RemoveStock decreases stock at a location. The quantity never goes below
// zero.
func (b *Inventory) RemoveStock(location string, qty decimal.Decimal, now time.Time) error {
	if err := requirePositive(qty); err != nil {
		return err
	}
	current, ok := b.StockAt(location)
	if !ok {
		return apperrors.NewNotFoundError("no stock of batch " + b.BatchNumber + " at " + location)
	}
	b.setStock(location, NonNegative(current.Sub(qty)), now)
	b.Refresh(now)
	return nil
}

// TransferStock moves stock from the production house to a stall.
func (b *Inventory) TransferStock(stallID string, qty decimal.Decimal, now time.Time) error {
	if err := requirePositive(qty); err != nil {
		return err
	}
	if strings.TrimSpace(stallID) == "" || stallID == ProductionHouse {
		return fmt.Errorf("%w: a destination stall is required", apperrors.ErrValidation)
	}
	if err := b.requireActive("transfer stock of"); err != nil {
		return err
	}
	if b.ProductionHouseStock.LessThan(qty) {
		return apperrors.NewInsufficientStockError(fmt.Sprintf("production house holds %s %s of batch %s, requested %s",
			b.ProductionHouseStock.String(), b.Unit, b.BatchNumber, qty.String()))
	}
	atStall, _ := b.StockAt(stallID)
	b.ProductionHouseStock = b.ProductionHouseStock.Sub(qty)
	b.setStock(stallID, atStall.Add(qty), now)
	b.Refresh(now)
	return nil
}

// RecordWastage removes wasted stock from a location and appends a wastage
// record costed at the batch's cost per unit.
func (b *Inventory) RecordWastage(in WastageInput, actor Actor, now time.Time) (WastageRecord, error) {
	if err := actor.Validate(); err != nil {
		return WastageRecord{}, err
	}
	if err := requirePositive(in.Quantity); err != nil {
		return WastageRecord{}, err
	}
	if !in.Reason.IsValid() {
		return WastageRecord{}, fmt.Errorf("%w: unknown wastage reason %q", apperrors.ErrValidation, in.Reason)
	}
	if strings.TrimSpace(in.WastageID) == "" {
		return WastageRecord{}, fmt.Errorf("%w: wastage id is required", apperrors.ErrValidation)
	}
	location := in.Location
	if location == "" {
		location = ProductionHouse
	}
	current, ok := b.StockAt(location)
	if !ok {
		return WastageRecord{}, apperrors.NewNotFoundError("no stock of batch " + b.BatchNumber + " at " + location)
	}
	if current.LessThan(in.Quantity) {
		return WastageRecord{}, apperrors.NewInsufficientStockError(fmt.Sprintf("%s holds %s %s of batch %s, wastage of %s requested",
			location, current.String(), b.Unit, b.BatchNumber, in.Quantity.String()))
	}

	rec := WastageRecord{
		WastageID:  in.WastageID,
		Location:   location,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		Notes:      in.Notes,
		CostImpact: RoundMoney(in.Quantity.Mul(b.CostPerUnit)),
		RecordedBy: actor,
		RecordedAt: now,
	}
	b.setStock(location, current.Sub(in.Quantity), now)
	records := make([]WastageRecord, len(b.WastageRecords), len(b.WastageRecords)+1)
	copy(records, b.WastageRecords)
	b.WastageRecords = append(records, rec)
	b.Refresh(now)
	return rec, nil
}

// IsLowStock reports whether total stock fell below the configured minimum.
func (b *Inventory) IsLowStock() bool {
	return b.MinimumStockLevel.IsPositive() && b.TotalStockQuantity.LessThan(b.MinimumStockLevel)
}

// NeedsExpiryAlert reports whether a near-expiry alert is due. Alerts repeat
// at most once a day.
func (b *Inventory) NeedsExpiryAlert(now time.Time) bool {
	a := b.NearExpiryAlert
	if !b.IsActive || !a.Enabled || b.BatchStatus != BatchNearExpiry {
		return false
	}
	return a.LastAlertSentAt == nil || now.Sub(*a.LastAlertSentAt) >= expiryAlertInterval
}

// MarkExpiryAlertSent stamps the alert time.
func (b *Inventory) MarkExpiryAlertSent(now time.Time) {
	b.NearExpiryAlert.LastAlertSentAt = timePtr(now)
}
