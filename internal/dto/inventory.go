package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StallStockRequest seeds a stall's quantity on batch creation.
type StallStockRequest struct {
	StallID  string          `json:"stallID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"gte=0"`
}

// CreateBatchRequest defines the data needed to register an inventory batch.
type CreateBatchRequest struct {
	BatchNumber           string              `json:"batchNumber" binding:"required"`
	ItemID                string              `json:"itemID"`
	ItemName              string              `json:"itemName" binding:"required"`
	ItemKind              string              `json:"itemKind" binding:"required,oneof=product raw-material"`
	Unit                  string              `json:"unit" binding:"required"`
	ManufactureDate       time.Time           `json:"manufactureDate"`
	ExpiryDate            time.Time           `json:"expiryDate" binding:"required"`
	CostPerUnit           decimal.Decimal     `json:"costPerUnit" binding:"gte=0"`
	ProductionHouseStock  decimal.Decimal     `json:"productionHouseStock" binding:"gte=0"`
	StallWiseStock        []StallStockRequest `json:"stallWiseStock" binding:"dive"`
	MinimumStockLevel     decimal.Decimal     `json:"minimumStockLevel" binding:"gte=0"`
	AlertEnabled          bool                `json:"alertEnabled"`
	AlertDaysBeforeExpiry int                 `json:"alertDaysBeforeExpiry" binding:"gte=0"`
}

// StockMovementRequest adds or removes stock at a location. An empty
// location means the production house.
type StockMovementRequest struct {
	Location string          `json:"location"`
	Quantity decimal.Decimal `json:"quantity" binding:"gt=0"`
	VersionGuard
}

// TransferStockRequest moves stock from the production house to a stall.
type TransferStockRequest struct {
	StallID  string          `json:"stallID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"gt=0"`
	VersionGuard
}

// WastageRequest records spoiled or lost stock.
type WastageRequest struct {
	Location string          `json:"location"`
	Quantity decimal.Decimal `json:"quantity" binding:"gt=0"`
	Reason   string          `json:"reason" binding:"required"`
	Notes    string          `json:"notes" binding:"max=500"`
	VersionGuard
}

// BatchRefreshSummary reports one pass of the batch refresher.
type BatchRefreshSummary struct {
	Refreshed    int      `json:"refreshed"`
	Expired      []string `json:"expired,omitempty"`
	NearExpiry   []string `json:"nearExpiry,omitempty"`
	LowStock     []string `json:"lowStock,omitempty"`
	AlertsQueued int      `json:"alertsQueued"`
	Failed       []string `json:"failed,omitempty"`
}
