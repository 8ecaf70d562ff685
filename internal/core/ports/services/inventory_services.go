package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// InventoryReaderSvc defines read operations for inventory batches
type InventoryReaderSvc interface {
	GetBatch(ctx context.Context, batchID string) (*domain.Inventory, error)
	ListBatches(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Inventory, error)
}

// InventoryWriterSvc defines stock movements on batches
type InventoryWriterSvc interface {
	CreateBatch(ctx context.Context, req dto.CreateBatchRequest, actor domain.Actor) (*domain.Inventory, error)
	AddStock(ctx context.Context, batchID string, req dto.StockMovementRequest, actor domain.Actor) (*domain.Inventory, error)
	RemoveStock(ctx context.Context, batchID string, req dto.StockMovementRequest, actor domain.Actor) (*domain.Inventory, error)
	TransferStock(ctx context.Context, batchID string, req dto.TransferStockRequest, actor domain.Actor) (*domain.Inventory, error)
	RecordWastage(ctx context.Context, batchID string, req dto.WastageRequest, actor domain.Actor) (*domain.WastageRecord, error)
	// RefreshBatch recomputes a batch's expiry status and totals.
	RefreshBatch(ctx context.Context, batchID string, actor domain.Actor) (*domain.Inventory, error)
}

// InventorySchedulerSvc is driven by the background scheduler.
type InventorySchedulerSvc interface {
	// RefreshAllBatches refreshes every active batch and queues near-expiry
	// and low-stock alerts.
	RefreshAllBatches(ctx context.Context) (*dto.BatchRefreshSummary, error)
}

// InventorySvcFacade combines all inventory service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
	InventorySchedulerSvc
}
