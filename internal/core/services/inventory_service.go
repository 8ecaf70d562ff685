package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type inventoryService struct {
	BaseService
	batchRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates the service tracking stock batches.
func NewInventoryService(repo portsrepo.InventoryRepositoryFacade, opts ...Option) portssvc.InventorySvcFacade {
	return &inventoryService{
		BaseService: newBaseService(opts),
		batchRepo:   repo,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) GetBatch(ctx context.Context, batchID string) (*domain.Inventory, error) {
	b, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get inventory batch", slog.String("batch_id", batchID))
		}
		return nil, err
	}
	return b, nil
}

// ListBatches lists batches. A stall filter selects the batches holding stock
// at that stall.
func (s *inventoryService) ListBatches(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Inventory, error) {
	var (
		list []domain.Inventory
		err  error
	)
	if filter.StallID != "" {
		list, err = s.batchRepo.ListByStall(ctx, filter.StallID, filter)
	} else {
		list, err = s.batchRepo.List(ctx, filter)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory batches", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list inventory batches: %w", err)
	}
	return list, nil
}

func (s *inventoryService) CreateBatch(ctx context.Context, req dto.CreateBatchRequest, actor domain.Actor) (*domain.Inventory, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	now := s.Now()
	b := domain.Inventory{
		BatchID:              uuid.NewString(),
		BatchNumber:          req.BatchNumber,
		ItemID:               req.ItemID,
		ItemName:             req.ItemName,
		ItemKind:             domain.ItemKind(req.ItemKind),
		Unit:                 req.Unit,
		ManufactureDate:      req.ManufactureDate,
		ExpiryDate:           req.ExpiryDate,
		CostPerUnit:          req.CostPerUnit,
		ProductionHouseStock: req.ProductionHouseStock,
		StallWiseStock:       make([]domain.StallStock, 0, len(req.StallWiseStock)),
		MinimumStockLevel:    req.MinimumStockLevel,
		NearExpiryAlert: domain.NearExpiryAlert{
			Enabled:          req.AlertEnabled,
			DaysBeforeExpiry: req.AlertDaysBeforeExpiry,
		},
		WastageRecords: []domain.WastageRecord{},
		IsActive:       true,
		Versioned:      domain.Versioned{Version: 1},
		AuditFields:    domain.NewAuditFields(actor.UserID, now),
	}
	for _, st := range req.StallWiseStock {
		if err := s.EnsureStall(ctx, st.StallID); err != nil {
			return nil, err
		}
		b.StallWiseStock = append(b.StallWiseStock, domain.StallStock{StallID: st.StallID, Quantity: st.Quantity, LastUpdated: now})
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.Refresh(now)
	if b.BatchStatus == domain.BatchExpired {
		return nil, apperrors.NewValidationFailedError("batch " + b.BatchNumber + " is already expired")
	}

	if err := s.batchRepo.Save(ctx, b); err != nil {
		s.LogError(ctx, err, "Failed to save inventory batch", slog.String("batch_number", req.BatchNumber))
		return nil, fmt.Errorf("failed to create inventory batch: %w", err)
	}
	s.LogInfo(ctx, "Inventory batch created",
		slog.String("batch_id", b.BatchID),
		slog.String("item", b.ItemName),
		slog.String("status", string(b.BatchStatus)))
	return &b, nil
}

func (s *inventoryService) AddStock(ctx context.Context, batchID string, req dto.StockMovementRequest, actor domain.Actor) (*domain.Inventory, error) {
	location, err := s.resolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutate(ctx, batchID, req.ExpectedVersion, actor, func(b *domain.Inventory) error {
		return b.AddStock(location, req.Quantity, now)
	})
}

func (s *inventoryService) RemoveStock(ctx context.Context, batchID string, req dto.StockMovementRequest, actor domain.Actor) (*domain.Inventory, error) {
	location, err := s.resolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutateWatchingStock(ctx, batchID, req.ExpectedVersion, actor, func(b *domain.Inventory) error {
		return b.RemoveStock(location, req.Quantity, now)
	})
}

func (s *inventoryService) TransferStock(ctx context.Context, batchID string, req dto.TransferStockRequest, actor domain.Actor) (*domain.Inventory, error) {
	if err := s.EnsureStall(ctx, req.StallID); err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutate(ctx, batchID, req.ExpectedVersion, actor, func(b *domain.Inventory) error {
		return b.TransferStock(req.StallID, req.Quantity, now)
	})
}

func (s *inventoryService) RecordWastage(ctx context.Context, batchID string, req dto.WastageRequest, actor domain.Actor) (*domain.WastageRecord, error) {
	in := domain.WastageInput{
		WastageID: uuid.NewString(),
		Location:  req.Location,
		Quantity:  req.Quantity,
		Reason:    domain.WastageReason(req.Reason),
		Notes:     req.Notes,
	}
	now := s.Now()
	var rec domain.WastageRecord
	_, err := s.mutateWatchingStock(ctx, batchID, req.ExpectedVersion, actor, func(b *domain.Inventory) error {
		var err error
		rec, err = b.RecordWastage(in, actor, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Wastage recorded",
		slog.String("batch_id", batchID),
		slog.String("reason", string(rec.Reason)),
		slog.String("cost", rec.CostImpact.StringFixed(domain.MoneyPlaces)))
	return &rec, nil
}

func (s *inventoryService) RefreshBatch(ctx context.Context, batchID string, actor domain.Actor) (*domain.Inventory, error) {
	now := s.Now()
	return s.mutateBatch(ctx, batchID, nil, actor, true, func(b *domain.Inventory) error {
		b.Refresh(now)
		return nil
	})
}

func (s *inventoryService) RefreshAllBatches(ctx context.Context) (*dto.BatchRefreshSummary, error) {
	batches, err := s.batchRepo.List(ctx, portsrepo.ListFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load inventory batches")
		return nil, fmt.Errorf("failed to load inventory batches: %w", err)
	}

	now := s.Now()
	summary := &dto.BatchRefreshSummary{}
	for i := range batches {
		b := batches[i]
		before := b
		b.Refresh(now)
		alert := b.NeedsExpiryAlert(now)
		if alert {
			b.MarkExpiryAlertSent(now)
		}

		if b.DaysUntilExpiry != before.DaysUntilExpiry || b.BatchStatus != before.BatchStatus ||
			b.IsActive != before.IsActive || alert {
			b.Touch(schedulerActor.UserID, now)
			b.BumpVersion()
			if err := s.batchRepo.Update(ctx, b); err != nil {
				s.LogError(ctx, err, "Failed to refresh inventory batch", slog.String("batch_id", b.BatchID))
				summary.Failed = append(summary.Failed, b.BatchID)
				continue
			}
		}
		summary.Refreshed++

		switch b.BatchStatus {
		case domain.BatchExpired:
			summary.Expired = append(summary.Expired, b.BatchID)
		case domain.BatchNearExpiry:
			summary.NearExpiry = append(summary.NearExpiry, b.BatchID)
		}
		if b.IsLowStock() {
			summary.LowStock = append(summary.LowStock, b.BatchID)
		}
		if alert {
			s.notifyNearExpiry(ctx, &b)
			summary.AlertsQueued++
		}
	}

	s.LogInfo(ctx, "Inventory batches refreshed",
		slog.Int("refreshed", summary.Refreshed),
		slog.Int("expired", len(summary.Expired)),
		slog.Int("near_expiry", len(summary.NearExpiry)),
		slog.Int("alerts", summary.AlertsQueued),
		slog.Int("failed", len(summary.Failed)))
	return summary, nil
}

// resolveLocation maps an empty location to the production house and checks
// stall locations.
func (s *inventoryService) resolveLocation(ctx context.Context, location string) (string, error) {
	if location == "" || location == domain.ProductionHouse {
		return domain.ProductionHouse, nil
	}
	if err := s.EnsureStall(ctx, location); err != nil {
		return "", err
	}
	return location, nil
}

// mutateWatchingStock applies fn and queues a low-stock alert when the batch
// drops below its minimum level.
func (s *inventoryService) mutateWatchingStock(ctx context.Context, batchID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.Inventory) error) (*domain.Inventory, error) {
	var wasLow bool
	b, err := s.mutateBatch(ctx, batchID, expectedVersion, actor, true, func(b *domain.Inventory) error {
		wasLow = b.IsLowStock()
		return fn(b)
	})
	if err != nil {
		return nil, err
	}
	if !wasLow && b.IsLowStock() {
		s.Notify(ctx, domain.Notification{
			Kind:     domain.NotifyBatchLowStock,
			RecordID: b.BatchID,
			Subject:  "Low stock: " + b.ItemName + " batch " + b.BatchNumber,
			Amount:   b.TotalBatchValue,
			Details: map[string]string{
				"stock":   quantity(b.TotalStockQuantity, b.Unit),
				"minimum": quantity(b.MinimumStockLevel, b.Unit),
			},
		})
	}
	return b, nil
}

func (s *inventoryService) notifyNearExpiry(ctx context.Context, b *domain.Inventory) {
	s.Notify(ctx, domain.Notification{
		Kind:     domain.NotifyBatchNearExpiry,
		RecordID: b.BatchID,
		Subject:  "Expiring soon: " + b.ItemName + " batch " + b.BatchNumber,
		Amount:   b.TotalBatchValue,
		Details: map[string]string{
			"expiryDate":      b.ExpiryDate.Format("2006-01-02"),
			"daysUntilExpiry": strconv.Itoa(b.DaysUntilExpiry),
			"stock":           quantity(b.TotalStockQuantity, b.Unit),
		},
	})
}

func quantity(q decimal.Decimal, unit string) string {
	return q.String() + " " + unit
}

func (s *inventoryService) mutate(ctx context.Context, batchID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.Inventory) error) (*domain.Inventory, error) {
	return s.mutateBatch(ctx, batchID, expectedVersion, actor, false, fn)
}

// mutateBatch with includeInactive reaches batches deactivated on expiry, which
// still hold stock that has to be removed or written off.
func (s *inventoryService) mutateBatch(ctx context.Context, batchID string, expectedVersion *int64, actor domain.Actor, includeInactive bool, fn func(*domain.Inventory) error) (*domain.Inventory, error) {
	apply := mutate[domain.Inventory, *domain.Inventory]
	if includeInactive {
		apply = mutateIncludingInactive[domain.Inventory, *domain.Inventory]
	}
	b, err := apply(ctx, s.batchRepo, "inventory batch", batchID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update inventory batch", slog.String("batch_id", batchID))
		return nil, err
	}
	return b, nil
}
