package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
)

// ListFilter narrows record listings. Zero values mean "no restriction";
// inactive (soft deleted) records are skipped unless IncludeInactive is set.
// From and To bound the record date, From inclusive and To exclusive.
type ListFilter struct {
	StallID         string
	Status          string
	From            *time.Time
	To              *time.Time
	IncludeInactive bool
	Limit           int
	Offset          int
}

// RecordReader defines read operations shared by every stall-scoped record.
type RecordReader[T domain.Record] interface {
	// FindByID retrieves a record by its ID. Returns apperrors.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*T, error)

	// List retrieves records matching the filter, newest record date first.
	List(ctx context.Context, filter ListFilter) ([]T, error)
}

// RecordWriter defines write operations shared by every stall-scoped record.
type RecordWriter[T domain.Record] interface {
	// Save persists a new record.
	Save(ctx context.Context, record T) error

	// Update replaces a stored record. The stored row must be exactly one
	// version behind record, otherwise apperrors.ErrConflict is returned.
	Update(ctx context.Context, record T) error
}

// RecordRepository combines reads and writes for one record type.
type RecordRepository[T domain.Record] interface {
	RecordReader[T]
	RecordWriter[T]
}

// DeliveryZoneRepositoryFacade stores delivery zones.
type DeliveryZoneRepositoryFacade interface {
	RecordRepository[domain.DeliveryZone]
}

// OrderRepositoryFacade stores orders.
type OrderRepositoryFacade interface {
	RecordRepository[domain.Order]
}

// PayrollRepositoryFacade stores payroll records.
type PayrollRepositoryFacade interface {
	RecordRepository[domain.Payroll]
}

// InvestorRepositoryFacade stores investors and their payout ledgers.
type InvestorRepositoryFacade interface {
	RecordRepository[domain.Investor]
}

// ExpenseReader adds the recurring lookup used by the scheduler.
type ExpenseReader interface {
	// FindRecurring retrieves active expenses that carry a recurrence with a
	// next due date.
	FindRecurring(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter adds the atomic write used when a recurrence fires.
type ExpenseWriter interface {
	// SaveOccurrence updates the recurring template and inserts the generated
	// occurrence in one transaction.
	SaveOccurrence(ctx context.Context, template domain.Expense, occurrence domain.Expense) error
}

// ExpenseRepositoryFacade stores expenses.
type ExpenseRepositoryFacade interface {
	RecordRepository[domain.Expense]
	ExpenseReader
	ExpenseWriter
}

// ProfitLossRepositoryFacade stores profit/loss reports.
type ProfitLossRepositoryFacade interface {
	RecordRepository[domain.ProfitLoss]
}

// InventoryReader adds stall-side stock lookups. Batches live at the
// production house, so the generic stall filter does not apply to them.
type InventoryReader interface {
	// ListByStall retrieves batches holding a stock line for the stall.
	ListByStall(ctx context.Context, stallID string, filter ListFilter) ([]domain.Inventory, error)
}

// InventoryRepositoryFacade stores inventory batches.
type InventoryRepositoryFacade interface {
	RecordRepository[domain.Inventory]
	InventoryReader
}

// StallPerformanceRepositoryFacade stores stall scorecards.
type StallPerformanceRepositoryFacade interface {
	RecordRepository[domain.StallPerformance]
}
