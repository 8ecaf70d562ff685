package repositories

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
)

// StallReader defines read operations for stall data
type StallReader interface {
	// FindStallByID retrieves a specific stall by its ID.
	FindStallByID(ctx context.Context, stallID string) (*domain.Stall, error)

	// ListStalls retrieves a paginated list of stalls ordered by name.
	ListStalls(ctx context.Context, includeInactive bool, limit, offset int) ([]domain.Stall, error)
}

// StallWriter defines write operations for stall data
type StallWriter interface {
	// SaveStall persists a new stall.
	SaveStall(ctx context.Context, stall domain.Stall) error

	// UpdateStall stores changed stall details guarded by the version column.
	UpdateStall(ctx context.Context, stall domain.Stall) error
}

// StallRepositoryFacade combines all stall-related repository interfaces
type StallRepositoryFacade interface {
	StallReader
	StallWriter
}
