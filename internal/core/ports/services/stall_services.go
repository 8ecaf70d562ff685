package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/SscSPs/stallchain/internal/dto"
)

// StallReaderSvc defines read operations for stall data
type StallReaderSvc interface {
	// GetStallByID retrieves a specific stall by its ID.
	GetStallByID(ctx context.Context, stallID string) (*domain.Stall, error)

	// ListStalls retrieves stalls ordered by name.
	ListStalls(ctx context.Context, includeInactive bool, limit, offset int) ([]domain.Stall, error)
}

// StallWriterSvc defines write operations for stall data
type StallWriterSvc interface {
	// CreateStall opens a new stall.
	CreateStall(ctx context.Context, req dto.CreateStallRequest, actor domain.Actor) (*domain.Stall, error)

	// UpdateStall changes a stall's details.
	UpdateStall(ctx context.Context, stallID string, req dto.UpdateStallRequest, actor domain.Actor) (*domain.Stall, error)

	// DeactivateStall closes a stall (soft delete).
	DeactivateStall(ctx context.Context, stallID string, expectedVersion *int64, actor domain.Actor) error
}

// StallGuardSvc checks that records are attached to an operating stall.
type StallGuardSvc interface {
	// EnsureStallActive returns apperrors.ErrNotFound for unknown stalls and
	// apperrors.ErrValidation for closed ones.
	EnsureStallActive(ctx context.Context, stallID string) error
}

// StallSvcFacade combines all stall-related service interfaces
type StallSvcFacade interface {
	StallReaderSvc
	StallWriterSvc
	StallGuardSvc
}
