package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/google/uuid"
)

type stallService struct {
	BaseService
	stallRepo portsrepo.StallRepositoryFacade
}

// NewStallService creates the service managing stalls.
func NewStallService(repo portsrepo.StallRepositoryFacade, opts ...Option) portssvc.StallSvcFacade {
	return &stallService{
		BaseService: newBaseService(opts),
		stallRepo:   repo,
	}
}

var _ portssvc.StallSvcFacade = (*stallService)(nil)

func (s *stallService) CreateStall(ctx context.Context, req dto.CreateStallRequest, actor domain.Actor) (*domain.Stall, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if actor.UserRole != domain.RoleOwner && actor.UserRole != domain.RoleManager {
		return nil, fmt.Errorf("%w: only owners and managers may open stalls", apperrors.ErrForbidden)
	}

	stall := domain.Stall{
		StallID:      uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Code:         strings.ToUpper(strings.TrimSpace(req.Code)),
		Address:      req.Address,
		City:         req.City,
		ManagerID:    req.ManagerID,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
		Versioned:    domain.Versioned{Version: 1},
		AuditFields:  domain.NewAuditFields(actor.UserID, s.Now()),
	}

	if err := s.stallRepo.SaveStall(ctx, stall); err != nil {
		s.LogError(ctx, err, "Failed to save stall", slog.String("code", stall.Code))
		return nil, fmt.Errorf("failed to create stall: %w", err)
	}

	s.LogInfo(ctx, "Stall created", slog.String("stall_id", stall.StallID), slog.String("code", stall.Code))
	return &stall, nil
}

func (s *stallService) GetStallByID(ctx context.Context, stallID string) (*domain.Stall, error) {
	stall, err := s.stallRepo.FindStallByID(ctx, stallID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get stall", slog.String("stall_id", stallID))
		}
		return nil, err
	}
	return stall, nil
}

func (s *stallService) ListStalls(ctx context.Context, includeInactive bool, limit, offset int) ([]domain.Stall, error) {
	stalls, err := s.stallRepo.ListStalls(ctx, includeInactive, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stalls")
		return nil, fmt.Errorf("failed to list stalls: %w", err)
	}
	return stalls, nil
}

func (s *stallService) UpdateStall(ctx context.Context, stallID string, req dto.UpdateStallRequest, actor domain.Actor) (*domain.Stall, error) {
	return s.updateStall(ctx, stallID, req.ExpectedVersion, actor, func(st *domain.Stall) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return apperrors.NewValidationFailedError("stall name cannot be empty")
			}
			st.Name = name
		}
		if req.Address != nil {
			st.Address = *req.Address
		}
		if req.City != nil {
			st.City = *req.City
		}
		if req.ManagerID != nil {
			st.ManagerID = *req.ManagerID
		}
		if req.ContactPhone != nil {
			st.ContactPhone = *req.ContactPhone
		}
		return nil
	})
}

func (s *stallService) DeactivateStall(ctx context.Context, stallID string, expectedVersion *int64, actor domain.Actor) error {
	if actor.UserRole != domain.RoleOwner {
		return fmt.Errorf("%w: only owners may close stalls", apperrors.ErrForbidden)
	}
	_, err := s.updateStall(ctx, stallID, expectedVersion, actor, func(st *domain.Stall) error {
		if !st.IsActive {
			return apperrors.NewInvalidTransitionError("stall", "inactive", "deactivate")
		}
		st.IsActive = false
		return nil
	})
	if err == nil {
		s.LogInfo(ctx, "Stall deactivated", slog.String("stall_id", stallID))
	}
	return err
}

func (s *stallService) updateStall(ctx context.Context, stallID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.Stall) error) (*domain.Stall, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	stall, err := s.GetStallByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	if err := stall.CheckVersion("stall", stallID, expectedVersion); err != nil {
		return nil, err
	}
	if err := fn(stall); err != nil {
		return nil, err
	}
	stall.Touch(actor.UserID, s.Now())
	stall.BumpVersion()
	if err := s.stallRepo.UpdateStall(ctx, *stall); err != nil {
		s.LogError(ctx, err, "Failed to update stall", slog.String("stall_id", stallID))
		return nil, err
	}
	return stall, nil
}

// EnsureStallActive is the guard other services run before attaching records to a stall.
func (s *stallService) EnsureStallActive(ctx context.Context, stallID string) error {
	if strings.TrimSpace(stallID) == "" {
		return apperrors.NewValidationFailedError("stall id is required")
	}
	stall, err := s.stallRepo.FindStallByID(ctx, stallID)
	if err != nil {
		return err
	}
	if !stall.IsActive {
		return apperrors.NewValidationFailedError("stall " + stall.Code + " is closed")
	}
	return nil
}
