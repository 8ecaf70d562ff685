package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// StallPerformanceSvcFacade manages stall scorecards
type StallPerformanceSvcFacade interface {
	GetScorecard(ctx context.Context, reportID string) (*domain.StallPerformance, error)
	ListScorecards(ctx context.Context, filter portsrepo.ListFilter) ([]domain.StallPerformance, error)
	CreateScorecard(ctx context.Context, req dto.CreateScorecardRequest, actor domain.Actor) (*domain.StallPerformance, error)
	UpdateScorecard(ctx context.Context, reportID string, req dto.UpdateScorecardRequest, actor domain.Actor) (*domain.StallPerformance, error)
	SubmitScorecard(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.StallPerformance, error)
	ReviewScorecard(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.StallPerformance, error)
	ApproveScorecard(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.StallPerformance, error)
	ArchiveScorecard(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.StallPerformance, error)
}
