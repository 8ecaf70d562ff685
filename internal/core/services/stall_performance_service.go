package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/google/uuid"
)

type stallPerformanceService struct {
	BaseService
	scorecardRepo portsrepo.StallPerformanceRepositoryFacade
	orderRepo     portsrepo.OrderRepositoryFacade
}

// NewStallPerformanceService creates the service scoring stalls.
func NewStallPerformanceService(repo portsrepo.StallPerformanceRepositoryFacade, orderRepo portsrepo.OrderRepositoryFacade, opts ...Option) portssvc.StallPerformanceSvcFacade {
	return &stallPerformanceService{
		BaseService:   newBaseService(opts),
		scorecardRepo: repo,
		orderRepo:     orderRepo,
	}
}

var _ portssvc.StallPerformanceSvcFacade = (*stallPerformanceService)(nil)

func (s *stallPerformanceService) GetScorecard(ctx context.Context, reportID string) (*domain.StallPerformance, error) {
	p, err := s.scorecardRepo.FindByID(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get scorecard", slog.String("report_id", reportID))
		}
		return nil, err
	}
	return p, nil
}

func (s *stallPerformanceService) ListScorecards(ctx context.Context, filter portsrepo.ListFilter) ([]domain.StallPerformance, error) {
	list, err := s.scorecardRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list scorecards", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list scorecards: %w", err)
	}
	return list, nil
}

func (s *stallPerformanceService) CreateScorecard(ctx context.Context, req dto.CreateScorecardRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := s.EnsureStall(ctx, req.StallID); err != nil {
		return nil, err
	}

	p := domain.StallPerformance{
		ReportID:    uuid.NewString(),
		StallID:     req.StallID,
		PeriodType:  domain.ReportPeriodType(req.PeriodType),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.PerformanceDraft,
		IsActive:    true,
		Versioned:   domain.Versioned{Version: 1},
		AuditFields: domain.NewAuditFields(actor.UserID, s.Now()),
	}
	req.PerformanceMetricsRequest.ApplyTo(&p)
	if req.FromOrders {
		from := p.StartDate
		to := p.EndDate.AddDate(0, 0, 1)
		orders, err := s.orderRepo.List(ctx, portsrepo.ListFilter{StallID: p.StallID, From: &from, To: &to})
		if err != nil {
			s.LogError(ctx, err, "Failed to load orders for scorecard", slog.String("stall_id", p.StallID))
			return nil, fmt.Errorf("failed to load orders: %w", err)
		}
		if err := p.ApplyOrders(orders); err != nil {
			return nil, err
		}
	}
	if err := p.CalculateScore(); err != nil {
		return nil, err
	}

	if err := s.scorecardRepo.Save(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save scorecard", slog.String("stall_id", req.StallID))
		return nil, fmt.Errorf("failed to create scorecard: %w", err)
	}
	s.LogInfo(ctx, "Scorecard created",
		slog.String("report_id", p.ReportID),
		slog.String("stall_id", p.StallID),
		slog.String("score", p.PerformanceScore.StringFixed(domain.MoneyPlaces)),
		slog.String("grade", p.Grade))
	return &p, nil
}

func (s *stallPerformanceService) UpdateScorecard(ctx context.Context, reportID string, req dto.UpdateScorecardRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(p *domain.StallPerformance) error {
		if p.Status != domain.PerformanceDraft {
			return apperrors.NewInvalidTransitionError("performance report", string(p.Status), "edit")
		}
		req.PerformanceMetricsRequest.ApplyTo(p)
		return p.CalculateScore()
	})
}

func (s *stallPerformanceService) SubmitScorecard(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(p *domain.StallPerformance) error {
		return p.Submit(actor)
	})
}

func (s *stallPerformanceService) ReviewScorecard(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	if err := s.RequireApprover(ctx, actor, "review scorecards"); err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(p *domain.StallPerformance) error {
		return p.Review(actor, req.Comments, now)
	})
}

func (s *stallPerformanceService) ApproveScorecard(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	if err := s.RequireApprover(ctx, actor, "approve scorecards"); err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(p *domain.StallPerformance) error {
		return p.Approve(actor, req.Comments, now)
	})
}

func (s *stallPerformanceService) ArchiveScorecard(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	now := s.Now()
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(p *domain.StallPerformance) error {
		return p.Archive(now)
	})
}

func (s *stallPerformanceService) mutate(ctx context.Context, reportID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.StallPerformance) error) (*domain.StallPerformance, error) {
	p, err := mutate[domain.StallPerformance](ctx, s.scorecardRepo, "performance report", reportID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update scorecard", slog.String("report_id", reportID))
		return nil, err
	}
	return p, nil
}
