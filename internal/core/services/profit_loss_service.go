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

type profitLossService struct {
	BaseService
	reportRepo   portsrepo.ProfitLossRepositoryFacade
	orderRepo    portsrepo.OrderRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	investorRepo portsrepo.InvestorRepositoryFacade
}

// NewProfitLossService creates the service building profit/loss reports. The
// order, expense and investor repositories are the sources of generated reports.
func NewProfitLossService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.ProfitLossSvcFacade {
	return &profitLossService{
		BaseService:  newBaseService(opts),
		reportRepo:   repos.ProfitLossRepo,
		orderRepo:    repos.OrderRepo,
		expenseRepo:  repos.ExpenseRepo,
		investorRepo: repos.InvestorRepo,
	}
}

var _ portssvc.ProfitLossSvcFacade = (*profitLossService)(nil)

func (s *profitLossService) GetReport(ctx context.Context, reportID string) (*domain.ProfitLoss, error) {
	r, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get profit/loss report", slog.String("report_id", reportID))
		}
		return nil, err
	}
	return r, nil
}

func (s *profitLossService) ListReports(ctx context.Context, filter portsrepo.ListFilter) ([]domain.ProfitLoss, error) {
	list, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list profit/loss reports", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list profit/loss reports: %w", err)
	}
	return list, nil
}

func (s *profitLossService) newDraft(ctx context.Context, period dto.ReportPeriodRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := s.EnsureStall(ctx, period.StallID); err != nil {
		return nil, err
	}
	return &domain.ProfitLoss{
		ReportID:    uuid.NewString(),
		StallID:     period.StallID,
		PeriodType:  domain.ReportPeriodType(period.PeriodType),
		StartDate:   period.StartDate,
		EndDate:     period.EndDate,
		Status:      domain.ReportDraft,
		IsActive:    true,
		Versioned:   domain.Versioned{Version: 1},
		AuditFields: domain.NewAuditFields(actor.UserID, s.Now()),
	}, nil
}

func (s *profitLossService) CreateReport(ctx context.Context, req dto.CreateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	r, err := s.newDraft(ctx, req.ReportPeriodRequest, actor)
	if err != nil {
		return nil, err
	}
	r.Revenue = req.Revenue
	r.Expenses.TotalExpenses = req.TotalExpenses
	req.ProfitLossAdjustments.ApplyTo(r)
	if err := r.CalculateAll(); err != nil {
		return nil, err
	}
	return s.save(ctx, r)
}

func (s *profitLossService) GenerateReport(ctx context.Context, req dto.GenerateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	r, err := s.newDraft(ctx, req.ReportPeriodRequest, actor)
	if err != nil {
		return nil, err
	}
	req.ProfitLossAdjustments.ApplyTo(r)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.applySources(ctx, r); err != nil {
		return nil, err
	}

	if req.OwnerSharePercentage != nil {
		if err := r.SetOwnerShare(*req.OwnerSharePercentage); err != nil {
			return nil, err
		}
	}
	if req.IncludeInvestors {
		investors, err := s.investorRepo.List(ctx, portsrepo.ListFilter{StallID: r.StallID, Status: string(domain.InvestorActive)})
		if err != nil {
			s.LogError(ctx, err, "Failed to load investors for report", slog.String("stall_id", r.StallID))
			return nil, fmt.Errorf("failed to load investors: %w", err)
		}
		for _, inv := range investors {
			share := domain.InvestorShare{
				InvestorID:      inv.InvestorID,
				InvestorName:    inv.Name,
				SharePercentage: inv.ProfitSharePercentage,
			}
			if _, err := r.AddInvestorShare(share); err != nil {
				return nil, err
			}
		}
	}

	if err := r.CalculateAll(); err != nil {
		return nil, err
	}
	return s.save(ctx, r)
}

// applySources replaces the report's revenue and expense totals with the
// stall's orders and expenses dated inside the period.
func (s *profitLossService) applySources(ctx context.Context, r *domain.ProfitLoss) error {
	from := r.StartDate
	to := r.EndDate.AddDate(0, 0, 1)
	filter := portsrepo.ListFilter{StallID: r.StallID, From: &from, To: &to}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load orders for report", slog.String("stall_id", r.StallID))
		return fmt.Errorf("failed to load orders: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for report", slog.String("stall_id", r.StallID))
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	if err := r.ApplyOrders(orders); err != nil {
		return err
	}
	return r.ApplyExpenses(expenses)
}

func (s *profitLossService) save(ctx context.Context, r *domain.ProfitLoss) (*domain.ProfitLoss, error) {
	if err := s.reportRepo.Save(ctx, *r); err != nil {
		s.LogError(ctx, err, "Failed to save profit/loss report", slog.String("stall_id", r.StallID))
		return nil, fmt.Errorf("failed to create profit/loss report: %w", err)
	}
	s.LogInfo(ctx, "Profit/loss report created",
		slog.String("report_id", r.ReportID),
		slog.String("stall_id", r.StallID),
		slog.String("net", r.ProfitLoss.NetProfitLoss.StringFixed(domain.MoneyPlaces)))
	return r, nil
}

func (s *profitLossService) RecalculateReport(ctx context.Context, reportID string, req dto.RecalculateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(r *domain.ProfitLoss) error {
		if r.Status != domain.ReportDraft {
			return apperrors.NewInvalidTransitionError("profit/loss report", string(r.Status), "recalculate")
		}
		req.ProfitLossAdjustments.ApplyTo(r)
		if req.Refresh {
			if err := s.applySources(ctx, r); err != nil {
				return err
			}
		}
		return r.CalculateAll()
	})
}

func (s *profitLossService) DeleteReport(ctx context.Context, reportID string, expectedVersion *int64, actor domain.Actor) error {
	_, err := s.mutate(ctx, reportID, expectedVersion, actor, func(r *domain.ProfitLoss) error {
		if r.Status != domain.ReportDraft {
			return apperrors.NewInvalidTransitionError("profit/loss report", string(r.Status), "delete")
		}
		r.IsActive = false
		return nil
	})
	return err
}

func (s *profitLossService) SetOwnerShare(ctx context.Context, reportID string, req dto.OwnerShareRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(r *domain.ProfitLoss) error {
		return r.SetOwnerShare(req.Percentage)
	})
}

func (s *profitLossService) AddInvestorShare(ctx context.Context, reportID string, req dto.InvestorShareRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	inv, err := s.investorRepo.FindByID(ctx, req.InvestorID)
	if err != nil {
		return nil, err
	}
	pct := inv.ProfitSharePercentage
	if req.SharePercentage != nil {
		pct = *req.SharePercentage
	}
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(r *domain.ProfitLoss) error {
		if inv.StallID != r.StallID {
			return apperrors.NewValidationFailedError("investor " + inv.InvestorID + " does not belong to the report's stall")
		}
		_, err := r.AddInvestorShare(domain.InvestorShare{
			InvestorID:      inv.InvestorID,
			InvestorName:    inv.Name,
			SharePercentage: pct,
		})
		return err
	})
}

func (s *profitLossService) RemoveInvestorShare(ctx context.Context, reportID, investorID string, expectedVersion *int64, actor domain.Actor) (*domain.ProfitLoss, error) {
	return s.mutate(ctx, reportID, expectedVersion, actor, func(r *domain.ProfitLoss) error {
		return r.RemoveInvestorShare(investorID)
	})
}

func (s *profitLossService) FinalizeReport(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	now := s.Now()
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(r *domain.ProfitLoss) error {
		return r.Finalize(actor, now)
	})
}

func (s *profitLossService) ApproveReport(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	if err := s.RequireApprover(ctx, actor, "approve profit/loss reports"); err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(r *domain.ProfitLoss) error {
		return r.Approve(actor, req.Comments, now)
	})
}

func (s *profitLossService) PublishReport(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	if err := s.RequireApprover(ctx, actor, "publish profit/loss reports"); err != nil {
		return nil, err
	}
	now := s.Now()
	r, err := s.mutate(ctx, reportID, req.ExpectedVersion, actor, func(r *domain.ProfitLoss) error {
		return r.Publish(now)
	})
	if err != nil {
		return nil, err
	}
	s.Notify(ctx, domain.Notification{
		Kind:     domain.NotifyReportPublished,
		StallID:  r.StallID,
		RecordID: r.ReportID,
		Subject:  fmt.Sprintf("Profit/loss report %s to %s published", r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02")),
		Amount:   r.ProfitLoss.NetProfitLoss,
		Details: map[string]string{
			"status":           string(r.ProfitLoss.Status),
			"investorShare":    r.ProfitDistribution.TotalInvestorShare.StringFixed(domain.MoneyPlaces),
			"retainedEarnings": r.ProfitDistribution.RetainedEarnings.StringFixed(domain.MoneyPlaces),
		},
	})
	return r, nil
}

func (s *profitLossService) mutate(ctx context.Context, reportID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.ProfitLoss) error) (*domain.ProfitLoss, error) {
	r, err := mutate[domain.ProfitLoss](ctx, s.reportRepo, "profit/loss report", reportID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update profit/loss report", slog.String("report_id", reportID))
		return nil, err
	}
	return r, nil
}
