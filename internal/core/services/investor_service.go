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

type investorService struct {
	BaseService
	investorRepo portsrepo.InvestorRepositoryFacade
}

// NewInvestorService creates the service projecting returns and recording payouts.
func NewInvestorService(repo portsrepo.InvestorRepositoryFacade, opts ...Option) portssvc.InvestorSvcFacade {
	return &investorService{
		BaseService:  newBaseService(opts),
		investorRepo: repo,
	}
}

var _ portssvc.InvestorSvcFacade = (*investorService)(nil)

func (s *investorService) GetInvestor(ctx context.Context, investorID string) (*domain.Investor, error) {
	inv, err := s.investorRepo.FindByID(ctx, investorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get investor", slog.String("investor_id", investorID))
		}
		return nil, err
	}
	return inv, nil
}

func (s *investorService) ListInvestors(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Investor, error) {
	list, err := s.investorRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investors", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return list, nil
}

func (s *investorService) ProjectROI(ctx context.Context, investorID string, months int) (*domain.ROIProjection, error) {
	inv, err := s.GetInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}
	proj, err := inv.CalculateROI(months)
	if err != nil {
		return nil, err
	}
	return &proj, nil
}

func (s *investorService) CreateInvestor(ctx context.Context, req dto.CreateInvestorRequest, actor domain.Actor) (*domain.Investor, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := s.RequireApprover(ctx, actor, "register investors"); err != nil {
		return nil, err
	}
	if err := s.EnsureStall(ctx, req.StallID); err != nil {
		return nil, err
	}

	inv := domain.Investor{
		InvestorID:            uuid.NewString(),
		StallID:               req.StallID,
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		InvestmentAmount:      req.InvestmentAmount,
		InvestmentDate:        req.InvestmentDate,
		ProfitSharePercentage: req.ProfitSharePercentage,
		ExpectedROI:           req.ExpectedROI,
		ROICalculationBasis:   domain.ROIBasis(req.ROICalculationBasis),
		PayoutRecords:         []domain.PayoutRecord{},
		Status:                domain.InvestorActive,
		IsActive:              true,
		Versioned:             domain.Versioned{Version: 1},
		AuditFields:           domain.NewAuditFields(actor.UserID, s.Now()),
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.investorRepo.Save(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save investor", slog.String("stall_id", req.StallID))
		return nil, fmt.Errorf("failed to create investor: %w", err)
	}
	s.LogInfo(ctx, "Investor registered", slog.String("investor_id", inv.InvestorID), slog.String("stall_id", inv.StallID))
	return &inv, nil
}

func (s *investorService) AddPayout(ctx context.Context, investorID string, req dto.PayoutRequest, actor domain.Actor) (*domain.PayoutRecord, error) {
	if err := s.RequireApprover(ctx, actor, "record investor payouts"); err != nil {
		return nil, err
	}
	in := domain.PayoutInput{
		PayoutID:         uuid.NewString(),
		PeriodStart:      req.PeriodStart,
		PeriodEnd:        req.PeriodEnd,
		BaseProfitAmount: req.BaseProfitAmount,
		SharePercentage:  req.SharePercentage,
		TaxDeducted:      req.TaxDeducted,
		PaymentMode:      domain.PaymentMode(req.PaymentMode),
		TransactionRef:   req.TransactionRef,
		Notes:            req.Notes,
	}
	now := s.Now()
	var rec domain.PayoutRecord
	inv, err := s.mutate(ctx, investorID, req.ExpectedVersion, actor, func(i *domain.Investor) error {
		var err error
		rec, err = i.AddPayout(in, actor, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Investor payout recorded",
		slog.String("investor_id", investorID),
		slog.String("payout_id", rec.PayoutID),
		slog.String("net_amount", rec.NetAmount.StringFixed(domain.MoneyPlaces)))
	s.Notify(ctx, domain.Notification{
		Kind:     domain.NotifyInvestorPayout,
		StallID:  inv.StallID,
		RecordID: inv.InvestorID,
		Subject:  "Profit share paid to " + inv.Name,
		Amount:   rec.NetAmount,
		Details: map[string]string{
			"payoutID":    rec.PayoutID,
			"periodStart": rec.PeriodStart.Format("2006-01-02"),
			"periodEnd":   rec.PeriodEnd.Format("2006-01-02"),
		},
	})
	return &rec, nil
}

func (s *investorService) ChangeInvestorStatus(ctx context.Context, investorID string, req dto.InvestorStatusRequest, actor domain.Actor) (*domain.Investor, error) {
	if err := s.RequireApprover(ctx, actor, "change investor status"); err != nil {
		return nil, err
	}
	return s.mutate(ctx, investorID, req.ExpectedVersion, actor, func(i *domain.Investor) error {
		return i.ChangeStatus(domain.InvestorStatus(req.Status), req.Reason)
	})
}

func (s *investorService) mutate(ctx context.Context, investorID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.Investor) error) (*domain.Investor, error) {
	inv, err := mutate[domain.Investor](ctx, s.investorRepo, "investor", investorID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update investor", slog.String("investor_id", investorID))
		return nil, err
	}
	return inv, nil
}
