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

type payrollService struct {
	BaseService
	payrollRepo portsrepo.PayrollRepositoryFacade
}

// NewPayrollService creates the service running payroll calculation and approval.
func NewPayrollService(repo portsrepo.PayrollRepositoryFacade, opts ...Option) portssvc.PayrollSvcFacade {
	return &payrollService{
		BaseService: newBaseService(opts),
		payrollRepo: repo,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) GetPayroll(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	p, err := s.payrollRepo.FindByID(ctx, payrollID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get payroll", slog.String("payroll_id", payrollID))
		}
		return nil, err
	}
	return p, nil
}

func (s *payrollService) ListPayrolls(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payroll, error) {
	list, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payrolls", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	return list, nil
}

func (s *payrollService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, actor domain.Actor) (*domain.Payroll, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := s.EnsureStall(ctx, req.StallID); err != nil {
		return nil, err
	}

	p := domain.Payroll{
		PayrollID:    uuid.NewString(),
		StallID:      req.StallID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Designation:  req.Designation,
		Period: domain.PayrollPeriod{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			MonthYear: req.StartDate.Format("2006-01"),
		},
		PayrollComponents: req.PayrollComponents,
		Status:            domain.PayrollDraft,
		Notes:             req.Notes,
		IsActive:          true,
		Versioned:         domain.Versioned{Version: 1},
		AuditFields:       domain.NewAuditFields(actor.UserID, s.Now()),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.Calculate(); err != nil {
		return nil, err
	}

	if err := s.payrollRepo.Save(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save payroll", slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to create payroll: %w", err)
	}
	s.LogInfo(ctx, "Payroll created",
		slog.String("payroll_id", p.PayrollID),
		slog.String("employee_id", p.EmployeeID),
		slog.String("final_payment", p.FinalPayment.StringFixed(domain.MoneyPlaces)))
	return &p, nil
}

func (s *payrollService) UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, actor domain.Actor) (*domain.Payroll, error) {
	return s.mutate(ctx, payrollID, req.ExpectedVersion, actor, func(p *domain.Payroll) error {
		return p.UpdateComponents(req.PayrollComponents)
	})
}

func (s *payrollService) DeletePayroll(ctx context.Context, payrollID string, expectedVersion *int64, actor domain.Actor) error {
	_, err := s.mutate(ctx, payrollID, expectedVersion, actor, func(p *domain.Payroll) error {
		if p.Status != domain.PayrollDraft && p.Status != domain.PayrollCancelled {
			return apperrors.NewInvalidTransitionError("payroll", string(p.Status), "delete")
		}
		p.IsActive = false
		return nil
	})
	return err
}

func (s *payrollService) SubmitPayroll(ctx context.Context, payrollID string, req dto.TransitionRequest, actor domain.Actor) (*domain.Payroll, error) {
	return s.mutate(ctx, payrollID, req.ExpectedVersion, actor, func(p *domain.Payroll) error {
		return p.Submit()
	})
}

func (s *payrollService) ApprovePayroll(ctx context.Context, payrollID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.Payroll, error) {
	if err := s.RequireApprover(ctx, actor, "approve payroll"); err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutate(ctx, payrollID, req.ExpectedVersion, actor, func(p *domain.Payroll) error {
		return p.Approve(actor, req.Comments, now)
	})
}

func (s *payrollService) ProcessPayroll(ctx context.Context, payrollID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Payroll, error) {
	if err := s.RequireApprover(ctx, actor, "process payroll"); err != nil {
		return nil, err
	}
	now := s.Now()
	return s.mutate(ctx, payrollID, req.ExpectedVersion, actor, func(p *domain.Payroll) error {
		return p.ProcessPayment(actor, paymentInput(req), now)
	})
}

func (s *payrollService) MarkPayrollPaid(ctx context.Context, payrollID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Payroll, error) {
	if err := s.RequireApprover(ctx, actor, "pay payroll"); err != nil {
		return nil, err
	}
	var in *domain.PaymentInput
	if req.PaymentMode != "" {
		pi := paymentInput(req)
		in = &pi
	}
	now := s.Now()
	p, err := s.mutate(ctx, payrollID, req.ExpectedVersion, actor, func(p *domain.Payroll) error {
		return p.MarkAsPaid(actor, in, now)
	})
	if err != nil {
		return nil, err
	}
	s.Notify(ctx, domain.Notification{
		Kind:     domain.NotifyPayrollPaid,
		StallID:  p.StallID,
		RecordID: p.PayrollID,
		Subject:  "Salary paid to " + p.EmployeeName + " for " + p.Period.MonthYear,
		Amount:   p.FinalPayment,
		Details: map[string]string{
			"employeeID":  p.EmployeeID,
			"paymentMode": string(p.PaymentDetails.PaymentMode),
		},
	})
	return p, nil
}

func (s *payrollService) CancelPayroll(ctx context.Context, payrollID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Payroll, error) {
	now := s.Now()
	return s.mutate(ctx, payrollID, req.ExpectedVersion, actor, func(p *domain.Payroll) error {
		return p.Cancel(actor, req.Reason, now)
	})
}

func (s *payrollService) mutate(ctx context.Context, payrollID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.Payroll) error) (*domain.Payroll, error) {
	p, err := mutate[domain.Payroll](ctx, s.payrollRepo, "payroll", payrollID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update payroll", slog.String("payroll_id", payrollID))
		return nil, err
	}
	return p, nil
}

func paymentInput(req dto.PaymentRequest) domain.PaymentInput {
	return domain.PaymentInput{
		PaymentMode:    domain.PaymentMode(req.PaymentMode),
		TransactionRef: req.TransactionRef,
	}
}
