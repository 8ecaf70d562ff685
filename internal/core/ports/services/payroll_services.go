package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// PayrollReaderSvc defines read operations for payroll records
type PayrollReaderSvc interface {
	GetPayroll(ctx context.Context, payrollID string) (*domain.Payroll, error)
	ListPayrolls(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payroll, error)
}

// PayrollWriterSvc creates and edits draft payroll records
type PayrollWriterSvc interface {
	CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, actor domain.Actor) (*domain.Payroll, error)
	UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, actor domain.Actor) (*domain.Payroll, error)
	DeletePayroll(ctx context.Context, payrollID string, expectedVersion *int64, actor domain.Actor) error
}

// PayrollWorkflowSvc runs the payroll approval and payment workflow
type PayrollWorkflowSvc interface {
	SubmitPayroll(ctx context.Context, payrollID string, req dto.TransitionRequest, actor domain.Actor) (*domain.Payroll, error)
	ApprovePayroll(ctx context.Context, payrollID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.Payroll, error)
	ProcessPayroll(ctx context.Context, payrollID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Payroll, error)
	MarkPayrollPaid(ctx context.Context, payrollID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Payroll, error)
	CancelPayroll(ctx context.Context, payrollID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Payroll, error)
}

// PayrollSvcFacade combines all payroll service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
	PayrollWorkflowSvc
}
