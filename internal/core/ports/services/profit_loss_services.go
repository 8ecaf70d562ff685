package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// ProfitLossReaderSvc defines read operations for profit/loss reports
type ProfitLossReaderSvc interface {
	GetReport(ctx context.Context, reportID string) (*domain.ProfitLoss, error)
	ListReports(ctx context.Context, filter portsrepo.ListFilter) ([]domain.ProfitLoss, error)
}

// ProfitLossWriterSvc builds and recalculates draft reports
type ProfitLossWriterSvc interface {
	// CreateReport records a report from hand-entered figures.
	CreateReport(ctx context.Context, req dto.CreateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error)
	// GenerateReport builds a report from the stall's orders and expenses.
	GenerateReport(ctx context.Context, req dto.GenerateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error)
	RecalculateReport(ctx context.Context, reportID string, req dto.RecalculateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error)
	DeleteReport(ctx context.Context, reportID string, expectedVersion *int64, actor domain.Actor) error
}

// ProfitDistributionSvc edits how net profit is shared
type ProfitDistributionSvc interface {
	SetOwnerShare(ctx context.Context, reportID string, req dto.OwnerShareRequest, actor domain.Actor) (*domain.ProfitLoss, error)
	AddInvestorShare(ctx context.Context, reportID string, req dto.InvestorShareRequest, actor domain.Actor) (*domain.ProfitLoss, error)
	RemoveInvestorShare(ctx context.Context, reportID, investorID string, expectedVersion *int64, actor domain.Actor) (*domain.ProfitLoss, error)
}

// ProfitLossWorkflowSvc runs the report lifecycle
type ProfitLossWorkflowSvc interface {
	FinalizeReport(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.ProfitLoss, error)
	ApproveReport(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.ProfitLoss, error)
	PublishReport(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.ProfitLoss, error)
}

// ProfitLossSvcFacade combines all profit/loss service interfaces
type ProfitLossSvcFacade interface {
	ProfitLossReaderSvc
	ProfitLossWriterSvc
	ProfitDistributionSvc
	ProfitLossWorkflowSvc
}
