package services

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// InvestorReaderSvc defines read operations for investors
type InvestorReaderSvc interface {
	GetInvestor(ctx context.Context, investorID string) (*domain.Investor, error)
	ListInvestors(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Investor, error)
	// ProjectROI projects the investor's return over the given months.
	ProjectROI(ctx context.Context, investorID string, months int) (*domain.ROIProjection, error)
}

// InvestorWriterSvc defines write operations for investors
type InvestorWriterSvc interface {
	CreateInvestor(ctx context.Context, req dto.CreateInvestorRequest, actor domain.Actor) (*domain.Investor, error)
	// AddPayout appends to the investor's payout ledger and returns the new entry.
	AddPayout(ctx context.Context, investorID string, req dto.PayoutRequest, actor domain.Actor) (*domain.PayoutRecord, error)
	ChangeInvestorStatus(ctx context.Context, investorID string, req dto.InvestorStatusRequest, actor domain.Actor) (*domain.Investor, error)
}

// InvestorSvcFacade combines all investor service interfaces
type InvestorSvcFacade interface {
	InvestorReaderSvc
	InvestorWriterSvc
}
