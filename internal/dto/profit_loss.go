package dto

import (
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodRequest identifies the period of a report.
type ReportPeriodRequest struct {
	StallID    string    `json:"stallID" binding:"required"`
	PeriodType string    `json:"periodType" binding:"required,oneof=daily weekly monthly quarterly yearly custom"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
}

// ProfitLossAdjustments are the figures entered by hand rather than derived
// from orders and expenses.
type ProfitLossAdjustments struct {
	CostOfGoodsSold decimal.Decimal            `json:"costOfGoodsSold" binding:"gte=0"`
	Deductions      domain.OperatingDeductions `json:"deductions"`
	TaxDetails      domain.TaxDetails          `json:"taxDetails"`
	Notes           string                     `json:"notes" binding:"max=1000"`
}

// ApplyTo copies the adjustments onto the report.
func (a ProfitLossAdjustments) ApplyTo(r *domain.ProfitLoss) {
	r.Expenses.CostOfGoodsSold = a.CostOfGoodsSold
	r.Deductions = a.Deductions
	r.TaxDetails = a.TaxDetails
	r.Notes = a.Notes
}

// CreateProfitLossRequest records a report whose revenue and expenses are
// entered by hand.
type CreateProfitLossRequest struct {
	ReportPeriodRequest
	Revenue       domain.RevenueSummary `json:"revenue"`
	TotalExpenses decimal.Decimal       `json:"totalExpenses" binding:"gte=0"`
	ProfitLossAdjustments
}

// GenerateProfitLossRequest builds a report from the stall's delivered orders
// and approved expenses of the period.
type GenerateProfitLossRequest struct {
	ReportPeriodRequest
	ProfitLossAdjustments
	OwnerSharePercentage *decimal.Decimal `json:"ownerSharePercentage" binding:"omitempty,gte=0,lte=100"`
	// IncludeInvestors adds every active investor of the stall with their
	// agreed profit share.
	IncludeInvestors bool `json:"includeInvestors"`
}

// RecalculateProfitLossRequest replaces the adjustments of a draft and
// recalculates it, optionally pulling fresh orders and expenses.
type RecalculateProfitLossRequest struct {
	ProfitLossAdjustments
	Refresh bool `json:"refresh"`
	VersionGuard
}

// OwnerShareRequest sets the owner's share.
type OwnerShareRequest struct {
	Percentage decimal.Decimal `json:"percentage" binding:"gte=0,lte=100"`
	VersionGuard
}

// InvestorShareRequest adds an investor to the distribution. The share
// defaults to the investor's agreed profit share.
type InvestorShareRequest struct {
	InvestorID      string           `json:"investorID" binding:"required"`
	SharePercentage *decimal.Decimal `json:"sharePercentage" binding:"omitempty,gt=0,lte=100"`
	VersionGuard
}
