package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvestorRequest defines the data needed to register an investor.
type CreateInvestorRequest struct {
	StallID               string          `json:"stallID" binding:"required"`
	Name                  string          `json:"name" binding:"required"`
	Email                 string          `json:"email" binding:"omitempty,email"`
	Phone                 string          `json:"phone"`
	InvestmentAmount      decimal.Decimal `json:"investmentAmount" binding:"gt=0"`
	InvestmentDate        time.Time       `json:"investmentDate" binding:"required"`
	ProfitSharePercentage decimal.Decimal `json:"profitSharePercentage" binding:"gte=0.1,lte=100"`
	ExpectedROI           decimal.Decimal `json:"expectedROI" binding:"gte=0"`
	ROICalculationBasis   string          `json:"roiCalculationBasis" binding:"required,oneof=monthly quarterly yearly"`
}

// ROIParams defines the query parameters of an ROI projection.
type ROIParams struct {
	Months int `form:"months" binding:"required,gt=0,lte=600"`
}

// PayoutRequest appends a payout to an investor's ledger.
type PayoutRequest struct {
	PeriodStart      time.Time        `json:"periodStart" binding:"required"`
	PeriodEnd        time.Time        `json:"periodEnd" binding:"required,gtefield=PeriodStart"`
	BaseProfitAmount decimal.Decimal  `json:"baseProfitAmount" binding:"gte=0"`
	SharePercentage  *decimal.Decimal `json:"sharePercentage" binding:"omitempty,gt=0,lte=100"`
	TaxDeducted      decimal.Decimal  `json:"taxDeducted" binding:"gte=0"`
	PaymentMode      string           `json:"paymentMode" binding:"required,oneof=cash bank-transfer upi cheque card"`
	TransactionRef   string           `json:"transactionRef"`
	Notes            string           `json:"notes"`
	VersionGuard
}

// InvestorStatusRequest moves an investor between statuses.
type InvestorStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active completed cancelled on-hold"`
	Reason string `json:"reason" binding:"max=500"`
	VersionGuard
}
