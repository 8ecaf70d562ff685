package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ROIBasis is the period an investor's expected ROI is quoted for.
type ROIBasis string

const (
	ROIMonthly   ROIBasis = "monthly"
	ROIQuarterly ROIBasis = "quarterly"
	ROIYearly    ROIBasis = "yearly"
)

// Months returns the number of months in one basis period, or 0 when unknown.
func (b ROIBasis) Months() int {
	switch b {
	case ROIMonthly:
		return 1
	case ROIQuarterly:
		return 3
	case ROIYearly:
		return 12
	}
	return 0
}

type InvestorStatus string

const (
	InvestorActive    InvestorStatus = "active"
	InvestorCompleted InvestorStatus = "completed"
	InvestorCancelled InvestorStatus = "cancelled"
	InvestorOnHold    InvestorStatus = "on-hold"
)

var (
	minSharePercentage = decimal.RequireFromString("0.1")
	maxSharePercentage = decimal.NewFromInt(100)
)

// PayoutRecord is an immutable entry in an investor's payout ledger.
type PayoutRecord struct {
	PayoutID         string          `json:"payoutID"`
	PayoutDate       time.Time       `json:"payoutDate"`
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodEnd        time.Time       `json:"periodEnd"`
	BaseProfitAmount decimal.Decimal `json:"baseProfitAmount"`
	SharePercentage  decimal.Decimal `json:"sharePercentage"`
	GrossAmount      decimal.Decimal `json:"grossAmount"`
	TaxDeducted      decimal.Decimal `json:"taxDeducted"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	PaymentMode      PaymentMode     `json:"paymentMode"`
	TransactionRef   string          `json:"transactionRef,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	RecordedBy       Actor           `json:"recordedBy"`
}

// PayoutInput describes a payout to append. SharePercentage defaults to the
// investor's profit share when nil.
type PayoutInput struct {
	PayoutID         string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	BaseProfitAmount decimal.Decimal
	SharePercentage  *decimal.Decimal
	TaxDeducted      decimal.Decimal
	PaymentMode      PaymentMode
	TransactionRef   string
	Notes            string
}

// ROIProjection is the result of CalculateROI.
type ROIProjection struct {
	Months              int             `json:"months"`
	BasisMonths         int             `json:"basisMonths"`
	PeriodProfitShare   decimal.Decimal `json:"periodProfitShare"`
	ExpectedReturn      decimal.Decimal `json:"expectedReturn"`
	TotalProfitPaid     decimal.Decimal `json:"totalProfitPaid"`
	ActualROIPercentage decimal.Decimal `json:"actualROIPercentage"`
}

// Investor is a party owed a share of a stall's profit.
type Investor struct {
	InvestorID            string          `json:"investorID"`
	StallID               string          `json:"stallID"`
	Name                  string          `json:"name"`
	Email                 string          `json:"email"`
	Phone                 string          `json:"phone"`
	InvestmentAmount      decimal.Decimal `json:"investmentAmount"`
	InvestmentDate        time.Time       `json:"investmentDate"`
	ProfitSharePercentage decimal.Decimal `json:"profitSharePercentage"`
	ExpectedROI           decimal.Decimal `json:"expectedROI"` // percent per basis period
	ROICalculationBasis   ROIBasis        `json:"roiCalculationBasis"`
	PayoutRecords         []PayoutRecord  `json:"payoutRecords"`
	TotalProfitPaid       decimal.Decimal `json:"totalProfitPaid"`
	LastPayoutDate        *time.Time      `json:"lastPayoutDate,omitempty"`
	Status                InvestorStatus  `json:"status"`
	StatusReason          string          `json:"statusReason,omitempty"`
	IsActive              bool            `json:"isActive"`
	Versioned
	AuditFields
}

// Validate checks the investment terms.
func (i *Investor) Validate() error {
	if strings.TrimSpace(i.Name) == "" || strings.TrimSpace(i.StallID) == "" {
		return fmt.Errorf("%w: investor name and stall id are required", apperrors.ErrValidation)
	}
	if !i.InvestmentAmount.IsPositive() {
		return fmt.Errorf("%w: investment amount must be positive", apperrors.ErrValidation)
	}
	if i.ProfitSharePercentage.LessThan(minSharePercentage) || i.ProfitSharePercentage.GreaterThan(maxSharePercentage) {
		return fmt.Errorf("%w: profit share percentage must be between 0.1 and 100", apperrors.ErrValidation)
	}
	if i.ExpectedROI.IsNegative() {
		return fmt.Errorf("%w: expected ROI cannot be negative", apperrors.ErrValidation)
	}
	if i.ROICalculationBasis.Months() == 0 {
		return fmt.Errorf("%w: unknown ROI basis %q", apperrors.ErrValidation, i.ROICalculationBasis)
	}
	return nil
}

// CalculateROI projects the investor's return over months, pro-rated against
// the ROI basis period.
func (i *Investor) CalculateROI(months int) (ROIProjection, error) {
	if months <= 0 {
		return ROIProjection{}, fmt.Errorf("%w: months must be positive", apperrors.ErrValidation)
	}
	basis := i.ROICalculationBasis.Months()
	if basis == 0 {
		return ROIProjection{}, fmt.Errorf("%w: unknown ROI basis %q", apperrors.ErrValidation, i.ROICalculationBasis)
	}
	periodShare := PercentOf(PercentOf(i.InvestmentAmount, i.ProfitSharePercentage), i.ExpectedROI)
	expected := periodShare.Mul(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(int64(basis)))
	return ROIProjection{
		Months:              months,
		BasisMonths:         basis,
		PeriodProfitShare:   RoundMoney(periodShare),
		ExpectedReturn:      RoundMoney(expected),
		TotalProfitPaid:     i.TotalProfitPaid,
		ActualROIPercentage: RoundMoney(SafeDiv(i.TotalProfitPaid.Mul(hundred), i.InvestmentAmount)),
	}, nil
}

// AddPayout appends a ledger entry and advances the aggregate counters.
// Existing entries are never modified.
func (i *Investor) AddPayout(in PayoutInput, actor Actor, now time.Time) (PayoutRecord, error) {
	if err := actor.Validate(); err != nil {
		return PayoutRecord{}, err
	}
	if i.Status != InvestorActive {
		return PayoutRecord{}, apperrors.NewInvalidTransitionError("investor", string(i.Status), "record a payout for")
	}
	if strings.TrimSpace(in.PayoutID) == "" {
		return PayoutRecord{}, fmt.Errorf("%w: payout id is required", apperrors.ErrValidation)
	}
	if in.BaseProfitAmount.IsNegative() || in.TaxDeducted.IsNegative() {
		return PayoutRecord{}, fmt.Errorf("%w: profit and tax amounts cannot be negative", apperrors.ErrValidation)
	}
	if !in.PaymentMode.IsValid() {
		return PayoutRecord{}, fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, in.PaymentMode)
	}
	if in.PeriodEnd.Before(in.PeriodStart) {
		return PayoutRecord{}, fmt.Errorf("%w: payout period end is before start", apperrors.ErrValidation)
	}
	share := i.ProfitSharePercentage
	if in.SharePercentage != nil {
		share = *in.SharePercentage
	}
	if share.LessThan(minSharePercentage) || share.GreaterThan(maxSharePercentage) {
		return PayoutRecord{}, fmt.Errorf("%w: share percentage must be between 0.1 and 100", apperrors.ErrValidation)
	}
	gross := RoundMoney(PercentOf(in.BaseProfitAmount, share))
	net := gross.Sub(in.TaxDeducted)
	if net.IsNegative() {
		return PayoutRecord{}, fmt.Errorf("%w: tax deducted %s exceeds the gross payout %s",
			apperrors.ErrValidation, in.TaxDeducted.StringFixed(MoneyPlaces), gross.StringFixed(MoneyPlaces))
	}

	rec := PayoutRecord{
		PayoutID:         in.PayoutID,
		PayoutDate:       now,
		PeriodStart:      in.PeriodStart,
		PeriodEnd:        in.PeriodEnd,
		BaseProfitAmount: in.BaseProfitAmount,
		SharePercentage:  share,
		GrossAmount:      gross,
		TaxDeducted:      in.TaxDeducted,
		NetAmount:        net,
		PaymentMode:      in.PaymentMode,
		TransactionRef:   in.TransactionRef,
		Notes:            in.Notes,
		RecordedBy:       actor,
	}
	records := make([]PayoutRecord, len(i.PayoutRecords), len(i.PayoutRecords)+1)
	copy(records, i.PayoutRecords)
	i.PayoutRecords = append(records, rec)
	i.TotalProfitPaid = i.TotalProfitPaid.Add(net)
	i.LastPayoutDate = timePtr(now)
	return rec, nil
}

// ChangeStatus moves the investor between active, on-hold, completed and
// cancelled. Completed and cancelled are final.
func (i *Investor) ChangeStatus(to InvestorStatus, reason string) error {
	from := i.Status
	allowed := false
	switch from {
	case InvestorActive:
		allowed = to == InvestorOnHold || to == InvestorCompleted || to == InvestorCancelled
	case InvestorOnHold:
		allowed = to == InvestorActive || to == InvestorCompleted || to == InvestorCancelled
	}
	if !allowed {
		return apperrors.NewInvalidTransitionError("investor", string(from), "change status of")
	}
	if to == InvestorOnHold || to == InvestorCancelled {
		if err := requireReason(reason, "status change reason"); err != nil {
			return err
		}
	}
	i.Status = to
	i.StatusReason = reason
	return nil
}
