package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

type ReportPeriodType string

const (
	PeriodDaily     ReportPeriodType = "daily"
	PeriodWeekly    ReportPeriodType = "weekly"
	PeriodMonthly   ReportPeriodType = "monthly"
	PeriodQuarterly ReportPeriodType = "quarterly"
	PeriodYearly    ReportPeriodType = "yearly"
	PeriodCustom    ReportPeriodType = "custom"
)

// IsValid reports whether the period type is known.
func (p ReportPeriodType) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly, PeriodCustom:
		return true
	}
	return false
}

// ProfitLossStatus is the report lifecycle.
type ProfitLossStatus string

const (
	ReportDraft     ProfitLossStatus = "draft"
	ReportFinalized ProfitLossStatus = "finalized"
	ReportApproved  ProfitLossStatus = "approved"
	ReportPublished ProfitLossStatus = "published"
)

// ProfitStatus classifies the bottom line.
type ProfitStatus string

const (
	StatusProfit    ProfitStatus = "profit"
	StatusLoss      ProfitStatus = "loss"
	StatusBreakeven ProfitStatus = "breakeven"
)

const topProductsLimit = 5

type ProductSales struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SalesBreakdown splits sales by order channel.
type SalesBreakdown struct {
	DineIn   decimal.Decimal `json:"dineIn"`
	Takeaway decimal.Decimal `json:"takeaway"`
	Delivery decimal.Decimal `json:"delivery"`
	Other    decimal.Decimal `json:"other"`
}

type RevenueSummary struct {
	TotalSales         decimal.Decimal `json:"totalSales"`
	TotalDiscountGiven decimal.Decimal `json:"totalDiscountGiven"`
	Breakdown          SalesBreakdown  `json:"breakdown"`
	TopProducts        []ProductSales  `json:"topProducts"`
	OrderCount         int             `json:"orderCount"`
}

type ExpenseSummary struct {
	TotalExpenses   decimal.Decimal                 `json:"totalExpenses"`
	CostOfGoodsSold decimal.Decimal                 `json:"costOfGoodsSold"`
	Breakdown       map[ExpenseType]decimal.Decimal `json:"breakdown"`
}

// OperatingDeductions are costs below gross profit.
type OperatingDeductions struct {
	Depreciation decimal.Decimal `json:"depreciation"`
	InterestPaid decimal.Decimal `json:"interestPaid"`
	Commission   decimal.Decimal `json:"commission"`
	Other        decimal.Decimal `json:"other"`
}

func (d OperatingDeductions) total() decimal.Decimal {
	return SumDecimals(d.Depreciation, d.InterestPaid, d.Commission, d.Other)
}

type TaxDetails struct {
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	TaxPayable    decimal.Decimal `json:"taxPayable"`
	TaxPaid       decimal.Decimal `json:"taxPaid"`
}

// ProfitLossSummary holds the fields derived by CalculateAll.
type ProfitLossSummary struct {
	GrossRevenue           decimal.Decimal `json:"grossRevenue"`
	TotalCost              decimal.Decimal `json:"totalCost"`
	GrossProfit            decimal.Decimal `json:"grossProfit"`
	OperatingExpenses      decimal.Decimal `json:"operatingExpenses"`
	NetProfitLoss          decimal.Decimal `json:"netProfitLoss"`
	ProfitMarginPercentage decimal.Decimal `json:"profitMarginPercentage"`
	Status                 ProfitStatus    `json:"status"`
}

type OwnerShare struct {
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

type InvestorShare struct {
	InvestorID      string          `json:"investorID"`
	InvestorName    string          `json:"investorName"`
	SharePercentage decimal.Decimal `json:"sharePercentage"`
	ShareAmount     decimal.Decimal `json:"shareAmount"`
}

type ProfitDistribution struct {
	OwnerShare         OwnerShare      `json:"ownerShare"`
	InvestorShares     []InvestorShare `json:"investorShares"`
	TotalInvestorShare decimal.Decimal `json:"totalInvestorShare"`
	RetainedEarnings   decimal.Decimal `json:"retainedEarnings"`
}

// ProfitLoss is a stall's profit and loss report for one period.
type ProfitLoss struct {
	ReportID           string              `json:"reportID"`
	StallID            string              `json:"stallID"`
	PeriodType         ReportPeriodType    `json:"periodType"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"`
	Revenue            RevenueSummary      `json:"revenue"`
	Expenses           ExpenseSummary      `json:"expenses"`
	Deductions         OperatingDeductions `json:"deductions"`
	TaxDetails         TaxDetails          `json:"taxDetails"`
	ProfitLoss         ProfitLossSummary   `json:"profitLoss"`
	ProfitDistribution ProfitDistribution  `json:"profitDistribution"`
	Status             ProfitLossStatus    `json:"status"`
	FinalizedBy        *Actor              `json:"finalizedBy,omitempty"`
	FinalizedAt        *time.Time          `json:"finalizedAt,omitempty"`
	ApprovalDetails    *ApprovalRecord     `json:"approvalDetails,omitempty"`
	PublishedAt        *time.Time          `json:"publishedAt,omitempty"`
	Notes              string              `json:"notes,omitempty"`
	IsActive           bool                `json:"isActive"`
	Versioned
	AuditFields
}

// Validate checks the report header.
func (r *ProfitLoss) Validate() error {
	if strings.TrimSpace(r.StallID) == "" {
		return fmt.Errorf("%w: stall id is required", apperrors.ErrValidation)
	}
	if !r.PeriodType.IsValid() {
		return fmt.Errorf("%w: unknown period type %q", apperrors.ErrValidation, r.PeriodType)
	}
	if r.StartDate.IsZero() || r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: report period is invalid", apperrors.ErrValidation)
	}
	for _, v := range []decimal.Decimal{
		r.Revenue.TotalSales, r.Revenue.TotalDiscountGiven,
		r.Expenses.TotalExpenses, r.Expenses.CostOfGoodsSold,
		r.Deductions.Depreciation, r.Deductions.InterestPaid, r.Deductions.Commission, r.Deductions.Other,
		r.TaxDetails.TaxPayable, r.TaxDetails.TaxPaid,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%w: report amounts cannot be negative", apperrors.ErrValidation)
		}
	}
	return nil
}

// Covers reports whether t falls inside the report period, both ends inclusive
// by day.
func (r *ProfitLoss) Covers(t time.Time) bool {
	return withinPeriod(r.StartDate, r.EndDate, t)
}

func withinPeriod(start, end, t time.Time) bool {
	return !t.Before(start) && t.Before(end.AddDate(0, 0, 1))
}

func (r *ProfitLoss) requireDraft(action string) error {
	if r.Status != ReportDraft {
		return apperrors.NewInvalidTransitionError("profit/loss report", string(r.Status), action)
	}
	return nil
}

// CalculateAll derives the summary and the distribution amounts. Only drafts
// can be recalculated.
func (r *ProfitLoss) CalculateAll() error {
	if err := r.requireDraft("recalculate"); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	r.ProfitLoss = r.summarize()
	r.ProfitDistribution = distribute(r.ProfitDistribution, r.ProfitLoss.NetProfitLoss)
	return nil
}

func (r *ProfitLoss) summarize() ProfitLossSummary {
	var s ProfitLossSummary
	s.GrossRevenue = RoundMoney(r.Revenue.TotalSales.Sub(r.Revenue.TotalDiscountGiven))
	s.TotalCost = RoundMoney(r.Expenses.TotalExpenses.Add(r.Expenses.CostOfGoodsSold))
	s.GrossProfit = s.GrossRevenue.Sub(s.TotalCost)
	s.OperatingExpenses = RoundMoney(r.Deductions.total())
	s.NetProfitLoss = RoundMoney(s.GrossProfit.Sub(s.OperatingExpenses).Sub(r.TaxDetails.TaxPayable))
	s.ProfitMarginPercentage = RoundMoney(SafeDiv(s.NetProfitLoss.Mul(hundred), s.GrossRevenue))
	switch s.NetProfitLoss.Sign() {
	case 1:
		s.Status = StatusProfit
	case -1:
		s.Status = StatusLoss
	default:
		s.Status = StatusBreakeven
	}
	return s
}

// distribute recomputes every share amount against net.
func distribute(d ProfitDistribution, net decimal.Decimal) ProfitDistribution {
	out := ProfitDistribution{
		OwnerShare: OwnerShare{
			Percentage: d.OwnerShare.Percentage,
			Amount:     RoundMoney(PercentOf(net, d.OwnerShare.Percentage)),
		},
		InvestorShares: make([]InvestorShare, len(d.InvestorShares)),
	}
	total := decimal.Zero
	for i, s := range d.InvestorShares {
		s.ShareAmount = RoundMoney(PercentOf(net, s.SharePercentage))
		out.InvestorShares[i] = s
		total = total.Add(s.ShareAmount)
	}
	out.TotalInvestorShare = total
	out.RetainedEarnings = net.Sub(out.OwnerShare.Amount).Sub(total)
	return out
}

func (r *ProfitLoss) requireShareEditable() error {
	if r.Status != ReportDraft && r.Status != ReportFinalized {
		return apperrors.NewInvalidTransitionError("profit/loss report", string(r.Status), "change the distribution of")
	}
	return nil
}

func (r *ProfitLoss) allocatedPercentage(excludeInvestor string) decimal.Decimal {
	total := r.ProfitDistribution.OwnerShare.Percentage
	for _, s := range r.ProfitDistribution.InvestorShares {
		if s.InvestorID != excludeInvestor {
			total = total.Add(s.SharePercentage)
		}
	}
	return total
}

// SetOwnerShare sets the owner's percentage of net profit.
func (r *ProfitLoss) SetOwnerShare(pct decimal.Decimal) error {
	if err := r.requireShareEditable(); err != nil {
		return err
	}
	if pct.IsNegative() {
		return fmt.Errorf("%w: owner share cannot be negative", apperrors.ErrValidation)
	}
	others := r.allocatedPercentage("").Sub(r.ProfitDistribution.OwnerShare.Percentage)
	if others.Add(pct).GreaterThan(hundred) {
		return fmt.Errorf("%w: owner and investor shares exceed 100%%", apperrors.ErrValidation)
	}
	d := r.ProfitDistribution
	d.OwnerShare.Percentage = pct
	r.ProfitDistribution = distribute(d, r.ProfitLoss.NetProfitLoss)
	return nil
}

// AddInvestorShare appends an investor's share of net profit.
func (r *ProfitLoss) AddInvestorShare(share InvestorShare) (InvestorShare, error) {
	if err := r.requireShareEditable(); err != nil {
		return InvestorShare{}, err
	}
	if strings.TrimSpace(share.InvestorID) == "" {
		return InvestorShare{}, fmt.Errorf("%w: investor id is required", apperrors.ErrValidation)
	}
	if !share.SharePercentage.IsPositive() || share.SharePercentage.GreaterThan(hundred) {
		return InvestorShare{}, fmt.Errorf("%w: share percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	if r.findInvestorShare(share.InvestorID) >= 0 {
		return InvestorShare{}, fmt.Errorf("%w: investor %s already has a share in this report", apperrors.ErrDuplicate, share.InvestorID)
	}
	if r.allocatedPercentage("").Add(share.SharePercentage).GreaterThan(hundred) {
		return InvestorShare{}, fmt.Errorf("%w: owner and investor shares exceed 100%%", apperrors.ErrValidation)
	}
	d := r.ProfitDistribution
	d.InvestorShares = append(slices.Clone(d.InvestorShares), share)
	r.ProfitDistribution = distribute(d, r.ProfitLoss.NetProfitLoss)
	return r.ProfitDistribution.InvestorShares[len(r.ProfitDistribution.InvestorShares)-1], nil
}

// RemoveInvestorShare drops an investor from the distribution.
func (r *ProfitLoss) RemoveInvestorShare(investorID string) error {
	if err := r.requireShareEditable(); err != nil {
		return err
	}
	i := r.findInvestorShare(investorID)
	if i < 0 {
		return apperrors.NewNotFoundError("investor share " + investorID + " not found")
	}
	d := r.ProfitDistribution
	d.InvestorShares = slices.Delete(slices.Clone(d.InvestorShares), i, i+1)
	r.ProfitDistribution = distribute(d, r.ProfitLoss.NetProfitLoss)
	return nil
}

func (r *ProfitLoss) findInvestorShare(investorID string) int {
	return slices.IndexFunc(r.ProfitDistribution.InvestorShares, func(s InvestorShare) bool {
		return s.InvestorID == investorID
	})
}

// ApplyExpenses rebuilds the expense totals from the approved and paid
// expenses of this stall dated inside the period.
func (r *ProfitLoss) ApplyExpenses(expenses []Expense) error {
	if err := r.requireDraft("apply expenses to"); err != nil {
		return err
	}
	breakdown := make(map[ExpenseType]decimal.Decimal)
	total := decimal.Zero
	for _, e := range expenses {
		if !e.IsActive || e.StallID != r.StallID || !e.Status.CountsAsCost() || !r.Covers(e.ExpenseDate) {
			continue
		}
		breakdown[e.ExpenseType] = breakdown[e.ExpenseType].Add(e.TotalWithTax)
		total = total.Add(e.TotalWithTax)
	}
	r.Expenses.Breakdown = breakdown
	r.Expenses.TotalExpenses = total
	return nil
}

// ApplyOrders rebuilds the revenue totals from this stall's delivered orders
// placed inside the period.
func (r *ProfitLoss) ApplyOrders(orders []Order) error {
	if err := r.requireDraft("apply orders to"); err != nil {
		return err
	}
	var rev RevenueSummary
	products := map[string]*ProductSales{}
	for _, o := range orders {
		if o.StallID != r.StallID || o.Status != OrderDelivered || !r.Covers(o.PlacedAt) {
			continue
		}
		rev.OrderCount++
		rev.TotalSales = rev.TotalSales.Add(o.Subtotal)
		rev.TotalDiscountGiven = rev.TotalDiscountGiven.Add(o.Discount)
		switch o.OrderType {
		case OrderDineIn:
			rev.Breakdown.DineIn = rev.Breakdown.DineIn.Add(o.Subtotal)
		case OrderTakeaway:
			rev.Breakdown.Takeaway = rev.Breakdown.Takeaway.Add(o.Subtotal)
		case OrderDelivery:
			rev.Breakdown.Delivery = rev.Breakdown.Delivery.Add(o.Subtotal)
		default:
			rev.Breakdown.Other = rev.Breakdown.Other.Add(o.Subtotal)
		}
		for _, it := range o.Items {
			p, ok := products[it.ProductID]
			if !ok {
				p = &ProductSales{ProductID: it.ProductID, ProductName: it.Name}
				products[it.ProductID] = p
			}
			p.Quantity += it.Quantity
			p.Revenue = p.Revenue.Add(it.LineTotal())
		}
	}
	for _, p := range products {
		rev.TopProducts = append(rev.TopProducts, *p)
	}
	slices.SortFunc(rev.TopProducts, func(a, b ProductSales) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return strings.Compare(a.ProductID, b.ProductID)
	})
	if len(rev.TopProducts) > topProductsLimit {
		rev.TopProducts = rev.TopProducts[:topProductsLimit]
	}
	r.Revenue = rev
	return nil
}

// Finalize recalculates and locks the financial fields.
func (r *ProfitLoss) Finalize(actor Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := r.requireDraft("finalize"); err != nil {
		return err
	}
	if err := r.CalculateAll(); err != nil {
		return err
	}
	r.Status = ReportFinalized
	r.FinalizedBy = &actor
	r.FinalizedAt = timePtr(now)
	return nil
}

// Approve accepts a finalized report.
func (r *ProfitLoss) Approve(actor Actor, comments string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if r.Status != ReportFinalized {
		return apperrors.NewInvalidTransitionError("profit/loss report", string(r.Status), "approve")
	}
	r.Status = ReportApproved
	r.ApprovalDetails = &ApprovalRecord{ApprovedBy: actor, ApprovedAt: now, Comments: comments}
	return nil
}

// Publish releases an approved report to investors.
func (r *ProfitLoss) Publish(now time.Time) error {
	if r.Status != ReportApproved {
		return apperrors.NewInvalidTransitionError("profit/loss report", string(r.Status), "publish")
	}
	r.Status = ReportPublished
	r.PublishedAt = timePtr(now)
	return nil
}
