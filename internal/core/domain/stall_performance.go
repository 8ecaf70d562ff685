package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

type PerformanceStatus string

const (
	PerformanceDraft     PerformanceStatus = "draft"
	PerformanceSubmitted PerformanceStatus = "submitted"
	PerformanceReviewed  PerformanceStatus = "reviewed"
	PerformanceApproved  PerformanceStatus = "approved"
	PerformanceArchived  PerformanceStatus = "archived"
)

// Score weights out of 100.
var (
	salesWeight      = decimal.NewFromInt(40)
	ratingWeight     = decimal.NewFromInt(30)
	wastageWeight    = decimal.NewFromInt(15)
	attendanceWeight = decimal.NewFromInt(15)

	maxRating        = decimal.NewFromInt(5)
	wastageTolerance = decimal.NewFromInt(10) // percent of sales at which the wastage component reaches zero
	one              = decimal.NewFromInt(1)
)

type SalesMetrics struct {
	TotalSales        decimal.Decimal `json:"totalSales"`
	TargetSales       decimal.Decimal `json:"targetSales"`
	OrderCount        int             `json:"orderCount"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

type FeedbackMetrics struct {
	AverageRating decimal.Decimal `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
	Complaints    int             `json:"complaints"`
}

type WastageMetrics struct {
	WastageCost       decimal.Decimal `json:"wastageCost"`
	WastagePercentage decimal.Decimal `json:"wastagePercentage"`
}

type EmployeeMetrics struct {
	TotalStaff           int             `json:"totalStaff"`
	AttendancePercentage decimal.Decimal `json:"attendancePercentage"`
}

// ScoreBreakdown shows how each metric contributed to the score.
type ScoreBreakdown struct {
	Sales      decimal.Decimal `json:"sales"`
	Rating     decimal.Decimal `json:"rating"`
	Wastage    decimal.Decimal `json:"wastage"`
	Attendance decimal.Decimal `json:"attendance"`
}

// StallPerformance is a stall's scorecard for one period.
type StallPerformance struct {
	ReportID         string            `json:"reportID"`
	StallID          string            `json:"stallID"`
	PeriodType       ReportPeriodType  `json:"periodType"`
	StartDate        time.Time         `json:"startDate"`
	EndDate          time.Time         `json:"endDate"`
	Sales            SalesMetrics      `json:"sales"`
	Feedback         FeedbackMetrics   `json:"feedback"`
	Wastage          WastageMetrics    `json:"wastage"`
	Employees        EmployeeMetrics   `json:"employees"`
	ScoreBreakdown   ScoreBreakdown    `json:"scoreBreakdown"`
	PerformanceScore decimal.Decimal   `json:"performanceScore"`
	Grade            string            `json:"grade"`
	Status           PerformanceStatus `json:"status"`
	SubmittedBy      *Actor            `json:"submittedBy,omitempty"`
	ReviewedBy       *ApprovalRecord   `json:"reviewedBy,omitempty"`
	ApprovalDetails  *ApprovalRecord   `json:"approvalDetails,omitempty"`
	ArchivedAt       *time.Time        `json:"archivedAt,omitempty"`
	IsActive         bool              `json:"isActive"`
	Versioned
	AuditFields
}

// Validate checks the metric ranges.
func (p *StallPerformance) Validate() error {
	if strings.TrimSpace(p.StallID) == "" {
		return fmt.Errorf("%w: stall id is required", apperrors.ErrValidation)
	}
	if !p.PeriodType.IsValid() || p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: report period is invalid", apperrors.ErrValidation)
	}
	if p.Sales.TotalSales.IsNegative() || p.Sales.TargetSales.IsNegative() || p.Wastage.WastageCost.IsNegative() {
		return fmt.Errorf("%w: sales, target and wastage cannot be negative", apperrors.ErrValidation)
	}
	if p.Sales.OrderCount < 0 || p.Feedback.TotalReviews < 0 || p.Feedback.Complaints < 0 || p.Employees.TotalStaff < 0 {
		return fmt.Errorf("%w: counters cannot be negative", apperrors.ErrValidation)
	}
	if r := p.Feedback.AverageRating; r.IsNegative() || r.GreaterThan(maxRating) {
		return fmt.Errorf("%w: average rating must be between 0 and 5", apperrors.ErrValidation)
	}
	if a := p.Employees.AttendancePercentage; a.IsNegative() || a.GreaterThan(hundred) {
		return fmt.Errorf("%w: attendance percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

// CalculateScore derives averages, the weighted score and the grade. Only
// drafts are recalculated.
func (p *StallPerformance) CalculateScore() error {
	if p.Status != PerformanceDraft {
		return apperrors.NewInvalidTransitionError("performance report", string(p.Status), "recalculate")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	sales := p.Sales
	sales.AverageOrderValue = RoundMoney(SafeDiv(sales.TotalSales, decimal.NewFromInt(int64(sales.OrderCount))))
	wastage := p.Wastage
	wastage.WastagePercentage = RoundMoney(SafeDiv(wastage.WastageCost.Mul(hundred), sales.TotalSales))

	var b ScoreBreakdown
	switch {
	case sales.TargetSales.IsPositive():
		b.Sales = Clamp(sales.TotalSales.Div(sales.TargetSales), decimal.Zero, one).Mul(salesWeight)
	case sales.TotalSales.IsPositive():
		b.Sales = salesWeight
	default:
		b.Sales = decimal.Zero
	}
	b.Rating = p.Feedback.AverageRating.Div(maxRating).Mul(ratingWeight)
	if sales.TotalSales.IsPositive() || wastage.WastageCost.IsPositive() {
		ratio := Clamp(wastage.WastagePercentage.Div(wastageTolerance), decimal.Zero, one)
		if !sales.TotalSales.IsPositive() {
			ratio = one
		}
		b.Wastage = one.Sub(ratio).Mul(wastageWeight)
	} else {
		b.Wastage = wastageWeight
	}
	b.Attendance = p.Employees.AttendancePercentage.Div(hundred).Mul(attendanceWeight)

	b.Sales, b.Rating, b.Wastage, b.Attendance = RoundMoney(b.Sales), RoundMoney(b.Rating), RoundMoney(b.Wastage), RoundMoney(b.Attendance)
	score := SumDecimals(b.Sales, b.Rating, b.Wastage, b.Attendance)

	p.Sales = sales
	p.Wastage = wastage
	p.ScoreBreakdown = b
	p.PerformanceScore = score
	p.Grade = gradeFor(score)
	return nil
}

// ApplyOrders fills the sales counters from this stall's delivered orders
// placed inside the period. Sales are counted net of discounts. The target
// is left untouched.
func (p *StallPerformance) ApplyOrders(orders []Order) error {
	if p.Status != PerformanceDraft {
		return apperrors.NewInvalidTransitionError("performance report", string(p.Status), "apply orders to")
	}
	total := decimal.Zero
	count := 0
	for _, o := range orders {
		if o.StallID != p.StallID || o.Status != OrderDelivered || !withinPeriod(p.StartDate, p.EndDate, o.PlacedAt) {
			continue
		}
		total = total.Add(o.Subtotal.Sub(o.Discount))
		count++
	}
	p.Sales.TotalSales = RoundMoney(total)
	p.Sales.OrderCount = count
	return nil
}

func gradeFor(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(85)):
		return "A"
	case score.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return "B"
	case score.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return "C"
	default:
		return "D"
	}
}

// Submit recalculates and sends the report for review.
func (p *StallPerformance) Submit(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := p.CalculateScore(); err != nil {
		return err
	}
	p.Status = PerformanceSubmitted
	p.SubmittedBy = &actor
	return nil
}

// Review records the reviewer of a submitted report.
func (p *StallPerformance) Review(actor Actor, comments string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if p.Status != PerformanceSubmitted {
		return apperrors.NewInvalidTransitionError("performance report", string(p.Status), "review")
	}
	p.Status = PerformanceReviewed
	p.ReviewedBy = &ApprovalRecord{ApprovedBy: actor, ApprovedAt: now, Comments: comments}
	return nil
}

// Approve accepts a reviewed report.
func (p *StallPerformance) Approve(actor Actor, comments string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if p.Status != PerformanceReviewed {
		return apperrors.NewInvalidTransitionError("performance report", string(p.Status), "approve")
	}
	p.Status = PerformanceApproved
	p.ApprovalDetails = &ApprovalRecord{ApprovedBy: actor, ApprovedAt: now, Comments: comments}
	return nil
}

// Archive retires an approved report.
func (p *StallPerformance) Archive(now time.Time) error {
	if p.Status != PerformanceApproved {
		return apperrors.NewInvalidTransitionError("performance report", string(p.Status), "archive")
	}
	p.Status = PerformanceArchived
	p.ArchivedAt = timePtr(now)
	return nil
}
