package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PayrollStatus is the payroll approval lifecycle.
type PayrollStatus string

const (
	PayrollDraft           PayrollStatus = "draft"
	PayrollPendingApproval PayrollStatus = "pending-approval"
	PayrollApproved        PayrollStatus = "approved"
	PayrollProcessed       PayrollStatus = "processed"
	PayrollPaid            PayrollStatus = "paid"
	PayrollCancelled       PayrollStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s PayrollStatus) IsTerminal() bool {
	return s == PayrollPaid || s == PayrollCancelled
}

// PayrollPeriod is the pay period covered by a payroll record.
type PayrollPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	MonthYear string    `json:"monthYear"` // e.g. "2025-06"
}

type Allowances struct {
	HouseRent decimal.Decimal `json:"houseRent"`
	Dearness  decimal.Decimal `json:"dearness"`
	Transport decimal.Decimal `json:"transport"`
	Medical   decimal.Decimal `json:"medical"`
	Food      decimal.Decimal `json:"food"`
	Other     decimal.Decimal `json:"other"`
}

func (a Allowances) total() decimal.Decimal {
	return SumDecimals(a.HouseRent, a.Dearness, a.Transport, a.Medical, a.Food, a.Other)
}

type Attendance struct {
	TotalWorkingDays int `json:"totalWorkingDays"`
	PresentDays      int `json:"presentDays"`
	AbsentDays       int `json:"absentDays"`
	TotalLeaveDays   int `json:"totalLeaveDays"`
	Holidays         int `json:"holidays"`
	LateArrivals     int `json:"lateArrivals"`
}

// Validate rejects negative counters and attendance that does not fit inside
// the working days of the period.
func (a Attendance) Validate() error {
	for _, n := range []int{a.TotalWorkingDays, a.PresentDays, a.AbsentDays, a.TotalLeaveDays, a.Holidays, a.LateArrivals} {
		if n < 0 {
			return fmt.Errorf("%w: attendance counters cannot be negative", apperrors.ErrValidation)
		}
	}
	if sum := a.PresentDays + a.AbsentDays + a.TotalLeaveDays + a.Holidays; sum > a.TotalWorkingDays {
		return fmt.Errorf("%w: present, absent, leave and holidays add up to %d which exceeds %d working days",
			apperrors.ErrValidation, sum, a.TotalWorkingDays)
	}
	return nil
}

type Overtime struct {
	Hours             decimal.Decimal `json:"hours"`
	Rate              decimal.Decimal `json:"rate"`
	WeekendWorkAmount decimal.Decimal `json:"weekendWorkAmount"`
}

func (o Overtime) amount() decimal.Decimal {
	return o.Hours.Mul(o.Rate).Add(o.WeekendWorkAmount)
}

type Deductions struct {
	Leave         decimal.Decimal `json:"leave"`
	Fine          decimal.Decimal `json:"fine"`
	Advance       decimal.Decimal `json:"advance"`
	Loan          decimal.Decimal `json:"loan"`
	Tax           decimal.Decimal `json:"tax"`
	ProvidentFund decimal.Decimal `json:"providentFund"`
	ESI           decimal.Decimal `json:"esi"`
	Other         decimal.Decimal `json:"other"`
}

func (d Deductions) total() decimal.Decimal {
	return SumDecimals(d.Leave, d.Fine, d.Advance, d.Loan, d.Tax, d.ProvidentFund, d.ESI, d.Other)
}

type Bonuses struct {
	Performance decimal.Decimal `json:"performance"`
	Festival    decimal.Decimal `json:"festival"`
	Attendance  decimal.Decimal `json:"attendance"`
	Incentive   decimal.Decimal `json:"incentive"`
	Other       decimal.Decimal `json:"other"`
}

func (b Bonuses) total() decimal.Decimal {
	return SumDecimals(b.Performance, b.Festival, b.Attendance, b.Incentive, b.Other)
}

// PayrollComponents are the editable inputs of a payroll record.
type PayrollComponents struct {
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	Allowances     Allowances      `json:"allowances"`
	Attendance     Attendance      `json:"attendance"`
	Overtime       Overtime        `json:"overtime"`
	Deductions     Deductions      `json:"deductions"`
	Bonuses        Bonuses         `json:"bonuses"`
	RoundOffAmount decimal.Decimal `json:"roundOffAmount"`
}

func (c PayrollComponents) validate() error {
	amounts := []decimal.Decimal{c.BaseSalary, c.Overtime.Hours, c.Overtime.Rate, c.Overtime.WeekendWorkAmount}
	a, d, b := c.Allowances, c.Deductions, c.Bonuses
	amounts = append(amounts, a.HouseRent, a.Dearness, a.Transport, a.Medical, a.Food, a.Other)
	amounts = append(amounts, d.Leave, d.Fine, d.Advance, d.Loan, d.Tax, d.ProvidentFund, d.ESI, d.Other)
	amounts = append(amounts, b.Performance, b.Festival, b.Attendance, b.Incentive, b.Other)
	for _, v := range amounts {
		if v.IsNegative() {
			return fmt.Errorf("%w: salary components cannot be negative", apperrors.ErrValidation)
		}
	}
	return c.Attendance.Validate()
}

// PayrollTotals are derived by Calculate.
type PayrollTotals struct {
	TotalAllowances  decimal.Decimal `json:"totalAllowances"`
	GrossSalary      decimal.Decimal `json:"grossSalary"`
	OvertimeAmount   decimal.Decimal `json:"overtimeAmount"`
	TotalDeductions  decimal.Decimal `json:"totalDeductions"`
	TotalBonus       decimal.Decimal `json:"totalBonus"`
	NetPayableSalary decimal.Decimal `json:"netPayableSalary"`
	FinalPayment     decimal.Decimal `json:"finalPayment"`
}

// Payroll is one employee's salary record for a period.
type Payroll struct {
	PayrollID    string        `json:"payrollID"`
	StallID      string        `json:"stallID"`
	EmployeeID   string        `json:"employeeID"`
	EmployeeName string        `json:"employeeName"`
	Designation  string        `json:"designation"`
	Period       PayrollPeriod `json:"period"`
	PayrollComponents
	PayrollTotals
	Status          PayrollStatus   `json:"status"`
	ApprovalDetails *ApprovalRecord `json:"approvalDetails,omitempty"`
	PaymentDetails  *PaymentDetails `json:"paymentDetails,omitempty"`
	Cancellation    *Cancellation   `json:"cancellation,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	IsActive        bool            `json:"isActive"`
	Versioned
	AuditFields
}

// Validate checks identity and period fields plus the components.
func (p *Payroll) Validate() error {
	if strings.TrimSpace(p.StallID) == "" || strings.TrimSpace(p.EmployeeID) == "" {
		return fmt.Errorf("%w: stall id and employee id are required", apperrors.ErrValidation)
	}
	if p.Period.EndDate.Before(p.Period.StartDate) {
		return fmt.Errorf("%w: period end date is before start date", apperrors.ErrValidation)
	}
	return p.PayrollComponents.validate()
}

// Calculate derives every total from the components. On error p is unchanged.
func (p *Payroll) Calculate() error {
	totals, err := computePayroll(p.PayrollComponents)
	if err != nil {
		return err
	}
	p.PayrollTotals = totals
	return nil
}

func computePayroll(c PayrollComponents) (PayrollTotals, error) {
	if err := c.validate(); err != nil {
		return PayrollTotals{}, err
	}
	var t PayrollTotals
	t.TotalAllowances = RoundMoney(c.Allowances.total())
	t.GrossSalary = RoundMoney(c.BaseSalary.Add(t.TotalAllowances))
	t.OvertimeAmount = RoundMoney(c.Overtime.amount())
	t.TotalDeductions = RoundMoney(c.Deductions.total())
	t.TotalBonus = RoundMoney(c.Bonuses.total())
	t.NetPayableSalary = NonNegative(t.GrossSalary.Add(t.OvertimeAmount).Add(t.TotalBonus).Sub(t.TotalDeductions))
	t.FinalPayment = RoundMoney(t.NetPayableSalary.Add(c.RoundOffAmount))
	if t.FinalPayment.IsNegative() {
		return PayrollTotals{}, fmt.Errorf("%w: round off makes the final payment negative", apperrors.ErrValidation)
	}
	return t, nil
}

// UpdateComponents replaces the salary inputs and recalculates. Only drafts
// are editable.
func (p *Payroll) UpdateComponents(c PayrollComponents) error {
	if p.Status != PayrollDraft {
		return apperrors.NewInvalidTransitionError("payroll", string(p.Status), "edit")
	}
	totals, err := computePayroll(c)
	if err != nil {
		return err
	}
	p.PayrollComponents = c
	p.PayrollTotals = totals
	return nil
}

// Submit sends a draft for approval.
func (p *Payroll) Submit() error {
	if p.Status != PayrollDraft {
		return apperrors.NewInvalidTransitionError("payroll", string(p.Status), "submit")
	}
	if err := p.Calculate(); err != nil {
		return err
	}
	p.Status = PayrollPendingApproval
	return nil
}

// Approve records the approver. Only valid while pending approval.
func (p *Payroll) Approve(actor Actor, comments string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if p.Status != PayrollPendingApproval {
		return apperrors.NewInvalidTransitionError("payroll", string(p.Status), "approve")
	}
	p.Status = PayrollApproved
	p.ApprovalDetails = &ApprovalRecord{ApprovedBy: actor, ApprovedAt: now, Comments: comments}
	return nil
}

// ProcessPayment marks an approved payroll as handed to the payment channel.
func (p *Payroll) ProcessPayment(actor Actor, in PaymentInput, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if p.Status != PayrollApproved {
		return apperrors.NewInvalidTransitionError("payroll", string(p.Status), "process payment for")
	}
	if err := in.validate(); err != nil {
		return err
	}
	p.Status = PayrollProcessed
	p.PaymentDetails = &PaymentDetails{
		PaymentMode:    in.PaymentMode,
		TransactionRef: in.TransactionRef,
		PaidBy:         actor,
		ProcessedAt:    timePtr(now),
	}
	return nil
}

// MarkAsPaid closes the payroll. Approved records may skip processing.
func (p *Payroll) MarkAsPaid(actor Actor, in *PaymentInput, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if p.Status != PayrollApproved && p.Status != PayrollProcessed {
		return apperrors.NewInvalidTransitionError("payroll", string(p.Status), "pay")
	}
	details := PaymentDetails{PaymentMode: PaymentBankTransfer}
	if p.PaymentDetails != nil {
		details = *p.PaymentDetails
	}
	if in != nil {
		if err := in.validate(); err != nil {
			return err
		}
		details.PaymentMode = in.PaymentMode
		if in.TransactionRef != "" {
			details.TransactionRef = in.TransactionRef
		}
	}
	details.PaidBy = actor
	details.PaymentDate = timePtr(now)
	p.Status = PayrollPaid
	p.PaymentDetails = &details
	return nil
}

// Cancel moves any non-terminal payroll to cancelled.
func (p *Payroll) Cancel(actor Actor, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if p.Status.IsTerminal() {
		return apperrors.NewInvalidTransitionError("payroll", string(p.Status), "cancel")
	}
	if err := requireReason(reason, "cancellation reason"); err != nil {
		return err
	}
	p.Status = PayrollCancelled
	p.Cancellation = &Cancellation{CancelledBy: actor, CancelledAt: now, Reason: reason}
	return nil
}
