package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExpenseType is the category an expense is booked under.
type ExpenseType string

const (
	ExpenseRawMaterial   ExpenseType = "raw-material"
	ExpenseRent          ExpenseType = "rent"
	ExpenseUtilities     ExpenseType = "utilities"
	ExpenseElectricity   ExpenseType = "electricity"
	ExpenseWater         ExpenseType = "water"
	ExpenseGas           ExpenseType = "gas"
	ExpenseMaintenance   ExpenseType = "maintenance"
	ExpenseTransport     ExpenseType = "transport"
	ExpenseMarketing     ExpenseType = "marketing"
	ExpenseEquipment     ExpenseType = "equipment"
	ExpensePackaging     ExpenseType = "packaging"
	ExpenseLicenseFees   ExpenseType = "license-fees"
	ExpenseInsurance     ExpenseType = "insurance"
	ExpenseStaffWelfare  ExpenseType = "staff-welfare"
	ExpenseMiscellaneous ExpenseType = "miscellaneous"
)

// ExpenseTypes lists every known category.
var ExpenseTypes = []ExpenseType{
	ExpenseRawMaterial, ExpenseRent, ExpenseUtilities, ExpenseElectricity, ExpenseWater,
	ExpenseGas, ExpenseMaintenance, ExpenseTransport, ExpenseMarketing, ExpenseEquipment,
	ExpensePackaging, ExpenseLicenseFees, ExpenseInsurance, ExpenseStaffWelfare, ExpenseMiscellaneous,
}

// IsValid reports whether the category is known.
func (t ExpenseType) IsValid() bool {
	for _, known := range ExpenseTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ExpenseStatus is the single authoritative expense lifecycle.
type ExpenseStatus string

const (
	ExpenseDraft     ExpenseStatus = "draft"
	ExpenseSubmitted ExpenseStatus = "submitted"
	ExpenseApproved  ExpenseStatus = "approved"
	ExpenseRejected  ExpenseStatus = "rejected"
	ExpensePaid      ExpenseStatus = "paid"
	ExpenseCancelled ExpenseStatus = "cancelled"
)

// CanEdit reports whether the expense details may still change.
func (s ExpenseStatus) CanEdit() bool { return s == ExpenseDraft }

// CanSubmit reports whether the expense can be sent for approval.
func (s ExpenseStatus) CanSubmit() bool { return s == ExpenseDraft }

// CanApprove reports whether an approver may decide on the expense.
func (s ExpenseStatus) CanApprove() bool { return s == ExpenseSubmitted }

// CanReject reports whether an approver may reject the expense.
func (s ExpenseStatus) CanReject() bool { return s == ExpenseSubmitted }

// CanPay reports whether the expense can be marked as paid.
func (s ExpenseStatus) CanPay() bool { return s == ExpenseApproved }

// CanCancel reports whether the expense can still be cancelled.
func (s ExpenseStatus) CanCancel() bool {
	return s == ExpenseDraft || s == ExpenseSubmitted || s == ExpenseApproved
}

// CountsAsCost reports whether the expense is booked in profit and loss.
func (s ExpenseStatus) CountsAsCost() bool {
	return s == ExpenseApproved || s == ExpensePaid
}

// ApprovalStatus is the approver-facing projection of ExpenseStatus.
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "pending"
	ApprovalApproved  ApprovalStatus = "approved"
	ApprovalRejected  ApprovalStatus = "rejected"
	ApprovalCancelled ApprovalStatus = "cancelled"
)

// ExpenseApproval is derived from the expense status and the decision actors.
type ExpenseApproval struct {
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	DecidedBy       *Actor         `json:"decidedBy,omitempty"`
	DecidedAt       *time.Time     `json:"decidedAt,omitempty"`
	Comments        string         `json:"comments,omitempty"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
}

// RecurrenceFrequency is how often a recurring expense falls due.
type RecurrenceFrequency string

const (
	RecurDaily     RecurrenceFrequency = "daily"
	RecurWeekly    RecurrenceFrequency = "weekly"
	RecurMonthly   RecurrenceFrequency = "monthly"
	RecurQuarterly RecurrenceFrequency = "quarterly"
	RecurYearly    RecurrenceFrequency = "yearly"
)

// Next returns the due date one period after t.
func (f RecurrenceFrequency) Next(t time.Time) (time.Time, bool) {
	switch f {
	case RecurDaily:
		return t.AddDate(0, 0, 1), true
	case RecurWeekly:
		return t.AddDate(0, 0, 7), true
	case RecurMonthly:
		return t.AddDate(0, 1, 0), true
	case RecurQuarterly:
		return t.AddDate(0, 3, 0), true
	case RecurYearly:
		return t.AddDate(1, 0, 0), true
	}
	return time.Time{}, false
}

// RecurringSchedule describes a repeating expense. TotalOccurrences of 0
// means the schedule only ends at EndDate, or never.
type RecurringSchedule struct {
	Frequency            RecurrenceFrequency `json:"frequency"`
	StartDate            time.Time           `json:"startDate"`
	EndDate              *time.Time          `json:"endDate,omitempty"`
	TotalOccurrences     int                 `json:"totalOccurrences"`
	CompletedOccurrences int                 `json:"completedOccurrences"`
	NextDueDate          *time.Time          `json:"nextDueDate,omitempty"`
}

func (r *RecurringSchedule) validate() error {
	if _, ok := r.Frequency.Next(r.StartDate); !ok {
		return fmt.Errorf("%w: unknown recurrence frequency %q", apperrors.ErrValidation, r.Frequency)
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: recurrence start date is required", apperrors.ErrValidation)
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: recurrence end date is before start date", apperrors.ErrValidation)
	}
	if r.TotalOccurrences < 0 || r.CompletedOccurrences < 0 {
		return fmt.Errorf("%w: occurrence counters cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// Finished reports whether no further occurrence is due.
func (r *RecurringSchedule) Finished() bool {
	return r.NextDueDate == nil
}

// ExpenseDetails are the editable fields of an expense.
type ExpenseDetails struct {
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	ExpenseType   ExpenseType        `json:"expenseType"`
	ExpenseAmount decimal.Decimal    `json:"expenseAmount"`
	ExpenseDate   time.Time          `json:"expenseDate"`
	VendorName    string             `json:"vendorName,omitempty"`
	InvoiceNumber string             `json:"invoiceNumber,omitempty"`
	PaymentMode   PaymentMode        `json:"paymentMode"`
	IsTaxable     bool               `json:"isTaxable"`
	TaxPercentage decimal.Decimal    `json:"taxPercentage"`
	Recurring     *RecurringSchedule `json:"recurring,omitempty"`
}

func (d ExpenseDetails) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: expense title is required", apperrors.ErrValidation)
	}
	if !d.ExpenseType.IsValid() {
		return fmt.Errorf("%w: unknown expense type %q", apperrors.ErrValidation, d.ExpenseType)
	}
	if d.ExpenseAmount.IsNegative() {
		return fmt.Errorf("%w: expense amount cannot be negative", apperrors.ErrValidation)
	}
	if d.PaymentMode != "" && !d.PaymentMode.IsValid() {
		return fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, d.PaymentMode)
	}
	if d.TaxPercentage.IsNegative() || d.TaxPercentage.GreaterThan(hundred) {
		return fmt.Errorf("%w: tax percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	if d.Recurring != nil {
		return d.Recurring.validate()
	}
	return nil
}

// Expense is a cost incurred by a stall, moved through an approval workflow.
type Expense struct {
	ExpenseID string `json:"expenseID"`
	StallID   string `json:"stallID"`
	ExpenseDetails
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	TotalWithTax    decimal.Decimal `json:"totalWithTax"`
	ReceiptURL      string          `json:"receiptURL,omitempty"`
	Status          ExpenseStatus   `json:"expenseStatus"`
	ApprovalDetails ExpenseApproval `json:"approvalDetails"`
	SubmittedBy     *Actor          `json:"submittedBy,omitempty"`
	SubmittedAt     *time.Time      `json:"submittedAt,omitempty"`
	PaymentDetails  *PaymentDetails `json:"paymentDetails,omitempty"`
	Cancellation    *Cancellation   `json:"cancellation,omitempty"`
	TemplateID      string          `json:"templateID,omitempty"` // set on occurrences spawned from a recurring expense
	IsActive        bool            `json:"isActive"`
	Versioned
	AuditFields
}

// NewExpense builds a draft expense with its derived tax fields.
func NewExpense(id, stallID string, d ExpenseDetails) (*Expense, error) {
	if strings.TrimSpace(stallID) == "" {
		return nil, fmt.Errorf("%w: stall id is required", apperrors.ErrValidation)
	}
	e := &Expense{ExpenseID: id, StallID: stallID, Status: ExpenseDraft, IsActive: true}
	if err := e.UpdateDetails(d); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateDetails replaces the editable fields. Only drafts are editable.
func (e *Expense) UpdateDetails(d ExpenseDetails) error {
	if !e.Status.CanEdit() {
		return apperrors.NewInvalidTransitionError("expense", string(e.Status), "edit")
	}
	if err := d.validate(); err != nil {
		return err
	}
	if d.Recurring != nil {
		r := *d.Recurring
		if r.NextDueDate == nil && r.CompletedOccurrences == 0 {
			r.NextDueDate = timePtr(r.StartDate)
		}
		d.Recurring = &r
	}
	e.ExpenseDetails = d
	e.computeTax()
	e.deriveApproval()
	return nil
}

func (e *Expense) computeTax() {
	e.TaxAmount = decimal.Zero
	if e.IsTaxable {
		e.TaxAmount = RoundMoney(PercentOf(e.ExpenseAmount, e.TaxPercentage))
	}
	e.TotalWithTax = e.ExpenseAmount.Add(e.TaxAmount)
}

// deriveApproval keeps the approver view consistent with Status.
func (e *Expense) deriveApproval() {
	switch e.Status {
	case ExpenseApproved, ExpensePaid:
		e.ApprovalDetails.ApprovalStatus = ApprovalApproved
	case ExpenseRejected:
		e.ApprovalDetails.ApprovalStatus = ApprovalRejected
	case ExpenseCancelled:
		e.ApprovalDetails.ApprovalStatus = ApprovalCancelled
	default:
		e.ApprovalDetails.ApprovalStatus = ApprovalPending
	}
}

// Submit sends a draft for approval.
func (e *Expense) Submit(actor Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !e.Status.CanSubmit() {
		return apperrors.NewInvalidTransitionError("expense", string(e.Status), "submit")
	}
	e.Status = ExpenseSubmitted
	e.SubmittedBy = &actor
	e.SubmittedAt = timePtr(now)
	e.deriveApproval()
	return nil
}

// Approve accepts a submitted expense.
func (e *Expense) Approve(actor Actor, comments string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !e.Status.CanApprove() {
		return apperrors.NewInvalidTransitionError("expense", string(e.Status), "approve")
	}
	e.Status = ExpenseApproved
	e.ApprovalDetails = ExpenseApproval{DecidedBy: &actor, DecidedAt: timePtr(now), Comments: comments}
	e.deriveApproval()
	return nil
}

// Reject declines a submitted expense. A reason is mandatory.
func (e *Expense) Reject(actor Actor, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !e.Status.CanReject() {
		return apperrors.NewInvalidTransitionError("expense", string(e.Status), "reject")
	}
	if err := requireReason(reason, "rejection reason"); err != nil {
		return err
	}
	e.Status = ExpenseRejected
	e.ApprovalDetails = ExpenseApproval{DecidedBy: &actor, DecidedAt: timePtr(now), RejectionReason: reason}
	e.deriveApproval()
	return nil
}

// MarkAsPaid settles an approved expense.
func (e *Expense) MarkAsPaid(actor Actor, in PaymentInput, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !e.Status.CanPay() {
		return apperrors.NewInvalidTransitionError("expense", string(e.Status), "pay")
	}
	if in.PaymentMode == "" {
		in.PaymentMode = e.PaymentMode
	}
	if err := in.validate(); err != nil {
		return err
	}
	e.Status = ExpensePaid
	e.PaymentDetails = &PaymentDetails{
		PaymentMode:    in.PaymentMode,
		TransactionRef: in.TransactionRef,
		PaidBy:         actor,
		PaymentDate:    timePtr(now),
	}
	e.deriveApproval()
	return nil
}

// Cancel withdraws an expense that has not been paid or decided against.
func (e *Expense) Cancel(actor Actor, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !e.Status.CanCancel() {
		return apperrors.NewInvalidTransitionError("expense", string(e.Status), "cancel")
	}
	if err := requireReason(reason, "cancellation reason"); err != nil {
		return err
	}
	e.Status = ExpenseCancelled
	e.Cancellation = &Cancellation{CancelledBy: actor, CancelledAt: now, Reason: reason}
	e.deriveApproval()
	return nil
}

// AttachReceipt stores the receipt location. Paid and cancelled expenses are
// closed for changes.
func (e *Expense) AttachReceipt(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("%w: receipt url is required", apperrors.ErrValidation)
	}
	if e.Status == ExpensePaid || e.Status == ExpenseCancelled {
		return apperrors.NewInvalidTransitionError("expense", string(e.Status), "attach a receipt to")
	}
	e.ReceiptURL = url
	return nil
}

// IsRecurrenceDue reports whether the schedule has an occurrence due at now.
// Only approved or paid templates generate occurrences.
func (e *Expense) IsRecurrenceDue(now time.Time) bool {
	if !e.IsActive || e.Recurring == nil || e.Recurring.NextDueDate == nil {
		return false
	}
	if e.Status != ExpenseApproved && e.Status != ExpensePaid {
		return false
	}
	return !now.Before(*e.Recurring.NextDueDate)
}

// AdvanceRecurrence consumes the current due occurrence and moves NextDueDate
// forward. It returns the due date that was consumed. The schedule ends when
// TotalOccurrences is reached or the next date passes EndDate.
func (e *Expense) AdvanceRecurrence(now time.Time) (time.Time, error) {
	if e.Recurring == nil {
		return time.Time{}, fmt.Errorf("%w: expense %s is not recurring", apperrors.ErrValidation, e.ExpenseID)
	}
	if !e.IsRecurrenceDue(now) {
		return time.Time{}, apperrors.NewInvalidTransitionError("expense", string(e.Status), "advance the schedule of")
	}
	r := *e.Recurring
	due := *r.NextDueDate
	next, _ := r.Frequency.Next(due)
	r.CompletedOccurrences++
	r.NextDueDate = timePtr(next)
	if r.TotalOccurrences > 0 && r.CompletedOccurrences >= r.TotalOccurrences {
		r.NextDueDate = nil
	}
	if r.EndDate != nil && next.After(*r.EndDate) {
		r.NextDueDate = nil
	}
	e.Recurring = &r
	return due, nil
}

// NewOccurrence builds the draft expense for one occurrence of a recurring
// expense.
func (e *Expense) NewOccurrence(id string, due time.Time) *Expense {
	d := e.ExpenseDetails
	d.ExpenseDate = due
	d.Recurring = nil
	occ := &Expense{
		ExpenseID:      id,
		StallID:        e.StallID,
		ExpenseDetails: d,
		Status:         ExpenseDraft,
		TemplateID:     e.ExpenseID,
		IsActive:       true,
	}
	occ.computeTax()
	occ.deriveApproval()
	return occ
}
