package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clerk = domain.Actor{UserID: "u-staff", UserName: "Sana", UserRole: domain.RoleStaff}

func newExpense(t *testing.T) *domain.Expense {
	t.Helper()
	e, err := domain.NewExpense("exp-1", "stall-1", domain.ExpenseDetails{
		Title:         "Gas cylinders",
		ExpenseType:   domain.ExpenseGas,
		ExpenseAmount: dec("2400"),
		ExpenseDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		PaymentMode:   domain.PaymentCash,
		IsTaxable:     true,
		TaxPercentage: dec("5"),
	})
	require.NoError(t, err)
	return e
}

func TestNewExpense(t *testing.T) {
	e := newExpense(t)
	assert.Equal(t, domain.ExpenseDraft, e.Status)
	assert.Equal(t, domain.ApprovalPending, e.ApprovalDetails.ApprovalStatus)
	assert.True(t, dec("120").Equal(e.TaxAmount))
	assert.True(t, dec("2520").Equal(e.TotalWithTax))
	assert.True(t, e.IsActive)
}

func TestNewExpense_Validation(t *testing.T) {
	base := domain.ExpenseDetails{Title: "Rent", ExpenseType: domain.ExpenseRent, ExpenseAmount: dec("1")}
	tests := []struct {
		name   string
		mutate func(d *domain.ExpenseDetails)
	}{
		{"negative amount", func(d *domain.ExpenseDetails) { d.ExpenseAmount = dec("-0.01") }},
		{"unknown type", func(d *domain.ExpenseDetails) { d.ExpenseType = "travel" }},
		{"missing title", func(d *domain.ExpenseDetails) { d.Title = "" }},
		{"tax above 100", func(d *domain.ExpenseDetails) { d.TaxPercentage = dec("101") }},
		{"bad recurrence", func(d *domain.ExpenseDetails) {
			d.Recurring = &domain.RecurringSchedule{Frequency: "hourly", StartDate: time.Now()}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			_, err := domain.NewExpense("x", "stall-1", d)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	assert.Len(t, domain.ExpenseTypes, 15)
}

func TestExpense_ApproveAndPay(t *testing.T) {
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	e := newExpense(t)

	require.NoError(t, e.Submit(clerk, now))
	require.NoError(t, e.Approve(approver, "fine", now))
	assert.Equal(t, domain.ExpenseApproved, e.Status)
	assert.Equal(t, domain.ApprovalApproved, e.ApprovalDetails.ApprovalStatus)
	assert.Equal(t, approver, *e.ApprovalDetails.DecidedBy)

	require.NoError(t, e.MarkAsPaid(approver, domain.PaymentInput{}, now.Add(time.Hour)))
	assert.Equal(t, domain.ExpensePaid, e.Status)
	assert.Equal(t, domain.PaymentCash, e.PaymentDetails.PaymentMode)
	assert.Equal(t, now.Add(time.Hour), *e.PaymentDetails.PaymentDate)
	assert.Equal(t, domain.ApprovalApproved, e.ApprovalDetails.ApprovalStatus)
}

func TestExpense_ApproveThenRejectFails(t *testing.T) {
	now := time.Now()
	e := newExpense(t)
	require.NoError(t, e.Submit(clerk, now))
	require.NoError(t, e.Approve(approver, "", now))

	err := e.Reject(approver, "changed my mind", now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	assert.Equal(t, domain.ExpenseApproved, e.Status)
	assert.Equal(t, domain.ApprovalApproved, e.ApprovalDetails.ApprovalStatus)
}

func TestExpense_InvalidTransitions(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		status domain.ExpenseStatus
		act    func(e *domain.Expense) error
	}{
		{"pay submitted", domain.ExpenseSubmitted, func(e *domain.Expense) error { return e.MarkAsPaid(approver, domain.PaymentInput{}, now) }},
		{"pay draft", domain.ExpenseDraft, func(e *domain.Expense) error { return e.MarkAsPaid(approver, domain.PaymentInput{}, now) }},
		{"approve draft", domain.ExpenseDraft, func(e *domain.Expense) error { return e.Approve(approver, "", now) }},
		{"approve rejected", domain.ExpenseRejected, func(e *domain.Expense) error { return e.Approve(approver, "", now) }},
		{"approve paid", domain.ExpensePaid, func(e *domain.Expense) error { return e.Approve(approver, "", now) }},
		{"reject approved", domain.ExpenseApproved, func(e *domain.Expense) error { return e.Reject(approver, "no", now) }},
		{"cancel paid", domain.ExpensePaid, func(e *domain.Expense) error { return e.Cancel(approver, "no", now) }},
		{"cancel rejected", domain.ExpenseRejected, func(e *domain.Expense) error { return e.Cancel(approver, "no", now) }},
		{"pay submitted without a mode", domain.ExpenseSubmitted, func(e *domain.Expense) error {
			e.PaymentMode = ""
			return e.MarkAsPaid(approver, domain.PaymentInput{}, now)
		}},
		{"reject draft without a reason", domain.ExpenseDraft, func(e *domain.Expense) error { return e.Reject(approver, "", now) }},
		{"cancel paid without a reason", domain.ExpensePaid, func(e *domain.Expense) error { return e.Cancel(approver, " ", now) }},
		{"submit submitted", domain.ExpenseSubmitted, func(e *domain.Expense) error { return e.Submit(clerk, now) }},
		{"edit approved", domain.ExpenseApproved, func(e *domain.Expense) error { return e.UpdateDetails(e.ExpenseDetails) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExpense(t)
			e.Status = tt.status
			assert.ErrorIs(t, tt.act(e), apperrors.ErrInvalidStateTransition)
			assert.Equal(t, tt.status, e.Status)
		})
	}
}

func TestExpense_RejectRequiresReason(t *testing.T) {
	e := newExpense(t)
	require.NoError(t, e.Submit(clerk, time.Now()))
	assert.ErrorIs(t, e.Reject(approver, "", time.Now()), apperrors.ErrValidation)
	assert.Equal(t, domain.ExpenseSubmitted, e.Status)

	require.NoError(t, e.Reject(approver, "duplicate bill", time.Now()))
	assert.Equal(t, domain.ApprovalRejected, e.ApprovalDetails.ApprovalStatus)
	assert.Equal(t, "duplicate bill", e.ApprovalDetails.RejectionReason)
}

func TestExpense_Cancel(t *testing.T) {
	e := newExpense(t)
	require.NoError(t, e.Submit(clerk, time.Now()))
	require.NoError(t, e.Approve(approver, "", time.Now()))
	require.NoError(t, e.Cancel(approver, "vendor refunded", time.Now()))
	assert.Equal(t, domain.ExpenseCancelled, e.Status)
	assert.Equal(t, domain.ApprovalCancelled, e.ApprovalDetails.ApprovalStatus)
	assert.ErrorIs(t, e.AttachReceipt("s3://bucket/r.pdf"), apperrors.ErrInvalidStateTransition)
}

func TestExpense_Recurrence(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	e, err := domain.NewExpense("rent-1", "stall-1", domain.ExpenseDetails{
		Title:         "Shop rent",
		ExpenseType:   domain.ExpenseRent,
		ExpenseAmount: dec("30000"),
		Recurring: &domain.RecurringSchedule{
			Frequency:        domain.RecurMonthly,
			StartDate:        start,
			TotalOccurrences: 2,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, e.Recurring.NextDueDate)
	assert.Equal(t, start, *e.Recurring.NextDueDate)
	assert.False(t, e.IsRecurrenceDue(start), "draft templates never fire")
	e.Status = domain.ExpenseApproved

	assert.True(t, e.IsRecurrenceDue(start))
	assert.False(t, e.IsRecurrenceDue(start.Add(-time.Hour)))
	_, err = e.AdvanceRecurrence(start.Add(-time.Hour))
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)

	due, err := e.AdvanceRecurrence(start)
	require.NoError(t, err)
	assert.Equal(t, start, due)
	assert.Equal(t, 1, e.Recurring.CompletedOccurrences)
	assert.Equal(t, start.AddDate(0, 1, 0), *e.Recurring.NextDueDate)

	occ := e.NewOccurrence("rent-1-2", due)
	assert.Equal(t, "rent-1", occ.TemplateID)
	assert.Equal(t, domain.ExpenseDraft, occ.Status)
	assert.Nil(t, occ.Recurring)
	assert.Equal(t, due, occ.ExpenseDate)

	_, err = e.AdvanceRecurrence(start.AddDate(0, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, e.Recurring.CompletedOccurrences)
	assert.True(t, e.Recurring.Finished())
	assert.False(t, e.IsRecurrenceDue(start.AddDate(1, 0, 0)))
}

func TestExpense_RecurrenceStopsAtEndDate(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)
	e, err := domain.NewExpense("w-1", "stall-1", domain.ExpenseDetails{
		Title:         "Cleaning",
		ExpenseType:   domain.ExpenseMaintenance,
		ExpenseAmount: dec("500"),
		Recurring:     &domain.RecurringSchedule{Frequency: domain.RecurWeekly, StartDate: start, EndDate: &end},
	})
	require.NoError(t, err)
	e.Status = domain.ExpensePaid

	_, err = e.AdvanceRecurrence(start)
	require.NoError(t, err)
	require.NotNil(t, e.Recurring.NextDueDate)
	_, err = e.AdvanceRecurrence(start.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.True(t, e.Recurring.Finished())
}

func TestExpense_AdvanceRecurrence_NotRecurring(t *testing.T) {
	e := newExpense(t)
	_, err := e.AdvanceRecurrence(time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExpense_RecurrenceNeedsApprovedTemplate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range []struct {
		status domain.ExpenseStatus
		due    bool
	}{
		{domain.ExpenseDraft, false},
		{domain.ExpenseSubmitted, false},
		{domain.ExpenseApproved, true},
		{domain.ExpensePaid, true},
		{domain.ExpenseRejected, false},
		{domain.ExpenseCancelled, false},
	} {
		t.Run(string(tt.status), func(t *testing.T) {
			e, err := domain.NewExpense("milk-1", "stall-1", domain.ExpenseDetails{
				Title:         "Milk supply",
				ExpenseType:   domain.ExpenseRawMaterial,
				ExpenseAmount: dec("800"),
				Recurring:     &domain.RecurringSchedule{Frequency: domain.RecurDaily, StartDate: start},
			})
			require.NoError(t, err)
			e.Status = tt.status
			assert.Equal(t, tt.due, e.IsRecurrenceDue(start.AddDate(0, 0, 3)))
		})
	}
}
