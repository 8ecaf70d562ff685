package dto

import (
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecurringRequest makes an expense repeat.
type RecurringRequest struct {
	Frequency        string     `json:"frequency" binding:"required,oneof=daily weekly monthly quarterly yearly"`
	StartDate        time.Time  `json:"startDate" binding:"required"`
	EndDate          *time.Time `json:"endDate"`
	TotalOccurrences int        `json:"totalOccurrences" binding:"gte=0"`
}

// ExpenseRequest defines the editable fields of an expense.
type ExpenseRequest struct {
	Title         string            `json:"title" binding:"required,max=200"`
	Description   string            `json:"description"`
	ExpenseType   string            `json:"expenseType" binding:"required"`
	ExpenseAmount decimal.Decimal   `json:"expenseAmount" binding:"gte=0"`
	ExpenseDate   time.Time         `json:"expenseDate" binding:"required"`
	VendorName    string            `json:"vendorName"`
	InvoiceNumber string            `json:"invoiceNumber"`
	PaymentMode   string            `json:"paymentMode" binding:"omitempty,oneof=cash bank-transfer upi cheque card"`
	IsTaxable     bool              `json:"isTaxable"`
	TaxPercentage decimal.Decimal   `json:"taxPercentage" binding:"gte=0,lte=100"`
	Recurring     *RecurringRequest `json:"recurring"`
}

// ToDetails converts the request into domain expense details.
func (r ExpenseRequest) ToDetails() domain.ExpenseDetails {
	d := domain.ExpenseDetails{
		Title:         r.Title,
		Description:   r.Description,
		ExpenseType:   domain.ExpenseType(r.ExpenseType),
		ExpenseAmount: r.ExpenseAmount,
		ExpenseDate:   r.ExpenseDate,
		VendorName:    r.VendorName,
		InvoiceNumber: r.InvoiceNumber,
		PaymentMode:   domain.PaymentMode(r.PaymentMode),
		IsTaxable:     r.IsTaxable,
		TaxPercentage: r.TaxPercentage,
	}
	if r.Recurring != nil {
		d.Recurring = &domain.RecurringSchedule{
			Frequency:        domain.RecurrenceFrequency(r.Recurring.Frequency),
			StartDate:        r.Recurring.StartDate,
			EndDate:          r.Recurring.EndDate,
			TotalOccurrences: r.Recurring.TotalOccurrences,
		}
	}
	return d
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	StallID string `json:"stallID" binding:"required"`
	ExpenseRequest
}

// UpdateExpenseRequest replaces the details of a draft expense.
type UpdateExpenseRequest struct {
	ExpenseRequest
	VersionGuard
}

// ReceiptUpload is a receipt file attached to an expense.
type ReceiptUpload struct {
	FileName    string
	ContentType string
	Size        int64
}

// ExpenseTypesResponse lists the supported expense categories.
type ExpenseTypesResponse struct {
	Types []domain.ExpenseType `json:"types"`
}

// RecurringRunResponse summarizes one pass over recurring expenses.
type RecurringRunResponse struct {
	Generated []string `json:"generated"`
	Failed    []string `json:"failed,omitempty"`
}
