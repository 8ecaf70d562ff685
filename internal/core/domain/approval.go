package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
)

// PaymentMode is how money left the business.
type PaymentMode string

const (
	PaymentCash         PaymentMode = "cash"
	PaymentBankTransfer PaymentMode = "bank-transfer"
	PaymentUPI          PaymentMode = "upi"
	PaymentCheque       PaymentMode = "cheque"
	PaymentCard         PaymentMode = "card"
)

// IsValid reports whether the payment mode is known.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentUPI, PaymentCheque, PaymentCard:
		return true
	}
	return false
}

// ApprovalRecord stores who decided on a record and when.
type ApprovalRecord struct {
	ApprovedBy Actor     `json:"approvedBy"`
	ApprovedAt time.Time `json:"approvedAt"`
	Comments   string    `json:"comments,omitempty"`
}

// Cancellation stores who cancelled a record and why.
type Cancellation struct {
	CancelledBy Actor     `json:"cancelledBy"`
	CancelledAt time.Time `json:"cancelledAt"`
	Reason      string    `json:"reason"`
}

// PaymentDetails describes a completed or in-flight payment.
type PaymentDetails struct {
	PaymentMode    PaymentMode `json:"paymentMode"`
	TransactionRef string      `json:"transactionRef,omitempty"`
	PaidBy         Actor       `json:"paidBy"`
	ProcessedAt    *time.Time  `json:"processedAt,omitempty"`
	PaymentDate    *time.Time  `json:"paymentDate,omitempty"`
}

// PaymentInput is the caller supplied part of PaymentDetails.
type PaymentInput struct {
	PaymentMode    PaymentMode `json:"paymentMode"`
	TransactionRef string      `json:"transactionRef"`
}

func (in PaymentInput) validate() error {
	if !in.PaymentMode.IsValid() {
		return fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, in.PaymentMode)
	}
	return nil
}
