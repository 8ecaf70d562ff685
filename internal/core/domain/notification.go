package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotificationKind identifies the event a notification reports.
type NotificationKind string

const (
	NotifyExpenseApproved NotificationKind = "expense.approved"
	NotifyExpenseRejected NotificationKind = "expense.rejected"
	NotifyExpensePaid     NotificationKind = "expense.paid"
	NotifyPayrollPaid     NotificationKind = "payroll.paid"
	NotifyInvestorPayout  NotificationKind = "investor.payout"
	NotifyBatchNearExpiry NotificationKind = "inventory.near-expiry"
	NotifyBatchLowStock   NotificationKind = "inventory.low-stock"
	NotifyReportPublished NotificationKind = "profit-loss.published"
)

// Notification is an outbound message about a business event. Delivery is
// asynchronous and best effort.
type Notification struct {
	Kind       NotificationKind  `json:"kind"`
	StallID    string            `json:"stallID,omitempty"`
	RecordID   string            `json:"recordID"`
	Subject    string            `json:"subject"`
	Amount     decimal.Decimal   `json:"amount"`
	Details    map[string]string `json:"details,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}
