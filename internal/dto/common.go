package dto

import (
	"time"

	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
)

const maxListLimit = 100

// ListParams defines the query parameters shared by record listings.
type ListParams struct {
	StallID         string     `form:"stallID"`
	Status          string     `form:"status"`
	From            *time.Time `form:"from" time_format:"2006-01-02"`
	To              *time.Time `form:"to" time_format:"2006-01-02"`
	IncludeInactive bool       `form:"includeInactive"`
	Limit           int        `form:"limit,default=20" binding:"gte=0"`
	Offset          int        `form:"offset,default=0" binding:"gte=0"`
}

// ToFilter converts the query parameters into a repository filter, clamping
// the page size. The to date is inclusive.
func (p ListParams) ToFilter() portsrepo.ListFilter {
	var to *time.Time
	if p.To != nil {
		end := p.To.AddDate(0, 0, 1)
		to = &end
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return portsrepo.ListFilter{
		StallID:         p.StallID,
		Status:          p.Status,
		From:            p.From,
		To:              to,
		IncludeInactive: p.IncludeInactive,
		Limit:           limit,
		Offset:          max(p.Offset, 0),
	}
}

// ListResponse wraps one page of records.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewListResponse builds a page, never returning a null item list.
func NewListResponse[T any](items []T, filter portsrepo.ListFilter) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Limit: filter.Limit, Offset: filter.Offset}
}

// VersionGuard carries the optional optimistic concurrency check of a write.
// When set, the write is refused unless the stored version still matches.
type VersionGuard struct {
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// TransitionRequest is the body of a state transition without extra input.
type TransitionRequest struct {
	VersionGuard
}

// ApprovalRequest is the body of approve/review transitions.
type ApprovalRequest struct {
	Comments string `json:"comments" binding:"max=500"`
	VersionGuard
}

// ReasonRequest is the body of reject/cancel transitions.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
	VersionGuard
}

// PaymentRequest is the body of payment transitions.
type PaymentRequest struct {
	PaymentMode    string `json:"paymentMode" binding:"omitempty,oneof=cash bank-transfer upi cheque card"`
	TransactionRef string `json:"transactionRef" binding:"max=100"`
	VersionGuard
}
