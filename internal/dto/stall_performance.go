package dto

import (
	"github.com/SscSPs/stallchain/internal/core/domain"
)

// PerformanceMetricsRequest carries the raw metrics of a scorecard.
type PerformanceMetricsRequest struct {
	Sales     domain.SalesMetrics    `json:"sales"`
	Feedback  domain.FeedbackMetrics `json:"feedback"`
	Wastage   domain.WastageMetrics  `json:"wastage"`
	Employees domain.EmployeeMetrics `json:"employees"`
}

// ApplyTo copies the metrics onto the scorecard.
func (m PerformanceMetricsRequest) ApplyTo(p *domain.StallPerformance) {
	p.Sales = m.Sales
	p.Feedback = m.Feedback
	p.Wastage = m.Wastage
	p.Employees = m.Employees
}

// CreateScorecardRequest opens a scorecard for a stall and period.
type CreateScorecardRequest struct {
	ReportPeriodRequest
	PerformanceMetricsRequest
	// FromOrders fills the sales metrics from the stall's delivered orders.
	FromOrders bool `json:"fromOrders"`
}

// UpdateScorecardRequest replaces the metrics of a draft and rescores it.
type UpdateScorecardRequest struct {
	PerformanceMetricsRequest
	VersionGuard
}
