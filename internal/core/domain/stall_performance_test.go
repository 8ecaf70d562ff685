package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorecard() *domain.StallPerformance {
	return &domain.StallPerformance{
		ReportID:   "sp-1",
		StallID:    "stall-1",
		PeriodType: domain.PeriodMonthly,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Sales:      domain.SalesMetrics{TotalSales: dec("80000"), TargetSales: dec("100000"), OrderCount: 400},
		Feedback:   domain.FeedbackMetrics{AverageRating: dec("4.5"), TotalReviews: 120},
		Wastage:    domain.WastageMetrics{WastageCost: dec("4000")},
		Employees:  domain.EmployeeMetrics{TotalStaff: 6, AttendancePercentage: dec("90")},
		Status:     domain.PerformanceDraft,
		IsActive:   true,
	}
}

func TestStallPerformance_CalculateScore(t *testing.T) {
	p := newScorecard()
	require.NoError(t, p.CalculateScore())

	assert.True(t, dec("200").Equal(p.Sales.AverageOrderValue))
	assert.True(t, dec("5").Equal(p.Wastage.WastagePercentage))
	assert.True(t, dec("32").Equal(p.ScoreBreakdown.Sales))
	assert.True(t, dec("27").Equal(p.ScoreBreakdown.Rating))
	assert.True(t, dec("7.5").Equal(p.ScoreBreakdown.Wastage))
	assert.True(t, dec("13.5").Equal(p.ScoreBreakdown.Attendance))
	assert.True(t, dec("80").Equal(p.PerformanceScore))
	assert.Equal(t, "B", p.Grade)
}

func TestStallPerformance_CalculateScore_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.StallPerformance)
		want   string
		grade  string
	}{
		{"target exceeded caps sales", func(p *domain.StallPerformance) {
			p.Sales.TotalSales = dec("150000")
			p.Wastage.WastageCost = decimal.Zero
			p.Feedback.AverageRating = dec("5")
			p.Employees.AttendancePercentage = dec("100")
		}, "100", "A"},
		{"wastage above tolerance scores zero", func(p *domain.StallPerformance) {
			p.Wastage.WastageCost = dec("20000")
		}, "72.5", "B"},
		{"nothing sold", func(p *domain.StallPerformance) {
			p.Sales = domain.SalesMetrics{TargetSales: dec("100000")}
			p.Wastage.WastageCost = decimal.Zero
			p.Feedback.AverageRating = decimal.Zero
			p.Employees.AttendancePercentage = decimal.Zero
		}, "15", "D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newScorecard()
			tt.mutate(p)
			require.NoError(t, p.CalculateScore())
			assert.True(t, dec(tt.want).Equal(p.PerformanceScore), "score %s", p.PerformanceScore)
			assert.Equal(t, tt.grade, p.Grade)
		})
	}
}

func TestStallPerformance_Validate(t *testing.T) {
	p := newScorecard()
	p.Feedback.AverageRating = dec("5.5")
	assert.ErrorIs(t, p.CalculateScore(), apperrors.ErrValidation)

	p = newScorecard()
	p.Employees.AttendancePercentage = dec("101")
	assert.ErrorIs(t, p.CalculateScore(), apperrors.ErrValidation)
}

func TestStallPerformance_Lifecycle(t *testing.T) {
	now := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)
	p := newScorecard()

	assert.ErrorIs(t, p.Review(approver, "", now), apperrors.ErrInvalidStateTransition)
	require.NoError(t, p.Submit(clerk))
	assert.True(t, dec("80").Equal(p.PerformanceScore))
	assert.ErrorIs(t, p.CalculateScore(), apperrors.ErrInvalidStateTransition)
	assert.ErrorIs(t, p.Approve(approver, "", now), apperrors.ErrInvalidStateTransition)

	require.NoError(t, p.Review(approver, "looks right", now))
	require.NoError(t, p.Approve(approver, "", now))
	require.NoError(t, p.Archive(now))
	assert.Equal(t, domain.PerformanceArchived, p.Status)
	assert.ErrorIs(t, p.Archive(now), apperrors.ErrInvalidStateTransition)
}

func TestStallPerformance_ApplyOrders(t *testing.T) {
	p := newScorecard()
	inJune := time.Date(2025, 6, 30, 21, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{StallID: "stall-1", Status: domain.OrderDelivered, PlacedAt: inJune, Subtotal: dec("500"), Discount: dec("50")},
		{StallID: "stall-1", Status: domain.OrderDelivered, PlacedAt: inJune, Subtotal: dec("300")},
		{StallID: "stall-1", Status: domain.OrderCancelled, PlacedAt: inJune, Subtotal: dec("900")},
		{StallID: "stall-2", Status: domain.OrderDelivered, PlacedAt: inJune, Subtotal: dec("900")},
		{StallID: "stall-1", Status: domain.OrderDelivered, PlacedAt: inJune.AddDate(0, 0, 1), Subtotal: dec("900")},
	}

	require.NoError(t, p.ApplyOrders(orders))
	assert.True(t, dec("750").Equal(p.Sales.TotalSales))
	assert.Equal(t, 2, p.Sales.OrderCount)
	assert.True(t, dec("100000").Equal(p.Sales.TargetSales))

	p.Status = domain.PerformanceSubmitted
	err := p.ApplyOrders(orders)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}
