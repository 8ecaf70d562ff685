package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/core/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StallPerformanceServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockRecordRepository[domain.StallPerformance]
	mockOrders *MockRecordRepository[domain.Order]
	mockGuard  *MockStallGuard
	service    portssvc.StallPerformanceSvcFacade
}

func (suite *StallPerformanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecordRepository[domain.StallPerformance])
	suite.mockOrders = new(MockRecordRepository[domain.Order])
	suite.mockGuard = new(MockStallGuard)
	suite.service = services.NewStallPerformanceService(suite.mockRepo, suite.mockOrders,
		services.WithClock(fixedClock),
		services.WithStallGuard(suite.mockGuard))
}

func juneMetrics() dto.PerformanceMetricsRequest {
	return dto.PerformanceMetricsRequest{
		Sales:     domain.SalesMetrics{TotalSales: dec("80000"), TargetSales: dec("100000"), OrderCount: 400},
		Feedback:  domain.FeedbackMetrics{AverageRating: dec("4.5"), TotalReviews: 120},
		Wastage:   domain.WastageMetrics{WastageCost: dec("2000")},
		Employees: domain.EmployeeMetrics{TotalStaff: 6, AttendancePercentage: dec("90")},
	}
}

func scorecardIn(status domain.PerformanceStatus) *domain.StallPerformance {
	p := &domain.StallPerformance{
		ReportID:   "sp-1",
		StallID:    "stall-1",
		PeriodType: domain.PeriodMonthly,
		StartDate:  juneStart,
		EndDate:    juneEnd,
		Status:     domain.PerformanceDraft,
		IsActive:   true,
		Versioned:  domain.Versioned{Version: 1},
	}
	juneMetrics().ApplyTo(p)
	_ = p.CalculateScore()
	p.Status = status
	return p
}

// --- Test Cases ---

func (suite *StallPerformanceServiceTestSuite) TestCreateScorecard_Scores() {
	ctx := context.Background()
	req := dto.CreateScorecardRequest{ReportPeriodRequest: junePeriod(), PerformanceMetricsRequest: juneMetrics()}

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()
	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(p domain.StallPerformance) bool {
		return p.Status == domain.PerformanceDraft && p.Version == 1
	})).Return(nil).Once()

	p, err := suite.service.CreateScorecard(ctx, req, testManager)

	suite.Require().NoError(err)
	suite.True(dec("32").Equal(p.ScoreBreakdown.Sales))
	suite.True(dec("27").Equal(p.ScoreBreakdown.Rating))
	suite.True(dec("11.25").Equal(p.ScoreBreakdown.Wastage))
	suite.True(dec("13.5").Equal(p.ScoreBreakdown.Attendance))
	suite.True(dec("83.75").Equal(p.PerformanceScore), "score %s", p.PerformanceScore)
	suite.Equal("B", p.Grade)
	suite.True(dec("200").Equal(p.Sales.AverageOrderValue))
	suite.True(dec("2.5").Equal(p.Wastage.WastagePercentage))
	suite.mockOrders.AssertNotCalled(suite.T(), "List", mock.Anything, mock.Anything)
}

func (suite *StallPerformanceServiceTestSuite) TestCreateScorecard_FromOrders() {
	ctx := context.Background()
	req := dto.CreateScorecardRequest{
		ReportPeriodRequest:       junePeriod(),
		PerformanceMetricsRequest: dto.PerformanceMetricsRequest{Sales: domain.SalesMetrics{TargetSales: dec("5000")}},
		FromOrders:                true,
	}

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()
	suite.mockOrders.On("List", ctx, juneFilter()).Return(juneOrders(), nil).Once()
	suite.mockRepo.On("Save", ctx, mock.Anything).Return(nil).Once()

	p, err := suite.service.CreateScorecard(ctx, req, testManager)

	suite.Require().NoError(err)
	suite.Equal(2, p.Sales.OrderCount)
	suite.True(dec("2900").Equal(p.Sales.TotalSales))
	suite.True(dec("5000").Equal(p.Sales.TargetSales))
	suite.True(dec("38.2").Equal(p.PerformanceScore), "score %s", p.PerformanceScore)
	suite.Equal("D", p.Grade)
}

func (suite *StallPerformanceServiceTestSuite) TestCreateScorecard_InvalidRating() {
	ctx := context.Background()
	m := juneMetrics()
	m.Feedback.AverageRating = dec("6")

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()

	p, err := suite.service.CreateScorecard(ctx, dto.CreateScorecardRequest{ReportPeriodRequest: junePeriod(), PerformanceMetricsRequest: m}, testManager)

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StallPerformanceServiceTestSuite) TestUpdateScorecard_OnlyDrafts() {
	ctx := context.Background()
	m := juneMetrics()
	m.Sales.TotalSales = dec("100000")

	suite.mockRepo.On("FindByID", ctx, "sp-1").Return(scorecardIn(domain.PerformanceDraft), nil).Once()
	suite.mockRepo.On("Update", ctx, withVersion[domain.StallPerformance](2)).Return(nil).Once()

	p, err := suite.service.UpdateScorecard(ctx, "sp-1", dto.UpdateScorecardRequest{PerformanceMetricsRequest: m}, testManager)
	suite.Require().NoError(err)
	suite.True(dec("40").Equal(p.ScoreBreakdown.Sales))

	suite.mockRepo.On("FindByID", ctx, "sp-1").Return(scorecardIn(domain.PerformanceSubmitted), nil).Once()
	_, err = suite.service.UpdateScorecard(ctx, "sp-1", dto.UpdateScorecardRequest{PerformanceMetricsRequest: m}, testManager)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *StallPerformanceServiceTestSuite) TestWorkflow() {
	ctx := context.Background()
	tests := []struct {
		name    string
		from    domain.PerformanceStatus
		actor   domain.Actor
		run     func(actor domain.Actor) (*domain.StallPerformance, error)
		want    domain.PerformanceStatus
		wantErr error
	}{
		{"submit draft", domain.PerformanceDraft, testStaff, func(a domain.Actor) (*domain.StallPerformance, error) {
			return suite.service.SubmitScorecard(ctx, "sp-1", dto.TransitionRequest{}, a)
		}, domain.PerformanceSubmitted, nil},
		{"review submitted", domain.PerformanceSubmitted, testManager, func(a domain.Actor) (*domain.StallPerformance, error) {
			return suite.service.ReviewScorecard(ctx, "sp-1", dto.ApprovalRequest{Comments: "checked"}, a)
		}, domain.PerformanceReviewed, nil},
		{"approve reviewed", domain.PerformanceReviewed, testOwner, func(a domain.Actor) (*domain.StallPerformance, error) {
			return suite.service.ApproveScorecard(ctx, "sp-1", dto.ApprovalRequest{}, a)
		}, domain.PerformanceApproved, nil},
		{"archive approved", domain.PerformanceApproved, testManager, func(a domain.Actor) (*domain.StallPerformance, error) {
			return suite.service.ArchiveScorecard(ctx, "sp-1", dto.TransitionRequest{}, a)
		}, domain.PerformanceArchived, nil},
		{"approve before review", domain.PerformanceSubmitted, testOwner, func(a domain.Actor) (*domain.StallPerformance, error) {
			return suite.service.ApproveScorecard(ctx, "sp-1", dto.ApprovalRequest{}, a)
		}, "", apperrors.ErrInvalidStateTransition},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockRepo.On("FindByID", ctx, "sp-1").Return(scorecardIn(tt.from), nil).Once()
			if tt.wantErr == nil {
				suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
			}

			p, err := tt.run(tt.actor)

			if tt.wantErr != nil {
				suite.Nil(p)
				suite.ErrorIs(err, tt.wantErr)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(tt.want, p.Status)
		})
	}
}

func (suite *StallPerformanceServiceTestSuite) TestReviewScorecard_StaffForbidden() {
	p, err := suite.service.ReviewScorecard(context.Background(), "sp-1", dto.ApprovalRequest{}, testStaff)

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func TestStallPerformanceService(t *testing.T) {
	suite.Run(t, new(StallPerformanceServiceTestSuite))
}
