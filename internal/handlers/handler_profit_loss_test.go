package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfitLossHandlerTestSuite struct {
	apiSuite
	mockReports *MockProfitLossService
}

func (suite *ProfitLossHandlerTestSuite) SetupTest() {
	suite.mockReports = new(MockProfitLossService)
	suite.router = nil
	suite.services = &portssvc.ServiceContainer{ProfitLoss: suite.mockReports}
}

func sampleReport(status domain.ProfitLossStatus) *domain.ProfitLoss {
	return &domain.ProfitLoss{
		ReportID:   "pl-1",
		StallID:    "stall-1",
		PeriodType: domain.PeriodMonthly,
		Status:     status,
		IsActive:   true,
		Versioned:  domain.Versioned{Version: 2},
	}
}

func (suite *ProfitLossHandlerTestSuite) TestGenerateReport() {
	body := `{"stallID":"stall-1","periodType":"monthly","startDate":"2025-06-01T00:00:00Z","endDate":"2025-06-30T00:00:00Z",` +
		`"costOfGoodsSold":"42000","ownerSharePercentage":"60","includeInvestors":true}`
	suite.mockReports.On("GenerateReport", mock.Anything, mock.MatchedBy(func(req dto.GenerateProfitLossRequest) bool {
		return req.StallID == "stall-1" &&
			req.PeriodType == "monthly" &&
			req.CostOfGoodsSold.Equal(decimal.NewFromInt(42000)) &&
			req.OwnerSharePercentage != nil && req.OwnerSharePercentage.Equal(decimal.NewFromInt(60)) &&
			req.IncludeInvestors
	}), accountantActor).Return(sampleReport(domain.ReportDraft), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/profit-loss/generate", body, actorOf(accountantActor))

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp domain.ProfitLoss
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pl-1", resp.ReportID)
	suite.mockReports.AssertExpectations(suite.T())
}

func (suite *ProfitLossHandlerTestSuite) TestGenerateReport_BadRequests() {
	tests := []struct {
		name string
		body string
	}{
		{"unknown period type", `{"stallID":"stall-1","periodType":"fortnightly","startDate":"2025-06-01T00:00:00Z","endDate":"2025-06-30T00:00:00Z"}`},
		{"end before start", `{"stallID":"stall-1","periodType":"custom","startDate":"2025-06-30T00:00:00Z","endDate":"2025-06-01T00:00:00Z"}`},
		{"owner share above 100", `{"stallID":"stall-1","periodType":"monthly","startDate":"2025-06-01T00:00:00Z","endDate":"2025-06-30T00:00:00Z","ownerSharePercentage":"101"}`},
		{"negative cost of goods", `{"stallID":"stall-1","periodType":"monthly","startDate":"2025-06-01T00:00:00Z","endDate":"2025-06-30T00:00:00Z","costOfGoodsSold":"-1"}`},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/profit-loss/generate", tt.body, actorOf(ownerActor))
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockReports.AssertNotCalled(suite.T(), "GenerateReport", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfitLossHandlerTestSuite) TestReports_StaffForbidden() {
	w := suite.do(http.MethodGet, "/api/v1/profit-loss", nil, actorOf(staffActor))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/profit-loss/pl-1/finalize", nil, actorOf(staffActor))
	suite.Equal(http.StatusForbidden, w.Code)

	suite.mockReports.AssertNotCalled(suite.T(), "ListReports", mock.Anything, mock.Anything)
	suite.mockReports.AssertNotCalled(suite.T(), "FinalizeReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfitLossHandlerTestSuite) TestListReports_Filter() {
	suite.mockReports.On("ListReports", mock.Anything, mock.MatchedBy(func(f portsrepo.ListFilter) bool {
		return f.StallID == "stall-1" && f.Status == "published" && f.Limit == 100
	})).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/profit-loss?stallID=stall-1&status=published&limit=500", nil, actorOf(managerActor))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{"items":[],"limit":100,"offset":0}`, w.Body.String())
}

func (suite *ProfitLossHandlerTestSuite) TestSetOwnerShare_OutOfRange() {
	w := suite.do(http.MethodPut, "/api/v1/profit-loss/pl-1/owner-share", `{"percentage":"150"}`, actorOf(ownerActor))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReports.AssertNotCalled(suite.T(), "SetOwnerShare", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfitLossHandlerTestSuite) TestAddInvestorShare() {
	suite.Run("unknown investor", func() {
		suite.mockReports.On("AddInvestorShare", mock.Anything, "pl-1", dto.InvestorShareRequest{InvestorID: "inv-404"}, ownerActor).
			Return(nil, apperrors.NewNotFoundError("investor inv-404 not found")).Once()

		w := suite.do(http.MethodPost, "/api/v1/profit-loss/pl-1/investor-shares", `{"investorID":"inv-404"}`, actorOf(ownerActor))

		suite.Equal(http.StatusNotFound, w.Code)
	})

	suite.Run("shares exceed the profit", func() {
		suite.mockReports.On("AddInvestorShare", mock.Anything, "pl-1", mock.Anything, ownerActor).
			Return(nil, apperrors.NewValidationFailedError("distribution would exceed 100%")).Once()

		w := suite.do(http.MethodPost, "/api/v1/profit-loss/pl-1/investor-shares", `{"investorID":"inv-2","sharePercentage":"50"}`, actorOf(ownerActor))

		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Contains(suite.errorBody(w), "exceed")
	})
}

func (suite *ProfitLossHandlerTestSuite) TestRemoveInvestorShare_ExpectedVersion() {
	suite.mockReports.On("RemoveInvestorShare", mock.Anything, "pl-1", "inv-2", mock.MatchedBy(func(v *int64) bool {
		return v != nil && *v == 2
	}), managerActor).Return(sampleReport(domain.ReportDraft), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/profit-loss/pl-1/investor-shares/inv-2?expectedVersion=2", nil, actorOf(managerActor))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockReports.AssertExpectations(suite.T())
}

func (suite *ProfitLossHandlerTestSuite) TestWorkflowErrors() {
	tests := []struct {
		name   string
		path   string
		method string
		err    error
		status int
	}{
		{"publish unapproved", "/api/v1/profit-loss/pl-1/publish", "PublishReport", apperrors.NewInvalidTransitionError("profit/loss report", "finalized", "publish"), http.StatusConflict},
		{"approve stale", "/api/v1/profit-loss/pl-1/approve", "ApproveReport", apperrors.NewVersionConflictError("profit/loss report", "pl-1"), http.StatusConflict},
		{"finalize missing", "/api/v1/profit-loss/pl-1/finalize", "FinalizeReport", apperrors.NewNotFoundError("profit/loss report pl-1 not found"), http.StatusNotFound},
		{"finalize store down", "/api/v1/profit-loss/pl-1/finalize", "FinalizeReport", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockReports.On(tt.method, mock.Anything, "pl-1", mock.Anything, ownerActor).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, tt.path, nil, actorOf(ownerActor))

			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to finalize report", suite.errorBody(w))
			}
		})
	}
}

func (suite *ProfitLossHandlerTestSuite) TestDeleteReport_Finalized() {
	suite.mockReports.On("DeleteReport", mock.Anything, "pl-1", (*int64)(nil), managerActor).
		Return(apperrors.NewInvalidTransitionError("profit/loss report", "finalized", "delete")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/profit-loss/pl-1", nil, actorOf(managerActor))

	suite.Equal(http.StatusConflict, w.Code)
}

func TestProfitLossHandler(t *testing.T) {
	suite.Run(t, new(ProfitLossHandlerTestSuite))
}
