package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	apiSuite
	mockOrders *MockOrderService
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	suite.mockOrders = new(MockOrderService)
	suite.router = nil
	suite.services = &portssvc.ServiceContainer{Order: suite.mockOrders}
}

func sampleOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		OrderID:      "ord-1",
		StallID:      "stall-1",
		CustomerName: "Asha",
		OrderType:    domain.OrderDelivery,
		Total:        decimal.RequireFromString("290"),
		Status:       status,
		IsActive:     true,
		Versioned:    domain.Versioned{Version: 1},
	}
}

func (suite *OrderHandlerTestSuite) TestListOrders_FilterMapping() {
	suite.mockOrders.On("ListOrders", mock.Anything, mock.MatchedBy(func(f portsrepo.ListFilter) bool {
		return f.StallID == "stall-1" && f.Status == "delivered" &&
			f.From != nil && f.From.Format(time.DateOnly) == "2025-06-01" &&
			f.To != nil && f.To.Format(time.DateOnly) == "2025-07-01" &&
			f.Limit == 100 && f.Offset == 10
	})).Return([]domain.Order{*sampleOrder(domain.OrderDelivered)}, nil).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/orders?stallID=stall-1&status=delivered&from=2025-06-01&to=2025-06-30&limit=500&offset=10",
		nil, actorOf(staffActor))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListResponse[domain.Order]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Items, 1)
	suite.Equal(100, resp.Limit)
	suite.mockOrders.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestListOrders_EmptyPage() {
	suite.mockOrders.On("ListOrders", mock.Anything, mock.Anything).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders", nil, actorOf(staffActor))

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"items":[],"limit":20,"offset":0}`, w.Body.String())
}

func (suite *OrderHandlerTestSuite) TestListOrders_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/orders?from=June", nil, actorOf(staffActor))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrders.AssertNotCalled(suite.T(), "ListOrders", mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestPlaceOrder() {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "takeaway",
			body:       `{"stallID":"stall-1","customerName":"Asha","orderType":"takeaway","items":[{"productID":"p1","name":"Dosa","quantity":2,"unitPrice":"60"}]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "delivery without address block",
			body:       `{"stallID":"stall-1","customerName":"Asha","orderType":"delivery","items":[{"productID":"p1","name":"Dosa","quantity":2,"unitPrice":"60"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no items",
			body:       `{"stallID":"stall-1","customerName":"Asha","orderType":"takeaway","items":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero quantity",
			body:       `{"stallID":"stall-1","customerName":"Asha","orderType":"takeaway","items":[{"productID":"p1","name":"Dosa","quantity":0,"unitPrice":"60"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown order type",
			body:       `{"stallID":"stall-1","customerName":"Asha","orderType":"drone","items":[{"productID":"p1","name":"Dosa","quantity":1,"unitPrice":"60"}]}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	suite.mockOrders.On("PlaceOrder", mock.Anything, mock.AnythingOfType("dto.PlaceOrderRequest"), staffActor).
		Return(sampleOrder(domain.OrderPlaced), nil)

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/orders", tt.body, actorOf(staffActor))
			suite.Equal(tt.wantStatus, w.Code, w.Body.String())
		})
	}
	suite.mockOrders.AssertNumberOfCalls(suite.T(), "PlaceOrder", 1)
}

func (suite *OrderHandlerTestSuite) TestAdvanceOrder() {
	rating := decimal.RequireFromString("4.5")
	suite.mockOrders.On("AdvanceOrder", mock.Anything, "ord-1", mock.MatchedBy(func(req dto.AdvanceOrderRequest) bool {
		return req.Status == "delivered" && req.Rating != nil && req.Rating.Equal(rating)
	}), staffActor).Return(sampleOrder(domain.OrderDelivered), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/ord-1/status", `{"status":"delivered","rating":"4.5"}`, actorOf(staffActor))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.Order
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.OrderDelivered, resp.Status)
}

func (suite *OrderHandlerTestSuite) TestAdvanceOrder_Errors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid transition", apperrors.NewInvalidTransitionError("order", "placed", "mark delivered"), http.StatusConflict, "cannot mark delivered order"},
		{"missing order", apperrors.NewNotFoundError("order ord-1 not found"), http.StatusNotFound, "order ord-1 not found"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "Failed to update order status"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.mockOrders.On("AdvanceOrder", mock.Anything, "ord-1", mock.Anything, staffActor).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/orders/ord-1/status", `{"status":"delivered"}`, actorOf(staffActor))

			suite.Equal(tt.wantStatus, w.Code)
			suite.Contains(suite.errorBody(w), tt.wantBody)
			suite.NotContains(suite.errorBody(w), "connection reset")
		})
	}
}

func (suite *OrderHandlerTestSuite) TestAdvanceOrder_RatingOutOfRange() {
	w := suite.do(http.MethodPost, "/api/v1/orders/ord-1/status", `{"status":"delivered","rating":"7"}`, actorOf(staffActor))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrders.AssertNotCalled(suite.T(), "AdvanceOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestCancelOrder_NeedsReason() {
	w := suite.do(http.MethodPost, "/api/v1/orders/ord-1/cancel", `{"reason":""}`, actorOf(staffActor))
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockOrders.On("CancelOrder", mock.Anything, "ord-1", dto.ReasonRequest{Reason: "customer left"}, staffActor).
		Return(sampleOrder(domain.OrderCancelled), nil).Once()
	w = suite.do(http.MethodPost, "/api/v1/orders/ord-1/cancel", dto.ReasonRequest{Reason: "customer left"}, actorOf(staffActor))
	suite.Equal(http.StatusOK, w.Code)
}

func TestOrderHandler(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
