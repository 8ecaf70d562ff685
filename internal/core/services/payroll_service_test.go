package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/core/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockRecordRepository[domain.Payroll]
	mockGuard    *MockStallGuard
	mockNotifier *MockNotifier
	service      portssvc.PayrollSvcFacade
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecordRepository[domain.Payroll])
	suite.mockGuard = new(MockStallGuard)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewPayrollService(suite.mockRepo,
		services.WithClock(fixedClock),
		services.WithStallGuard(suite.mockGuard),
		services.WithNotifier(suite.mockNotifier))
}

func cookComponents() domain.PayrollComponents {
	return domain.PayrollComponents{
		BaseSalary: dec("20000"),
		Allowances: domain.Allowances{HouseRent: dec("5000")},
		Attendance: domain.Attendance{TotalWorkingDays: 26, PresentDays: 24, TotalLeaveDays: 2},
		Overtime:   domain.Overtime{Hours: dec("10"), Rate: dec("100")},
		Deductions: domain.Deductions{ProvidentFund: dec("1800"), Advance: dec("2000")},
		Bonuses:    domain.Bonuses{Festival: dec("1000")},

		RoundOffAmount: dec("0.5"),
	}
}

func payrollIn(status domain.PayrollStatus) *domain.Payroll {
	p := &domain.Payroll{
		PayrollID:         "pay-1",
		StallID:           "stall-1",
		EmployeeID:        "emp-7",
		EmployeeName:      "Lakshmi",
		Period:            domain.PayrollPeriod{MonthYear: "2025-05"},
		PayrollComponents: cookComponents(),
		Status:            status,
		IsActive:          true,
		Versioned:         domain.Versioned{Version: 2},
	}
	_ = p.Calculate()
	return p
}

// --- Test Cases ---

func (suite *PayrollServiceTestSuite) TestCreatePayroll_CalculatesTotals() {
	ctx := context.Background()
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreatePayrollRequest{
		StallID:           "stall-1",
		EmployeeID:        "emp-7",
		EmployeeName:      "Lakshmi",
		Designation:       "Cook",
		StartDate:         start,
		EndDate:           start.AddDate(0, 1, -1),
		PayrollComponents: cookComponents(),
	}

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()
	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(p domain.Payroll) bool {
		return p.Status == domain.PayrollDraft && p.Period.MonthYear == "2025-05" && p.Version == 1
	})).Return(nil).Once()

	p, err := suite.service.CreatePayroll(ctx, req, testAccountant)

	suite.Require().NoError(err)
	suite.True(dec("25000").Equal(p.GrossSalary))
	suite.True(dec("1000").Equal(p.OvertimeAmount))
	suite.True(dec("3800").Equal(p.TotalDeductions))
	suite.True(dec("23200").Equal(p.NetPayableSalary))
	suite.True(dec("23200.5").Equal(p.FinalPayment), "final %s", p.FinalPayment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCreatePayroll_AttendanceOverflow() {
	ctx := context.Background()
	c := cookComponents()
	c.Attendance.AbsentDays = 5
	req := dto.CreatePayrollRequest{StallID: "stall-1", EmployeeID: "emp-7", EmployeeName: "Lakshmi", PayrollComponents: c}

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()

	p, err := suite.service.CreatePayroll(ctx, req, testAccountant)

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestUpdatePayroll_OnlyDrafts() {
	ctx := context.Background()
	c := cookComponents()
	c.BaseSalary = dec("22000")

	suite.mockRepo.On("FindByID", ctx, "pay-1").Return(payrollIn(domain.PayrollDraft), nil).Once()
	suite.mockRepo.On("Update", ctx, withVersion[domain.Payroll](3)).Return(nil).Once()

	p, err := suite.service.UpdatePayroll(ctx, "pay-1", dto.UpdatePayrollRequest{PayrollComponents: c}, testAccountant)
	suite.Require().NoError(err)
	suite.True(dec("27000").Equal(p.GrossSalary))

	suite.mockRepo.On("FindByID", ctx, "pay-1").Return(payrollIn(domain.PayrollApproved), nil).Once()
	_, err = suite.service.UpdatePayroll(ctx, "pay-1", dto.UpdatePayrollRequest{PayrollComponents: c}, testAccountant)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *PayrollServiceTestSuite) TestApprovePayroll_StaffForbidden() {
	p, err := suite.service.ApprovePayroll(context.Background(), "pay-1", dto.ApprovalRequest{}, testStaff)

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestApprovePayroll_RecordsApprover() {
	ctx := context.Background()

	suite.mockRepo.On("FindByID", ctx, "pay-1").Return(payrollIn(domain.PayrollPendingApproval), nil).Once()
	suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

	p, err := suite.service.ApprovePayroll(ctx, "pay-1", dto.ApprovalRequest{Comments: "ok"}, testManager)

	suite.Require().NoError(err)
	suite.Equal(domain.PayrollApproved, p.Status)
	suite.Equal(testManager, p.ApprovalDetails.ApprovedBy)
	suite.Equal(testNow, p.ApprovalDetails.ApprovedAt)
}

func (suite *PayrollServiceTestSuite) TestMarkPayrollPaid_Notifies() {
	ctx := context.Background()
	req := dto.PaymentRequest{PaymentMode: "upi", TransactionRef: "UPI-991"}

	suite.mockRepo.On("FindByID", ctx, "pay-1").Return(payrollIn(domain.PayrollApproved), nil).Once()
	suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotifyPayrollPaid && n.RecordID == "pay-1" && n.Amount.Equal(dec("23200.5"))
	})).Return(errors.New("queue unavailable")).Once()

	p, err := suite.service.MarkPayrollPaid(ctx, "pay-1", req, testOwner)

	suite.Require().NoError(err, "notification failures are not surfaced")
	suite.Equal(domain.PayrollPaid, p.Status)
	suite.Equal(domain.PaymentUPI, p.PaymentDetails.PaymentMode)
	suite.Equal(testNow, *p.PaymentDetails.PaymentDate)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestMarkPayrollPaid_DefaultsToBankTransfer() {
	ctx := context.Background()

	suite.mockRepo.On("FindByID", ctx, "pay-1").Return(payrollIn(domain.PayrollApproved), nil).Once()
	suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	p, err := suite.service.MarkPayrollPaid(ctx, "pay-1", dto.PaymentRequest{}, testOwner)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentBankTransfer, p.PaymentDetails.PaymentMode)
}

func (suite *PayrollServiceTestSuite) TestDeletePayroll() {
	ctx := context.Background()
	tests := []struct {
		name    string
		payroll *domain.Payroll
		wantErr error
	}{
		{"draft is deleted", payrollIn(domain.PayrollDraft), nil},
		{"approved is kept", payrollIn(domain.PayrollApproved), apperrors.ErrInvalidStateTransition},
		{"already deleted", func() *domain.Payroll { p := payrollIn(domain.PayrollDraft); p.IsActive = false; return p }(), apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockRepo.On("FindByID", ctx, "pay-1").Return(tt.payroll, nil).Once()
			if tt.wantErr == nil {
				suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(p domain.Payroll) bool { return !p.IsActive })).Return(nil).Once()
			}

			err := suite.service.DeletePayroll(ctx, "pay-1", nil, testAccountant)

			if tt.wantErr != nil {
				suite.ErrorIs(err, tt.wantErr)
				return
			}
			suite.NoError(err)
		})
	}
}

func (suite *PayrollServiceTestSuite) TestCancelPayroll_PaidIsFinal() {
	ctx := context.Background()

	suite.mockRepo.On("FindByID", ctx, "pay-1").Return(payrollIn(domain.PayrollPaid), nil).Once()

	p, err := suite.service.CancelPayroll(ctx, "pay-1", dto.ReasonRequest{Reason: "duplicate"}, testManager)

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func TestPayrollService(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
