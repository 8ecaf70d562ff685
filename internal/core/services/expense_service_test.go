package services_test

import (
	"context"
	"errors"
	"strings"
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

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockExpenseRepository
	mockGuard    *MockStallGuard
	mockNotifier *MockNotifier
	mockStorage  *MockReceiptStorage
	service      portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockGuard = new(MockStallGuard)
	suite.mockNotifier = new(MockNotifier)
	suite.mockStorage = new(MockReceiptStorage)
	suite.service = services.NewExpenseService(suite.mockRepo,
		[]services.ExpenseOption{services.WithReceiptStorage(suite.mockStorage)},
		services.WithClock(fixedClock),
		services.WithStallGuard(suite.mockGuard),
		services.WithNotifier(suite.mockNotifier))
}

func gasExpense(status domain.ExpenseStatus) *domain.Expense {
	e, _ := domain.NewExpense("exp-1", "stall-1", domain.ExpenseDetails{
		Title:         "LPG cylinders",
		ExpenseType:   domain.ExpenseGas,
		ExpenseAmount: dec("2000"),
		ExpenseDate:   testNow.AddDate(0, 0, -1),
		VendorName:    "Indane",
		PaymentMode:   domain.PaymentCash,
		IsTaxable:     true,
		TaxPercentage: dec("5"),
	})
	e.Status = status
	e.Versioned = domain.Versioned{Version: 3}
	return e
}

func dailyTemplate(id string, start time.Time, total int) domain.Expense {
	e, _ := domain.NewExpense(id, "stall-1", domain.ExpenseDetails{
		Title:         "Milk supply",
		ExpenseType:   domain.ExpenseRawMaterial,
		ExpenseAmount: dec("800"),
		ExpenseDate:   start,
		Recurring:     &domain.RecurringSchedule{Frequency: domain.RecurDaily, StartDate: start, TotalOccurrences: total},
	})
	e.Status = domain.ExpenseApproved
	e.Versioned = domain.Versioned{Version: 1}
	return *e
}

func receiptKey(expenseID string) any {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "receipts/stall-1/"+expenseID+"/") && strings.HasSuffix(key, ".pdf")
	})
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ComputesTax() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		StallID: "stall-1",
		ExpenseRequest: dto.ExpenseRequest{
			Title:         "LPG cylinders",
			ExpenseType:   "gas",
			ExpenseAmount: dec("2000"),
			ExpenseDate:   testNow,
			IsTaxable:     true,
			TaxPercentage: dec("5"),
		},
	}

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()
	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Status == domain.ExpenseDraft && e.Version == 1
	})).Return(nil).Once()

	e, err := suite.service.CreateExpense(ctx, req, testStaff)

	suite.Require().NoError(err)
	suite.True(dec("100").Equal(e.TaxAmount))
	suite.True(dec("2100").Equal(e.TotalWithTax))
	suite.Equal(domain.ApprovalPending, e.ApprovalDetails.ApprovalStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownType() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{StallID: "stall-1", ExpenseRequest: dto.ExpenseRequest{Title: "Ice", ExpenseType: "party"}}

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()

	e, err := suite.service.CreateExpense(ctx, req, testStaff)

	suite.Nil(e)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestApprovalFlow() {
	ctx := context.Background()

	suite.Run("submit", func() {
		suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpenseDraft), nil).Once()
		suite.mockRepo.On("Update", ctx, withVersion[domain.Expense](4)).Return(nil).Once()

		e, err := suite.service.SubmitExpense(ctx, "exp-1", dto.TransitionRequest{}, testStaff)

		suite.Require().NoError(err)
		suite.Equal(domain.ExpenseSubmitted, e.Status)
		suite.Equal(testStaff, *e.SubmittedBy)
	})

	suite.Run("staff cannot approve", func() {
		_, err := suite.service.ApproveExpense(ctx, "exp-1", dto.ApprovalRequest{}, testStaff)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})

	suite.Run("approve notifies", func() {
		suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpenseSubmitted), nil).Once()
		suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
		suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Kind == domain.NotifyExpenseApproved && n.Amount.Equal(dec("2100")) && n.Details["note"] == "fine"
		})).Return(nil).Once()

		e, err := suite.service.ApproveExpense(ctx, "exp-1", dto.ApprovalRequest{Comments: "fine"}, testManager)

		suite.Require().NoError(err)
		suite.Equal(domain.ApprovalApproved, e.ApprovalDetails.ApprovalStatus)
		suite.Equal(testManager, *e.ApprovalDetails.DecidedBy)
	})

	suite.Run("reject needs a submitted expense", func() {
		suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpenseDraft), nil).Once()

		_, err := suite.service.RejectExpense(ctx, "exp-1", dto.ReasonRequest{Reason: "no bill"}, testManager)

		suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	})

	suite.Run("pay falls back to the recorded mode", func() {
		suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpenseApproved), nil).Once()
		suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
		suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Kind == domain.NotifyExpensePaid
		})).Return(nil).Once()

		e, err := suite.service.PayExpense(ctx, "exp-1", dto.PaymentRequest{}, testAccountant)

		suite.Require().NoError(err)
		suite.Equal(domain.ExpensePaid, e.Status)
		suite.Equal(domain.PaymentCash, e.PaymentDetails.PaymentMode)
	})

	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense() {
	ctx := context.Background()

	suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpenseRejected), nil).Once()
	suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(e domain.Expense) bool { return !e.IsActive })).Return(nil).Once()
	suite.NoError(suite.service.DeleteExpense(ctx, "exp-1", nil, testManager))

	suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpensePaid), nil).Once()
	suite.ErrorIs(suite.service.DeleteExpense(ctx, "exp-1", nil, testManager), apperrors.ErrInvalidStateTransition)
}

func (suite *ExpenseServiceTestSuite) TestDeletedExpenseIsNotFound() {
	ctx := context.Background()
	deleted := gasExpense(domain.ExpenseDraft)
	deleted.IsActive = false

	suite.Run("submit", func() {
		suite.mockRepo.On("FindByID", ctx, "exp-1").Return(deleted, nil).Once()

		e, err := suite.service.SubmitExpense(ctx, "exp-1", dto.TransitionRequest{}, testStaff)

		suite.Nil(e)
		suite.ErrorIs(err, apperrors.ErrNotFound)
	})

	suite.Run("delete again", func() {
		suite.mockRepo.On("FindByID", ctx, "exp-1").Return(deleted, nil).Once()

		suite.ErrorIs(suite.service.DeleteExpense(ctx, "exp-1", nil, testManager), apperrors.ErrNotFound)
	})

	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestAttachReceipt_Success() {
	ctx := context.Background()
	body := strings.NewReader("%PDF-1.7")
	file := dto.ReceiptUpload{FileName: "bill.pdf", ContentType: "application/pdf", Size: 8}

	suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpenseSubmitted), nil).Twice()
	suite.mockStorage.On("PutReceipt", ctx, receiptKey("exp-1"), "application/pdf", int64(8), body).
		Return("https://receipts.example.com/bill.pdf", nil).Once()
	suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ReceiptURL == "https://receipts.example.com/bill.pdf" && e.Version == 4
	})).Return(nil).Once()

	e, err := suite.service.AttachReceipt(ctx, "exp-1", file, body, testStaff)

	suite.Require().NoError(err)
	suite.NotEmpty(e.ReceiptURL)
	suite.mockStorage.AssertExpectations(suite.T())
	suite.mockStorage.AssertNotCalled(suite.T(), "DeleteReceipt", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestAttachReceipt_RemovesOrphanOnFailure() {
	ctx := context.Background()
	body := strings.NewReader("%PDF-1.7")
	file := dto.ReceiptUpload{FileName: "bill.pdf", ContentType: "application/pdf", Size: 8}

	suite.mockRepo.On("FindByID", ctx, "exp-1").Return(gasExpense(domain.ExpenseCancelled), nil).Twice()
	suite.mockStorage.On("PutReceipt", ctx, receiptKey("exp-1"), "application/pdf", int64(8), body).
		Return("https://receipts.example.com/bill.pdf", nil).Once()
	suite.mockStorage.On("DeleteReceipt", ctx, receiptKey("exp-1")).Return(nil).Once()

	e, err := suite.service.AttachReceipt(ctx, "exp-1", file, body, testStaff)

	suite.Nil(e)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.mockStorage.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestAttachReceipt_RejectsBadFiles() {
	tests := []struct {
		name string
		file dto.ReceiptUpload
	}{
		{"unsupported type", dto.ReceiptUpload{ContentType: "text/plain", Size: 10}},
		{"empty file", dto.ReceiptUpload{ContentType: "image/png", Size: 0}},
		{"too large", dto.ReceiptUpload{ContentType: "image/png", Size: 11 << 20}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			e, err := suite.service.AttachReceipt(context.Background(), "exp-1", tt.file, strings.NewReader(""), testStaff)
			suite.Nil(e)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockStorage.AssertNotCalled(suite.T(), "PutReceipt", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestAttachReceipt_StorageNotConfigured() {
	svc := services.NewExpenseService(suite.mockRepo, nil, services.WithClock(fixedClock))
	file := dto.ReceiptUpload{ContentType: "application/pdf", Size: 8}

	e, err := svc.AttachReceipt(context.Background(), "exp-1", file, strings.NewReader(""), testStaff)

	suite.Nil(e)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestGenerateRecurringExpenses_CatchesUp() {
	ctx := context.Background()
	start := time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC)
	milk := dailyTemplate("tmpl-milk", start, 0)
	bread := dailyTemplate("tmpl-bread", start, 2)
	future := dailyTemplate("tmpl-future", testNow.AddDate(0, 0, 1), 0)
	unapproved := dailyTemplate("tmpl-draft", start, 0)
	unapproved.Status = domain.ExpenseDraft

	suite.mockRepo.On("FindRecurring", ctx).Return([]domain.Expense{milk, bread, future, unapproved}, nil).Once()
	suite.mockRepo.On("SaveOccurrence", ctx,
		mock.MatchedBy(func(t domain.Expense) bool { return t.ExpenseID == "tmpl-milk" }),
		mock.MatchedBy(func(o domain.Expense) bool {
			return o.TemplateID == "tmpl-milk" && o.Status == domain.ExpenseDraft && o.Recurring == nil && o.CreatedBy == "system"
		})).Return(nil).Times(3)
	suite.mockRepo.On("SaveOccurrence", ctx,
		mock.MatchedBy(func(t domain.Expense) bool { return t.ExpenseID == "tmpl-bread" }),
		mock.Anything).Return(nil).Times(2)

	resp, err := suite.service.GenerateRecurringExpenses(ctx)

	suite.Require().NoError(err)
	suite.Len(resp.Generated, 5)
	suite.Empty(resp.Failed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestGenerateRecurringExpenses_AdvancesTemplate() {
	ctx := context.Background()
	start := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	milk := dailyTemplate("tmpl-milk", start, 0)

	suite.mockRepo.On("FindRecurring", ctx).Return([]domain.Expense{milk}, nil).Once()
	suite.mockRepo.On("SaveOccurrence", ctx,
		mock.MatchedBy(func(t domain.Expense) bool {
			return t.Version == 2 &&
				t.Recurring.CompletedOccurrences == 1 &&
				t.Recurring.NextDueDate.Equal(start.AddDate(0, 0, 1)) &&
				t.LastUpdatedBy == "system"
		}),
		mock.MatchedBy(func(o domain.Expense) bool { return o.ExpenseDate.Equal(start) && o.Version == 1 })).
		Return(nil).Once()

	resp, err := suite.service.GenerateRecurringExpenses(ctx)

	suite.Require().NoError(err)
	suite.Len(resp.Generated, 1)
}

func (suite *ExpenseServiceTestSuite) TestGenerateRecurringExpenses_FailureIsReported() {
	ctx := context.Background()
	start := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindRecurring", ctx).Return([]domain.Expense{dailyTemplate("tmpl-milk", start, 0)}, nil).Once()
	suite.mockRepo.On("SaveOccurrence", ctx, mock.Anything, mock.Anything).Return(errors.New("tx aborted")).Once()

	resp, err := suite.service.GenerateRecurringExpenses(ctx)

	suite.Require().NoError(err)
	suite.Empty(resp.Generated)
	suite.Equal([]string{"tmpl-milk"}, resp.Failed)
}

func (suite *ExpenseServiceTestSuite) TestGenerateRecurringExpenses_LoadError() {
	ctx := context.Background()
	suite.mockRepo.On("FindRecurring", ctx).Return(nil, errors.New("db down")).Once()

	resp, err := suite.service.GenerateRecurringExpenses(ctx)

	suite.Nil(resp)
	suite.Error(err)
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
