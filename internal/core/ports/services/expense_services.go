package services

import (
	"context"
	"io"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Expense, error)
}

// ExpenseWriterSvc creates and edits expenses
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Actor) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actor domain.Actor) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, expectedVersion *int64, actor domain.Actor) error
	// AttachReceipt uploads a receipt file and links it to the expense.
	AttachReceipt(ctx context.Context, expenseID string, file dto.ReceiptUpload, body io.Reader, actor domain.Actor) (*domain.Expense, error)
}

// ExpenseWorkflowSvc runs the expense approval workflow
type ExpenseWorkflowSvc interface {
	SubmitExpense(ctx context.Context, expenseID string, req dto.TransitionRequest, actor domain.Actor) (*domain.Expense, error)
	ApproveExpense(ctx context.Context, expenseID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.Expense, error)
	RejectExpense(ctx context.Context, expenseID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Expense, error)
	PayExpense(ctx context.Context, expenseID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Expense, error)
	CancelExpense(ctx context.Context, expenseID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Expense, error)
}

// ExpenseSchedulerSvc is driven by the background scheduler.
type ExpenseSchedulerSvc interface {
	// GenerateRecurringExpenses spawns a draft for every recurring expense
	// due at the current time and advances its schedule.
	GenerateRecurringExpenses(ctx context.Context) (*dto.RecurringRunResponse, error)
}

// ExpenseSvcFacade combines all expense service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	ExpenseWorkflowSvc
	ExpenseSchedulerSvc
}
