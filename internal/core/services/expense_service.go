package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/SscSPs/stallchain/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/google/uuid"
)

const (
	maxReceiptBytes = 10 << 20
	// maxCatchUpOccurrences bounds how many missed occurrences of a single
	// recurring expense one scheduler run generates.
	maxCatchUpOccurrences = 31
)

// receiptExtensions maps the accepted receipt content types to file extensions.
var receiptExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// schedulerActor is recorded on writes made by background jobs.
var schedulerActor = domain.Actor{UserID: "system", UserName: "Scheduler"}

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	receipts    gateways.ReceiptStorage
}

// ExpenseOption configures the expense service.
type ExpenseOption func(*expenseService)

// WithReceiptStorage enables receipt uploads.
func WithReceiptStorage(storage gateways.ReceiptStorage) ExpenseOption {
	return func(s *expenseService) {
		s.receipts = storage
	}
}

// NewExpenseService creates the service running the expense approval workflow.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, expenseOpts []ExpenseOption, opts ...Option) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		BaseService: newBaseService(opts),
		expenseRepo: repo,
	}
	for _, opt := range expenseOpts {
		opt(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	e, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return e, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Expense, error) {
	list, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("stall_id", filter.StallID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return list, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := s.EnsureStall(ctx, req.StallID); err != nil {
		return nil, err
	}

	e, err := domain.NewExpense(uuid.NewString(), req.StallID, req.ToDetails())
	if err != nil {
		return nil, err
	}
	e.Versioned = domain.Versioned{Version: 1}
	e.AuditFields = domain.NewAuditFields(actor.UserID, s.Now())

	if err := s.expenseRepo.Save(ctx, *e); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("stall_id", req.StallID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", e.ExpenseID),
		slog.String("type", string(e.ExpenseType)),
		slog.String("total", e.TotalWithTax.StringFixed(domain.MoneyPlaces)))
	return e, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	return s.mutate(ctx, expenseID, req.ExpectedVersion, actor, func(e *domain.Expense) error {
		return e.UpdateDetails(req.ToDetails())
	})
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, expectedVersion *int64, actor domain.Actor) error {
	_, err := s.mutate(ctx, expenseID, expectedVersion, actor, func(e *domain.Expense) error {
		if e.Status != domain.ExpenseDraft && e.Status != domain.ExpenseCancelled && e.Status != domain.ExpenseRejected {
			return apperrors.NewInvalidTransitionError("expense", string(e.Status), "delete")
		}
		e.IsActive = false
		return nil
	})
	return err
}

func (s *expenseService) AttachReceipt(ctx context.Context, expenseID string, file dto.ReceiptUpload, body io.Reader, actor domain.Actor) (*domain.Expense, error) {
	if s.receipts == nil {
		return nil, apperrors.NewValidationFailedError("receipt uploads are not configured")
	}
	ext, ok := receiptExtensions[file.ContentType]
	if !ok {
		return nil, apperrors.NewValidationFailedError("unsupported receipt type " + file.ContentType)
	}
	if file.Size <= 0 || file.Size > maxReceiptBytes {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("receipt must be between 1 byte and %d MB", maxReceiptBytes>>20))
	}

	current, err := s.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("receipts/%s/%s/%s%s", current.StallID, current.ExpenseID, uuid.NewString(), ext)
	url, err := s.receipts.PutReceipt(ctx, key, file.ContentType, file.Size, body)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload receipt", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to upload receipt: %w", err)
	}

	e, err := s.mutate(ctx, expenseID, &current.Version, actor, func(e *domain.Expense) error {
		return e.AttachReceipt(url)
	})
	if err != nil {
		if delErr := s.receipts.DeleteReceipt(ctx, key); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove orphaned receipt", slog.String("key", key))
		}
		return nil, err
	}
	return e, nil
}

func (s *expenseService) SubmitExpense(ctx context.Context, expenseID string, req dto.TransitionRequest, actor domain.Actor) (*domain.Expense, error) {
	now := s.Now()
	return s.mutate(ctx, expenseID, req.ExpectedVersion, actor, func(e *domain.Expense) error {
		return e.Submit(actor, now)
	})
}

func (s *expenseService) ApproveExpense(ctx context.Context, expenseID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.Expense, error) {
	if err := s.RequireApprover(ctx, actor, "approve expenses"); err != nil {
		return nil, err
	}
	now := s.Now()
	e, err := s.mutate(ctx, expenseID, req.ExpectedVersion, actor, func(e *domain.Expense) error {
		return e.Approve(actor, req.Comments, now)
	})
	if err != nil {
		return nil, err
	}
	s.notifyExpense(ctx, e, domain.NotifyExpenseApproved, "Expense approved: "+e.Title, req.Comments)
	return e, nil
}

func (s *expenseService) RejectExpense(ctx context.Context, expenseID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Expense, error) {
	if err := s.RequireApprover(ctx, actor, "reject expenses"); err != nil {
		return nil, err
	}
	now := s.Now()
	e, err := s.mutate(ctx, expenseID, req.ExpectedVersion, actor, func(e *domain.Expense) error {
		return e.Reject(actor, req.Reason, now)
	})
	if err != nil {
		return nil, err
	}
	s.notifyExpense(ctx, e, domain.NotifyExpenseRejected, "Expense rejected: "+e.Title, req.Reason)
	return e, nil
}

func (s *expenseService) PayExpense(ctx context.Context, expenseID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Expense, error) {
	if err := s.RequireApprover(ctx, actor, "pay expenses"); err != nil {
		return nil, err
	}
	now := s.Now()
	e, err := s.mutate(ctx, expenseID, req.ExpectedVersion, actor, func(e *domain.Expense) error {
		return e.MarkAsPaid(actor, paymentInput(req), now)
	})
	if err != nil {
		return nil, err
	}
	s.notifyExpense(ctx, e, domain.NotifyExpensePaid, "Expense paid: "+e.Title, req.TransactionRef)
	return e, nil
}

func (s *expenseService) CancelExpense(ctx context.Context, expenseID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Expense, error) {
	now := s.Now()
	return s.mutate(ctx, expenseID, req.ExpectedVersion, actor, func(e *domain.Expense) error {
		return e.Cancel(actor, req.Reason, now)
	})
}

func (s *expenseService) GenerateRecurringExpenses(ctx context.Context) (*dto.RecurringRunResponse, error) {
	templates, err := s.expenseRepo.FindRecurring(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load recurring expenses")
		return nil, fmt.Errorf("failed to load recurring expenses: %w", err)
	}

	now := s.Now()
	resp := &dto.RecurringRunResponse{Generated: []string{}}
	for i := range templates {
		tmpl := templates[i]
		for n := 0; n < maxCatchUpOccurrences && tmpl.IsRecurrenceDue(now); n++ {
			occ, err := s.spawnOccurrence(ctx, &tmpl, now)
			if err != nil {
				s.LogError(ctx, err, "Failed to generate recurring expense", slog.String("template_id", tmpl.ExpenseID))
				resp.Failed = append(resp.Failed, tmpl.ExpenseID)
				break
			}
			resp.Generated = append(resp.Generated, occ.ExpenseID)
		}
	}

	s.LogInfo(ctx, "Recurring expenses generated",
		slog.Int("templates", len(templates)),
		slog.Int("generated", len(resp.Generated)),
		slog.Int("failed", len(resp.Failed)))
	return resp, nil
}

// spawnOccurrence advances tmpl by one due date and stores the template with
// its new occurrence atomically. tmpl is left untouched on failure.
func (s *expenseService) spawnOccurrence(ctx context.Context, tmpl *domain.Expense, now time.Time) (*domain.Expense, error) {
	next := *tmpl
	due, err := next.AdvanceRecurrence(now)
	if err != nil {
		return nil, err
	}
	next.Touch(schedulerActor.UserID, now)
	next.BumpVersion()

	occ := tmpl.NewOccurrence(uuid.NewString(), due)
	occ.Versioned = domain.Versioned{Version: 1}
	occ.AuditFields = domain.NewAuditFields(schedulerActor.UserID, now)

	if err := s.expenseRepo.SaveOccurrence(ctx, next, *occ); err != nil {
		return nil, err
	}
	*tmpl = next
	return occ, nil
}

func (s *expenseService) notifyExpense(ctx context.Context, e *domain.Expense, kind domain.NotificationKind, subject, note string) {
	details := map[string]string{
		"expenseType": string(e.ExpenseType),
		"vendor":      e.VendorName,
	}
	if note != "" {
		details["note"] = note
	}
	s.Notify(ctx, domain.Notification{
		Kind:     kind,
		StallID:  e.StallID,
		RecordID: e.ExpenseID,
		Subject:  subject,
		Amount:   e.TotalWithTax,
		Details:  details,
	})
}

func (s *expenseService) mutate(ctx context.Context, expenseID string, expectedVersion *int64, actor domain.Actor, fn func(*domain.Expense) error) (*domain.Expense, error) {
	e, err := mutate[domain.Expense](ctx, s.expenseRepo, "expense", expenseID, expectedVersion, actor, s.Now(), fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return e, nil
}
