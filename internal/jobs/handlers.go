package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/hibiken/asynq"
)

// BatchRefresher is the inventory operation run by TaskRefreshBatches.
type BatchRefresher interface {
	RefreshAllBatches(ctx context.Context) (*dto.BatchRefreshSummary, error)
}

// RecurringGenerator is the expense operation run by TaskAdvanceRecurring.
type RecurringGenerator interface {
	GenerateRecurringExpenses(ctx context.Context) (*dto.RecurringRunResponse, error)
}

// Handlers processes the stallchain task types.
type Handlers struct {
	batches   BatchRefresher
	recurring RecurringGenerator
	mailer    Mailer
	logger    *slog.Logger
}

// NewHandlers wires task handlers to their collaborators. A nil mailer logs
// mails instead of sending them.
func NewHandlers(batches BatchRefresher, recurring RecurringGenerator, mailer Mailer, logger *slog.Logger) *Handlers {
	return &Handlers{batches: batches, recurring: recurring, mailer: mailer, logger: logger}
}

// TaskHandlers lists the handlers for worker registration.
func (h *Handlers) TaskHandlers() []TaskHandler {
	return []TaskHandler{
		{Type: TaskSendMail, Handler: h.HandleSendMail},
		{Type: TaskRefreshBatches, Handler: h.HandleRefreshBatches},
		{Type: TaskAdvanceRecurring, Handler: h.HandleAdvanceRecurring},
	}
}

func (h *Handlers) taskContext(ctx context.Context, t *asynq.Task) (context.Context, *slog.Logger) {
	logger := h.logger.With(slog.String("task", t.Type()))
	if id, ok := asynq.GetTaskID(ctx); ok {
		logger = logger.With(slog.String("task_id", id))
	}
	return middleware.WithLogger(ctx, logger), logger
}

// HandleSendMail processes TaskSendMail tasks.
func (h *Handlers) HandleSendMail(ctx context.Context, t *asynq.Task) error {
	ctx, logger := h.taskContext(ctx, t)
	var payload SendMailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("Malformed mail payload", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if h.mailer == nil {
		logger.Info("Mail delivery disabled, dropping mail", slog.String("to", payload.To), slog.String("subject", payload.Subject))
		return nil
	}
	if err := h.mailer.Send(ctx, payload); err != nil {
		logger.Warn("Mail delivery failed", slog.String("to", payload.To), slog.String("error", err.Error()))
		return err
	}
	logger.Info("Mail sent", slog.String("to", payload.To), slog.String("subject", payload.Subject))
	return nil
}

// HandleRefreshBatches processes TaskRefreshBatches tasks. Per-batch failures
// are logged without failing the task; the next run retries them.
func (h *Handlers) HandleRefreshBatches(ctx context.Context, t *asynq.Task) error {
	ctx, logger := h.taskContext(ctx, t)
	summary, err := h.batches.RefreshAllBatches(ctx)
	if err != nil {
		logger.Error("Batch refresh failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Batch refresh finished",
		slog.Int("refreshed", summary.Refreshed),
		slog.Int("expired", len(summary.Expired)),
		slog.Int("near_expiry", len(summary.NearExpiry)),
		slog.Int("low_stock", len(summary.LowStock)),
		slog.Int("alerts_queued", summary.AlertsQueued),
		slog.Any("failed", summary.Failed))
	return nil
}

// HandleAdvanceRecurring processes TaskAdvanceRecurring tasks.
func (h *Handlers) HandleAdvanceRecurring(ctx context.Context, t *asynq.Task) error {
	ctx, logger := h.taskContext(ctx, t)
	run, err := h.recurring.GenerateRecurringExpenses(ctx)
	if err != nil {
		logger.Error("Recurring expense run failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Recurring expense run finished",
		slog.Int("generated", len(run.Generated)),
		slog.Any("failed", run.Failed))
	return nil
}
