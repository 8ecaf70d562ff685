package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/SscSPs/stallchain/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	StallGuard portssvc.StallGuardSvc
	Notifier   gateways.Notifier
	Clock      func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithStallGuard adds the stall existence check run before records are created.
func WithStallGuard(guard portssvc.StallGuardSvc) Option {
	return func(s *BaseService) {
		s.StallGuard = guard
	}
}

// WithNotifier adds the outbound notification queue.
func WithNotifier(n gateways.Notifier) Option {
	return func(s *BaseService) {
		s.Notifier = n
	}
}

func newBaseService(opts []Option) BaseService {
	var b BaseService
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// EnsureStall checks that stallID names an operating stall.
func (s *BaseService) EnsureStall(ctx context.Context, stallID string) error {
	if s.StallGuard == nil {
		s.LogDebug(ctx, "No stall guard provided, stall check skipped", slog.String("stall_id", stallID))
		return nil
	}
	if err := s.StallGuard.EnsureStallActive(ctx, stallID); err != nil {
		s.LogError(ctx, err, "Stall check failed", slog.String("stall_id", stallID))
		return err
	}
	return nil
}

// RequireApprover rejects actors whose role may not run approval-type transitions.
func (s *BaseService) RequireApprover(ctx context.Context, actor domain.Actor, action string) error {
	if actor.UserRole.CanApprove() {
		return nil
	}
	s.LogDebug(ctx, "Approval denied",
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.UserRole)),
		slog.String("action", action))
	return apperrors.NewAppError(http.StatusForbidden, "role "+string(actor.UserRole)+" may not "+action, apperrors.ErrForbidden)
}

// Notify queues n. Delivery is best effort: failures are logged, never returned.
func (s *BaseService) Notify(ctx context.Context, n domain.Notification) {
	if s.Notifier == nil {
		return
	}
	if n.OccurredAt.IsZero() {
		n.OccurredAt = s.Now()
	}
	if err := s.Notifier.Notify(ctx, n); err != nil {
		s.LogError(ctx, err, "Failed to queue notification",
			slog.String("kind", string(n.Kind)),
			slog.String("record_id", n.RecordID))
	}
}

// writable is the pointer side of a stored record.
type writable[T domain.Record] interface {
	*T
	domain.Record
	BumpVersion()
	Touch(userID string, now time.Time)
}

// mutate loads an active record, checks the caller's expected version, applies
// fn and stores the result one version ahead. Soft-deleted records read as not
// found. Nothing is written when fn fails.
func mutate[T domain.Record, P writable[T]](
	ctx context.Context,
	repo portsrepo.RecordRepository[T],
	entity, id string,
	expectedVersion *int64,
	actor domain.Actor,
	now time.Time,
	fn func(P) error,
) (*T, error) {
	return mutateRecord[T, P](ctx, repo, entity, id, expectedVersion, actor, now, false, fn)
}

// mutateIncludingInactive is mutate for flows that must still reach
// deactivated records, such as stock movements on an expired batch.
func mutateIncludingInactive[T domain.Record, P writable[T]](
	ctx context.Context,
	repo portsrepo.RecordRepository[T],
	entity, id string,
	expectedVersion *int64,
	actor domain.Actor,
	now time.Time,
	fn func(P) error,
) (*T, error) {
	return mutateRecord[T, P](ctx, repo, entity, id, expectedVersion, actor, now, true, fn)
}

func mutateRecord[T domain.Record, P writable[T]](
	ctx context.Context,
	repo portsrepo.RecordRepository[T],
	entity, id string,
	expectedVersion *int64,
	actor domain.Actor,
	now time.Time,
	includeInactive bool,
	fn func(P) error,
) (*T, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	rec, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := P(rec)
	if !includeInactive && !p.RecordActive() {
		return nil, apperrors.NewNotFoundError(entity + " " + id + " not found")
	}
	if expectedVersion != nil && *expectedVersion != p.CurrentVersion() {
		return nil, apperrors.NewVersionConflictError(entity, id)
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	p.Touch(actor.UserID, now)
	p.BumpVersion()
	if err := repo.Update(ctx, *rec); err != nil {
		return nil, err
	}
	return rec, nil
}
