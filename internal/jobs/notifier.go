package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/SscSPs/stallchain/internal/core/ports/gateways"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/SscSPs/stallchain/internal/utils"
	"github.com/hibiken/asynq"
	"golang.org/x/text/language"
)

// Enqueuer is the part of asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

var _ Enqueuer = (*asynq.Client)(nil)

// MailNotifier renders business notifications as mails and queues them.
type MailNotifier struct {
	queue    Enqueuer
	to       string
	location *time.Location
	locale   language.Tag
}

var _ gateways.Notifier = (*MailNotifier)(nil)

// NewMailNotifier returns a notifier that mails every notification to the
// given address. Times are rendered in loc.
func NewMailNotifier(queue Enqueuer, to string, loc *time.Location) *MailNotifier {
	if loc == nil {
		loc = time.UTC
	}
	return &MailNotifier{queue: queue, to: to, location: loc, locale: language.English}
}

func (n *MailNotifier) Notify(ctx context.Context, note domain.Notification) error {
	if n.to == "" {
		middleware.GetLoggerFromCtx(ctx).Debug("No notification recipient configured, dropping", slog.String("kind", string(note.Kind)))
		return nil
	}
	task, err := NewSendMailTask(SendMailPayload{
		To:      n.to,
		Subject: note.Subject,
		Body:    n.RenderBody(note),
	})
	if err != nil {
		return fmt.Errorf("failed to build mail task: %w", err)
	}
	info, err := n.queue.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s notification: %w", note.Kind, err)
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Notification queued",
		slog.String("kind", string(note.Kind)), slog.String("task_id", info.ID))
	return nil
}

// RenderBody formats the plain text body of a notification mail.
func (n *MailNotifier) RenderBody(note domain.Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", note.Subject)
	fmt.Fprintf(&b, "Event:    %s\n", note.Kind)
	if note.StallID != "" {
		fmt.Fprintf(&b, "Stall:    %s\n", note.StallID)
	}
	fmt.Fprintf(&b, "Record:   %s\n", note.RecordID)
	if !note.Amount.IsZero() {
		fmt.Fprintf(&b, "Amount:   %s\n", utils.FormatAmount(note.Amount, n.locale))
	}
	fmt.Fprintf(&b, "When:     %s\n", note.OccurredAt.In(n.location).Format("02 Jan 2006 15:04 MST"))

	if len(note.Details) > 0 {
		b.WriteString("\n")
		keys := make([]string, 0, len(note.Details))
		for k := range note.Details {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %s\n", k, note.Details[k])
		}
	}
	return b.String()
}
