package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/SscSPs/stallchain/internal/jobs"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func payrollPaid() domain.Notification {
	return domain.Notification{
		Kind:       domain.NotifyPayrollPaid,
		StallID:    "stall-1",
		RecordID:   "pay-1",
		Subject:    "Salary paid to Ravi for June 2025",
		Amount:     decimal.RequireFromString("23200.5"),
		Details:    map[string]string{"paymentMode": "upi", "employee": "Ravi"},
		OccurredAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestMailNotifier_QueuesMail(t *testing.T) {
	ctx := context.Background()
	queue := new(MockEnqueuer)
	var queued *asynq.Task
	queue.On("EnqueueContext", ctx, mock.Anything).
		Run(func(args mock.Arguments) { queued = args.Get(1).(*asynq.Task) }).
		Return(&asynq.TaskInfo{ID: "task-1"}, nil).Once()

	kolkata := time.FixedZone("IST", 5*3600+1800)
	notifier := jobs.NewMailNotifier(queue, "owner@example.com", kolkata)

	require.NoError(t, notifier.Notify(ctx, payrollPaid()))
	require.NotNil(t, queued)
	assert.Equal(t, jobs.TaskSendMail, queued.Type())

	var payload jobs.SendMailPayload
	require.NoError(t, json.Unmarshal(queued.Payload(), &payload))
	assert.Equal(t, "owner@example.com", payload.To)
	assert.Equal(t, "Salary paid to Ravi for June 2025", payload.Subject)
	assert.Contains(t, payload.Body, "Amount:   23,200.50")
	assert.Contains(t, payload.Body, "When:     15 Jun 2025 16:00 IST")
	assert.Regexp(t, `employee: Ravi\npaymentMode: upi\n$`, payload.Body)
	queue.AssertExpectations(t)
}

func TestMailNotifier_NoRecipient(t *testing.T) {
	queue := new(MockEnqueuer)
	notifier := jobs.NewMailNotifier(queue, "", nil)

	assert.NoError(t, notifier.Notify(context.Background(), payrollPaid()))
	queue.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestMailNotifier_EnqueueError(t *testing.T) {
	ctx := context.Background()
	queue := new(MockEnqueuer)
	queue.On("EnqueueContext", ctx, mock.Anything).Return(nil, errors.New("redis down")).Once()

	err := jobs.NewMailNotifier(queue, "owner@example.com", nil).Notify(ctx, payrollPaid())

	assert.ErrorContains(t, err, "redis down")
}

func TestRenderBody_SkipsEmptyFields(t *testing.T) {
	note := domain.Notification{
		Kind:       domain.NotifyBatchNearExpiry,
		RecordID:   "batch-1",
		Subject:    "Expiring soon: Paneer batch PN-7",
		OccurredAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}

	body := jobs.NewMailNotifier(nil, "x@example.com", nil).RenderBody(note)

	assert.NotContains(t, body, "Stall:")
	assert.NotContains(t, body, "Amount:")
	assert.Contains(t, body, "Event:    inventory.near-expiry")
}
