package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault carries scheduled maintenance work.
	QueueDefault = "default"
	// QueueMail carries outbound notification mails.
	QueueMail = "mail"

	// TaskSendMail delivers one notification mail.
	TaskSendMail = "mail:send"
	// TaskRefreshBatches refreshes expiry status of every active batch.
	TaskRefreshBatches = "inventory:refresh-batches"
	// TaskAdvanceRecurring spawns due occurrences of recurring expenses.
	TaskAdvanceRecurring = "expense:advance-recurring"
)

// SendMailPayload describes the information required to send an email.
type SendMailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ScheduledPayload carries scheduling metadata for cron tasks.
type ScheduledPayload struct {
	ScheduledFor time.Time `json:"scheduled_for,omitempty"`
}

// NewSendMailTask constructs a mail task.
func NewSendMailTask(payload SendMailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSendMail, data, asynq.Queue(QueueMail), asynq.MaxRetry(5)), nil
}

// NewRefreshBatchesTask constructs the batch refresh task.
func NewRefreshBatchesTask() (*asynq.Task, error) {
	return newScheduledTask(TaskRefreshBatches)
}

// NewAdvanceRecurringTask constructs the recurring expense task.
func NewAdvanceRecurringTask() (*asynq.Task, error) {
	return newScheduledTask(TaskAdvanceRecurring)
}

func newScheduledTask(taskType string) (*asynq.Task, error) {
	body, err := json.Marshal(ScheduledPayload{})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, body, asynq.Queue(QueueDefault)), nil
}
