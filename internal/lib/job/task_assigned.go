package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskAssigned is sent whenever a task is created or reassigned.
	TaskAssigned = "task:assigned"

	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// TaskAssignedPayload is the JSON payload of a TaskAssigned job.
type TaskAssignedPayload struct {
	TaskID       int64      `json:"task_id"`
	EmployeeID   int64      `json:"employee_id"`
	ProjectID    int64      `json:"project_id"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	DeadlineDate *time.Time `json:"deadline_date,omitempty"`
}

// NewTaskAssignedTask builds the Asynq task for p on the critical queue.
func NewTaskAssignedTask(p TaskAssignedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAssigned,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueCritical),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueTaskAssigned pushes a TaskAssigned job.
func (j *JobService) EnqueueTaskAssigned(ctx context.Context, p TaskAssignedPayload) error {
	task, err := NewTaskAssignedTask(p)
	if err != nil {
		return fmt.Errorf("building task assigned job: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueueing task assigned job: %w", err)
	}

	j.logger.Debug().
		Str("job_id", info.ID).
		Str("queue", info.Queue).
		Int64("task_id", p.TaskID).
		Msg("task assigned job enqueued")

	return nil
}
