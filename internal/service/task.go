package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/project-manager/internal/errs"
	"github.com/deppfellow/project-manager/internal/lib/job"
	"github.com/deppfellow/project-manager/internal/model"
	"github.com/deppfellow/project-manager/internal/validation"
	"github.com/rs/zerolog"
)

type TaskService struct {
	store    TaskStore
	notifier TaskNotifier
	logger   *zerolog.Logger
}

// NewTaskService creates a TaskService. A nil notifier disables
// assignment notifications.
func NewTaskService(store TaskStore, notifier TaskNotifier, logger *zerolog.Logger) *TaskService {
	return &TaskService{store: store, notifier: notifier, logger: orNop(logger)}
}

// CreateTask validates task, stores it and queues a notification. An empty
// status defaults to assigned.
func (s *TaskService) CreateTask(ctx context.Context, task *model.Task) error {
	if task.Status == "" {
		task.Status = model.TaskStatusAssigned
	}

	if err := validation.FromModelError(task.Validate()); err != nil {
		return err
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("employee_id", task.EmployeeID).
		Int64("project_id", task.ProjectID).
		Msg("task created")

	s.notify(ctx, task)
	return nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return s.store.GetTask(ctx, id)
}

// GetAllTasks returns the tasks of employeeID within projectID.
func (s *TaskService) GetAllTasks(ctx context.Context, employeeID, projectID int64) ([]model.Task, error) {
	return s.store.GetAllTasks(ctx, employeeID, projectID)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, id int64, status model.TaskStatus) error {
	if !model.ValidTaskStatus(status) {
		return errs.NewBadRequestError(
			fmt.Sprintf("invalid task status %q", status),
			true, nil,
			[]errs.FieldError{{Field: "status", Error: "must be one of: assigned started completed"}},
			nil,
		)
	}
	return s.store.UpdateTaskStatus(ctx, id, status)
}

// AssignTask hands task taskID to employeeID within projectID and queues a
// notification for the new assignee.
func (s *TaskService) AssignTask(ctx context.Context, taskID, projectID, employeeID int64) error {
	if err := s.store.AssignTaskToEmployee(ctx, taskID, projectID, employeeID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Int64("employee_id", employeeID).
		Int64("project_id", projectID).
		Msg("task assigned")

	if s.notifier == nil {
		return nil
	}

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("task_id", taskID).Msg("could not load task for notification")
		return nil
	}

	s.notify(ctx, task)
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("task_id", id).Msg("task deleted")
	return nil
}

// notify queues the assignment email. Failures are logged; the write has
// already been committed.
func (s *TaskService) notify(ctx context.Context, task *model.Task) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.EnqueueTaskAssigned(ctx, job.TaskAssignedPayload{
		TaskID:       task.ID,
		EmployeeID:   task.EmployeeID,
		ProjectID:    task.ProjectID,
		Description:  task.Description,
		Status:       string(task.Status),
		DeadlineDate: task.DeadlineDate,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to enqueue task assigned notification")
	}
}
