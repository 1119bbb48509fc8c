package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type TaskStatus string

const (
	TaskStatusAssigned  TaskStatus = "assigned"
	TaskStatusStarted   TaskStatus = "started"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a unit of work owned by one employee within one project.
type Task struct {
	Base
	Description    string     `json:"description" db:"description"`
	Status         TaskStatus `json:"status" db:"status"`
	EmployeeID     int64      `json:"employeeId" db:"employee_id"`
	ProjectID      int64      `json:"projectId" db:"project_id"`
	AllocationDate *time.Time `json:"allocationDate,omitempty" db:"allocation_date"`
	DeadlineDate   *time.Time `json:"deadlineDate,omitempty" db:"deadline_date"`
}

// ValidTaskStatus reports whether s is one of the known task states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusAssigned, TaskStatusStarted, TaskStatusCompleted:
		return true
	}
	return false
}

func (t *Task) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Description, validation.Required),
		validation.Field(&t.Status, validation.Required, validation.In(
			TaskStatusAssigned,
			TaskStatusStarted,
			TaskStatusCompleted,
		)),
		validation.Field(&t.EmployeeID, validation.Required, validation.Min(int64(1))),
		validation.Field(&t.ProjectID, validation.Required, validation.Min(int64(1))),
		validation.Field(&t.DeadlineDate, validation.By(t.deadlineAfterAllocation)),
	)
}

func (t *Task) deadlineAfterAllocation(value interface{}) error {
	if t.AllocationDate == nil || t.DeadlineDate == nil {
		return nil
	}
	if t.DeadlineDate.Before(*t.AllocationDate) {
		return validation.NewError("validation_deadline_before_allocation", "must not be before the allocation date")
	}
	return nil
}
