package errs

import (
	"errors"
	"fmt"
)

// Entity names the kind of record a not-found condition refers to.
//
// The set is fixed: every repository write that can miss a row maps to
// exactly one of these.
type Entity string

const (
	EntityProject  Entity = "project"
	EntityEmployee Entity = "employee"
	EntityTask     Entity = "task"
)

// Sentinel not-found errors. Callers match them with errors.Is:
//
//	if errors.Is(err, errs.ErrProjectNotFound) { ... }
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrTaskNotFound     = errors.New("task not found")
)

// NotFoundError is returned by the repository when a statement targets a
// primary key with no matching row, or when a referenced parent row is missing.
//
// It carries the entity kind and the id that was looked up, and matches the
// sentinel for its entity through Is.
type NotFoundError struct {
	Entity Entity
	ID     int64
}

// NewProjectNotFound builds a NotFoundError for a missing project id.
func NewProjectNotFound(id int64) *NotFoundError {
	return &NotFoundError{Entity: EntityProject, ID: id}
}

// NewEmployeeNotFound builds a NotFoundError for a missing employee id.
func NewEmployeeNotFound(id int64) *NotFoundError {
	return &NotFoundError{Entity: EntityEmployee, ID: id}
}

// NewTaskNotFound builds a NotFoundError for a missing task id.
func NewTaskNotFound(id int64) *NotFoundError {
	return &NotFoundError{Entity: EntityTask, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Unwrap returns the sentinel for the error's entity.
func (e *NotFoundError) Unwrap() error {
	switch e.Entity {
	case EntityProject:
		return ErrProjectNotFound
	case EntityEmployee:
		return ErrEmployeeNotFound
	case EntityTask:
		return ErrTaskNotFound
	default:
		return nil
	}
}
