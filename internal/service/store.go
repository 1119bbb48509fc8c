package service

import (
	"context"

	"github.com/deppfellow/project-manager/internal/lib/job"
	"github.com/deppfellow/project-manager/internal/model"
)

// ProjectStore persists projects. *repository.ProjectRepository implements
// all three stores.
type ProjectStore interface {
	CreateProject(ctx context.Context, project *model.Project) error
	GetProject(ctx context.Context, id int64) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	UpdateProject(ctx context.Context, project *model.Project) error
	DeleteProject(ctx context.Context, id int64) error
}

type EmployeeStore interface {
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	GetEmployee(ctx context.Context, id int64) (*model.Employee, error)
	ListEmployees(ctx context.Context, projectID *int64) ([]model.Employee, error)
	UpdateEmployee(ctx context.Context, employee *model.Employee) error
	AssignProjectToEmployee(ctx context.Context, projectID, employeeID int64) error
	DeleteEmployee(ctx context.Context, id int64) error
}

type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	GetAllTasks(ctx context.Context, employeeID, projectID int64) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status model.TaskStatus) error
	AssignTaskToEmployee(ctx context.Context, taskID, projectID, employeeID int64) error
	DeleteTask(ctx context.Context, id int64) error
}

// TaskNotifier queues the task assigned notification.
type TaskNotifier interface {
	EnqueueTaskAssigned(ctx context.Context, p job.TaskAssignedPayload) error
}
