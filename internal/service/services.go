// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, applies defaults and
// domain rules, and calls repository methods to interact with the data.
package service

import (
	"github.com/deppfellow/project-manager/internal/lib/job"
	"github.com/deppfellow/project-manager/internal/repository"
	"github.com/deppfellow/project-manager/internal/server"
)

type Services struct {
	Auth     *AuthService
	Job      *job.JobService
	Project  *ProjectService
	Employee *EmployeeService
	Task     *TaskService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	var notifier TaskNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Job:      s.Job,
		Auth:     authService,
		Project:  NewProjectService(repos.Project, s.Logger),
		Employee: NewEmployeeService(repos.Project, s.Logger),
		Task:     NewTaskService(repos.Project, notifier, s.Logger),
	}, nil
}
