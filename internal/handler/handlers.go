// Package handler is the HTTP layer. It binds and validates requests with
// the validation package, calls the service layer and writes responses.
package handler

import (
	"github.com/deppfellow/project-manager/internal/server"
	"github.com/deppfellow/project-manager/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Project  *ProjectHandler
	Employee *EmployeeHandler
	Task     *TaskHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Project:  NewProjectHandler(s, services.Project),
		Employee: NewEmployeeHandler(s, services.Employee),
		Task:     NewTaskHandler(s, services.Task),
	}
}
