package router

import (
	"github.com/deppfellow/project-manager/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerV1Routes(r *echo.Group, h *handler.Handlers) {
	projects := r.Group("/projects")
	projects.POST("", h.Project.CreateProject())
	projects.GET("", h.Project.ListProjects())
	projects.GET("/:id", h.Project.GetProject())
	projects.PUT("/:id", h.Project.UpdateProject())
	projects.DELETE("/:id", h.Project.DeleteProject())
	projects.GET("/:project_id/employees/:employee_id/tasks", h.Task.ListTasks())

	employees := r.Group("/employees")
	employees.POST("", h.Employee.CreateEmployee())
	employees.GET("", h.Employee.ListEmployees())
	employees.GET("/:id", h.Employee.GetEmployee())
	employees.PUT("/:id", h.Employee.UpdateEmployee())
	employees.PUT("/:id/project", h.Employee.AssignProject())
	employees.DELETE("/:id", h.Employee.DeleteEmployee())

	tasks := r.Group("/tasks")
	tasks.POST("", h.Task.CreateTask())
	tasks.GET("/:id", h.Task.GetTask())
	tasks.PATCH("/:id/status", h.Task.UpdateTaskStatus())
	tasks.PUT("/:id/assignee", h.Task.AssignTask())
	tasks.DELETE("/:id", h.Task.DeleteTask())
}
