package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/project-manager/internal/model"
	"github.com/deppfellow/project-manager/internal/server"
	"github.com/deppfellow/project-manager/internal/service"
	"github.com/deppfellow/project-manager/internal/validation"
	"github.com/labstack/echo/v4"
)

type TaskHandler struct {
	Handler
	taskService *service.TaskService
}

func NewTaskHandler(s *server.Server, taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		Handler:     NewHandler(s),
		taskService: taskService,
	}
}

type CreateTaskRequest struct {
	Description    string     `json:"description" validate:"required"`
	Status         string     `json:"status" validate:"omitempty,oneof=assigned started completed"`
	EmployeeID     int64      `json:"employeeId" validate:"required,min=1"`
	ProjectID      int64      `json:"projectId" validate:"required,min=1"`
	AllocationDate *time.Time `json:"allocationDate"`
	DeadlineDate   *time.Time `json:"deadlineDate"`
}

func (r *CreateTaskRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.AllocationDate != nil && r.DeadlineDate != nil && r.DeadlineDate.Before(*r.AllocationDate) {
		return validation.CustomValidationErrors{
			{Field: "deadlineDate", Message: "must not be before allocationDate"},
		}
	}
	return nil
}

type TaskIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *TaskIDRequest) Validate() error {
	return validation.Struct(r)
}

// ListTasksRequest selects the tasks of one employee within one project.
type ListTasksRequest struct {
	ProjectID  int64 `param:"project_id" validate:"required,min=1"`
	EmployeeID int64 `param:"employee_id" validate:"required,min=1"`
}

func (r *ListTasksRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateTaskStatusRequest struct {
	ID     int64  `param:"id" json:"-" validate:"required,min=1"`
	Status string `json:"status" validate:"required,oneof=assigned started completed"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	return validation.Struct(r)
}

type AssignTaskRequest struct {
	ID         int64 `param:"id" json:"-" validate:"required,min=1"`
	EmployeeID int64 `json:"employeeId" validate:"required,min=1"`
	ProjectID  int64 `json:"projectId" validate:"required,min=1"`
}

func (r *AssignTaskRequest) Validate() error {
	return validation.Struct(r)
}

func (h *TaskHandler) CreateTask() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateTaskRequest) (*model.Task, error) {
		task := &model.Task{
			Description:    req.Description,
			Status:         model.TaskStatus(req.Status),
			EmployeeID:     req.EmployeeID,
			ProjectID:      req.ProjectID,
			AllocationDate: req.AllocationDate,
			DeadlineDate:   req.DeadlineDate,
		}
		if err := h.taskService.CreateTask(c.Request().Context(), task); err != nil {
			return nil, err
		}
		return task, nil
	}, http.StatusCreated, func() *CreateTaskRequest { return &CreateTaskRequest{} })
}

func (h *TaskHandler) GetTask() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *TaskIDRequest) (*model.Task, error) {
		return h.taskService.GetTask(c.Request().Context(), req.ID)
	}, http.StatusOK, func() *TaskIDRequest { return &TaskIDRequest{} })
}

// ListTasks returns an empty array, not 404, when nothing matches.
func (h *TaskHandler) ListTasks() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ListTasksRequest) ([]model.Task, error) {
		return h.taskService.GetAllTasks(c.Request().Context(), req.EmployeeID, req.ProjectID)
	}, http.StatusOK, func() *ListTasksRequest { return &ListTasksRequest{} })
}

func (h *TaskHandler) UpdateTaskStatus() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *UpdateTaskStatusRequest) error {
		return h.taskService.UpdateTaskStatus(c.Request().Context(), req.ID, model.TaskStatus(req.Status))
	}, http.StatusNoContent, func() *UpdateTaskStatusRequest { return &UpdateTaskStatusRequest{} })
}

func (h *TaskHandler) AssignTask() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *AssignTaskRequest) error {
		return h.taskService.AssignTask(c.Request().Context(), req.ID, req.ProjectID, req.EmployeeID)
	}, http.StatusNoContent, func() *AssignTaskRequest { return &AssignTaskRequest{} })
}

func (h *TaskHandler) DeleteTask() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *TaskIDRequest) error {
		return h.taskService.DeleteTask(c.Request().Context(), req.ID)
	}, http.StatusNoContent, func() *TaskIDRequest { return &TaskIDRequest{} })
}
