package handler

import (
	"net/http"

	"github.com/deppfellow/project-manager/internal/model"
	"github.com/deppfellow/project-manager/internal/server"
	"github.com/deppfellow/project-manager/internal/service"
	"github.com/deppfellow/project-manager/internal/validation"
	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct {
	Handler
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:         NewHandler(s),
		employeeService: employeeService,
	}
}

type EmployeePayload struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Designation string  `json:"designation" validate:"required,max=255"`
	Gender      string  `json:"gender" validate:"required,max=32"`
	Salary      float64 `json:"salary" validate:"gte=0"`
	ProjectID   int64   `json:"projectId" validate:"required,min=1"`
	Role        string  `json:"role" validate:"required,max=64"`
}

func (p EmployeePayload) toModel(id int64) *model.Employee {
	return &model.Employee{
		Base:        model.Base{ID: id},
		Name:        p.Name,
		Designation: p.Designation,
		Gender:      p.Gender,
		Salary:      p.Salary,
		ProjectID:   p.ProjectID,
		Role:        p.Role,
	}
}

type CreateEmployeeRequest struct {
	EmployeePayload
}

func (r *CreateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

type EmployeeIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *EmployeeIDRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateEmployeeRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	EmployeePayload
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

// ListEmployeesRequest filters by project when ProjectID is set.
type ListEmployeesRequest struct {
	ProjectID int64 `query:"project_id" validate:"omitempty,min=1"`
}

func (r *ListEmployeesRequest) Validate() error {
	return validation.Struct(r)
}

type AssignProjectRequest struct {
	ID        int64 `param:"id" json:"-" validate:"required,min=1"`
	ProjectID int64 `json:"projectId" validate:"required,min=1"`
}

func (r *AssignProjectRequest) Validate() error {
	return validation.Struct(r)
}

func (h *EmployeeHandler) CreateEmployee() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateEmployeeRequest) (*model.Employee, error) {
		employee := req.toModel(0)
		if err := h.employeeService.CreateEmployee(c.Request().Context(), employee); err != nil {
			return nil, err
		}
		return employee, nil
	}, http.StatusCreated, func() *CreateEmployeeRequest { return &CreateEmployeeRequest{} })
}

func (h *EmployeeHandler) GetEmployee() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *EmployeeIDRequest) (*model.Employee, error) {
		return h.employeeService.GetEmployee(c.Request().Context(), req.ID)
	}, http.StatusOK, func() *EmployeeIDRequest { return &EmployeeIDRequest{} })
}

func (h *EmployeeHandler) ListEmployees() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ListEmployeesRequest) ([]model.Employee, error) {
		var projectID *int64
		if req.ProjectID > 0 {
			projectID = &req.ProjectID
		}
		return h.employeeService.ListEmployees(c.Request().Context(), projectID)
	}, http.StatusOK, func() *ListEmployeesRequest { return &ListEmployeesRequest{} })
}

func (h *EmployeeHandler) UpdateEmployee() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateEmployeeRequest) (*model.Employee, error) {
		ctx := c.Request().Context()
		if err := h.employeeService.UpdateEmployee(ctx, req.toModel(req.ID)); err != nil {
			return nil, err
		}
		return h.employeeService.GetEmployee(ctx, req.ID)
	}, http.StatusOK, func() *UpdateEmployeeRequest { return &UpdateEmployeeRequest{} })
}

func (h *EmployeeHandler) AssignProject() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *AssignProjectRequest) error {
		return h.employeeService.AssignProject(c.Request().Context(), req.ID, req.ProjectID)
	}, http.StatusNoContent, func() *AssignProjectRequest { return &AssignProjectRequest{} })
}

func (h *EmployeeHandler) DeleteEmployee() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *EmployeeIDRequest) error {
		return h.employeeService.DeleteEmployee(c.Request().Context(), req.ID)
	}, http.StatusNoContent, func() *EmployeeIDRequest { return &EmployeeIDRequest{} })
}
