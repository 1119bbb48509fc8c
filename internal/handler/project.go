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

type ProjectHandler struct {
	Handler
	projectService *service.ProjectService
}

func NewProjectHandler(s *server.Server, projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		Handler:        NewHandler(s),
		projectService: projectService,
	}
}

type ProjectPayload struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	Status      string    `json:"status" validate:"omitempty,oneof=started dev build test deployed"`
}

func (p ProjectPayload) toModel(id int64) *model.Project {
	return &model.Project{
		Base:        model.Base{ID: id},
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		Status:      model.ProjectStatus(p.Status),
	}
}

type CreateProjectRequest struct {
	ProjectPayload
}

func (r *CreateProjectRequest) Validate() error {
	return validation.Struct(r)
}

type ProjectIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *ProjectIDRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateProjectRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	ProjectPayload
}

func (r *UpdateProjectRequest) Validate() error {
	return validation.Struct(r)
}

type ListProjectsRequest struct{}

func (r *ListProjectsRequest) Validate() error {
	return nil
}

func (h *ProjectHandler) CreateProject() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateProjectRequest) (*model.Project, error) {
		project := req.toModel(0)
		if err := h.projectService.CreateProject(c.Request().Context(), project); err != nil {
			return nil, err
		}
		return project, nil
	}, http.StatusCreated, func() *CreateProjectRequest { return &CreateProjectRequest{} })
}

func (h *ProjectHandler) GetProject() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ProjectIDRequest) (*model.Project, error) {
		return h.projectService.GetProject(c.Request().Context(), req.ID)
	}, http.StatusOK, func() *ProjectIDRequest { return &ProjectIDRequest{} })
}

func (h *ProjectHandler) ListProjects() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ListProjectsRequest) ([]model.Project, error) {
		return h.projectService.ListProjects(c.Request().Context())
	}, http.StatusOK, func() *ListProjectsRequest { return &ListProjectsRequest{} })
}

// UpdateProject replaces the project's fields and returns the stored row.
func (h *ProjectHandler) UpdateProject() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateProjectRequest) (*model.Project, error) {
		ctx := c.Request().Context()
		if err := h.projectService.UpdateProject(ctx, req.toModel(req.ID)); err != nil {
			return nil, err
		}
		return h.projectService.GetProject(ctx, req.ID)
	}, http.StatusOK, func() *UpdateProjectRequest { return &UpdateProjectRequest{} })
}

func (h *ProjectHandler) DeleteProject() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *ProjectIDRequest) error {
		return h.projectService.DeleteProject(c.Request().Context(), req.ID)
	}, http.StatusNoContent, func() *ProjectIDRequest { return &ProjectIDRequest{} })
}
