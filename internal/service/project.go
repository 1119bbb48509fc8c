package service

import (
	"context"

	"github.com/deppfellow/project-manager/internal/model"
	"github.com/deppfellow/project-manager/internal/validation"
	"github.com/rs/zerolog"
)

type ProjectService struct {
	store  ProjectStore
	logger *zerolog.Logger
}

func NewProjectService(store ProjectStore, logger *zerolog.Logger) *ProjectService {
	return &ProjectService{store: store, logger: orNop(logger)}
}

// CreateProject validates project and stores it. An empty status defaults
// to started.
func (s *ProjectService) CreateProject(ctx context.Context, project *model.Project) error {
	if project.Status == "" {
		project.Status = model.ProjectStatusStarted
	}

	if err := validation.FromModelError(project.Validate()); err != nil {
		return err
	}

	if err := s.store.CreateProject(ctx, project); err != nil {
		return err
	}

	s.logger.Info().
		Int64("project_id", project.ID).
		Str("name", project.Name).
		Msg("project created")
	return nil
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.store.ListProjects(ctx)
}

func (s *ProjectService) UpdateProject(ctx context.Context, project *model.Project) error {
	if err := validation.FromModelError(project.Validate()); err != nil {
		return err
	}
	return s.store.UpdateProject(ctx, project)
}

// DeleteProject removes a project. Its employees and tasks are kept.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("project_id", id).Msg("project deleted")
	return nil
}

func orNop(logger *zerolog.Logger) *zerolog.Logger {
	if logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return logger
}
