package service

import (
	"context"

	"github.com/deppfellow/project-manager/internal/model"
	"github.com/deppfellow/project-manager/internal/validation"
	"github.com/rs/zerolog"
)

type EmployeeService struct {
	store  EmployeeStore
	logger *zerolog.Logger
}

func NewEmployeeService(store EmployeeStore, logger *zerolog.Logger) *EmployeeService {
	return &EmployeeService{store: store, logger: orNop(logger)}
}

// CreateEmployee validates employee and stores it. The referenced project
// must exist.
func (s *EmployeeService) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	if err := validation.FromModelError(employee.Validate()); err != nil {
		return err
	}

	if err := s.store.CreateEmployee(ctx, employee); err != nil {
		return err
	}

	s.logger.Info().
		Int64("employee_id", employee.ID).
		Int64("project_id", employee.ProjectID).
		Msg("employee created")
	return nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

// ListEmployees returns all employees, or those of one project when
// projectID is set.
func (s *EmployeeService) ListEmployees(ctx context.Context, projectID *int64) ([]model.Employee, error) {
	return s.store.ListEmployees(ctx, projectID)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	if err := validation.FromModelError(employee.Validate()); err != nil {
		return err
	}
	return s.store.UpdateEmployee(ctx, employee)
}

func (s *EmployeeService) AssignProject(ctx context.Context, employeeID, projectID int64) error {
	if err := s.store.AssignProjectToEmployee(ctx, projectID, employeeID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("employee_id", employeeID).
		Int64("project_id", projectID).
		Msg("employee assigned to project")
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.store.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return nil
}
