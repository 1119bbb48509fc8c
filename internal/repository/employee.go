package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/project-manager/internal/errs"
	"github.com/deppfellow/project-manager/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	employeeColumns = `id, name, designation, gender, salary, project_id, role, created_at, updated_at`

	employeeExistsQuery = `SELECT id FROM employees WHERE id = $1`
)

func scanEmployee(row scanner) (*model.Employee, error) {
	var e model.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Designation,
		&e.Gender,
		&e.Salary,
		&e.ProjectID,
		&e.Role,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func checkEmployee(ctx context.Context, q rowQuerier, id int64) error {
	ok, err := exists(ctx, q, employeeExistsQuery, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewEmployeeNotFound(id)
	}
	return nil
}

// CreateEmployee inserts employee after confirming its project exists.
//
// It issues exactly one existence check and one insert, then commits once.
// A missing project returns errs.ErrProjectNotFound and nothing is committed.
func (r *ProjectRepository) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	query := `INSERT INTO employees (name, designation, gender, salary, project_id, role) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`

	return inTx(ctx, r.db, r.logger, "create employee", func(tx pgx.Tx) error {
		if err := checkProject(ctx, tx, employee.ProjectID); err != nil {
			return err
		}

		err := tx.QueryRow(ctx, query,
			employee.Name,
			employee.Designation,
			employee.Gender,
			employee.Salary,
			employee.ProjectID,
			employee.Role,
		).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
		if err != nil {
			return err
		}

		r.logger.Debug().
			Int64("employee_id", employee.ID).
			Int64("project_id", employee.ProjectID).
			Msg("employee created")
		return nil
	})
}

// GetEmployee returns the employee with id.
func (r *ProjectRepository) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewEmployeeNotFound(id)
		}
		return nil, err
	}

	return employee, nil
}

// ListEmployees returns employees ordered by id, restricted to one project
// when projectID is non-nil.
func (r *ProjectRepository) ListEmployees(ctx context.Context, projectID *int64) ([]model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	var args []any
	if projectID != nil {
		query = `SELECT ` + employeeColumns + ` FROM employees WHERE project_id = $1 ORDER BY id`
		args = append(args, *projectID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// UpdateEmployee overwrites the mutable columns of employee.ID. The target
// project is checked first, as on create.
func (r *ProjectRepository) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	query := `UPDATE employees SET name = $1, designation = $2, gender = $3, salary = $4, project_id = $5, role = $6, updated_at = now() WHERE id = $7`

	return inTx(ctx, r.db, r.logger, "update employee", func(tx pgx.Tx) error {
		if err := checkProject(ctx, tx, employee.ProjectID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, query,
			employee.Name,
			employee.Designation,
			employee.Gender,
			employee.Salary,
			employee.ProjectID,
			employee.Role,
			employee.ID,
		)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewEmployeeNotFound(employee.ID)
		}
		return nil
	})
}

// AssignProjectToEmployee moves an employee onto projectID.
func (r *ProjectRepository) AssignProjectToEmployee(ctx context.Context, projectID, employeeID int64) error {
	query := `UPDATE employees SET project_id = $1, updated_at = now() WHERE id = $2`

	return inTx(ctx, r.db, r.logger, "assign project", func(tx pgx.Tx) error {
		if err := checkProject(ctx, tx, projectID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, query, projectID, employeeID)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewEmployeeNotFound(employeeID)
		}

		r.logger.Debug().
			Int64("employee_id", employeeID).
			Int64("project_id", projectID).
			Msg("employee assigned to project")
		return nil
	})
}

// DeleteEmployee removes the employee with id. Zero affected rows returns
// errs.ErrEmployeeNotFound and nothing is committed.
func (r *ProjectRepository) DeleteEmployee(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`

	return inTx(ctx, r.db, r.logger, "delete employee", func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewEmployeeNotFound(id)
		}

		r.logger.Debug().Int64("employee_id", id).Msg("employee deleted")
		return nil
	})
}
