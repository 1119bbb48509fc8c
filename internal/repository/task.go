package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/project-manager/internal/errs"
	"github.com/deppfellow/project-manager/internal/model"
	"github.com/jackc/pgx/v5"
)

const taskColumns = `id, description, status, employee_id, project_id, allocation_date, deadline_date, created_at, updated_at`

func scanTask(row scanner) (*model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID,
		&t.Description,
		&t.Status,
		&t.EmployeeID,
		&t.ProjectID,
		&t.AllocationDate,
		&t.DeadlineDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask inserts task after confirming its project and employee exist.
func (r *ProjectRepository) CreateTask(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (description, status, employee_id, project_id, allocation_date, deadline_date) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`

	return inTx(ctx, r.db, r.logger, "create task", func(tx pgx.Tx) error {
		if err := checkProject(ctx, tx, task.ProjectID); err != nil {
			return err
		}
		if err := checkEmployee(ctx, tx, task.EmployeeID); err != nil {
			return err
		}

		err := tx.QueryRow(ctx, query,
			task.Description,
			task.Status,
			task.EmployeeID,
			task.ProjectID,
			task.AllocationDate,
			task.DeadlineDate,
		).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
		if err != nil {
			return err
		}

		r.logger.Debug().Int64("task_id", task.ID).Msg("task created")
		return nil
	})
}

// GetTask returns the task with id.
func (r *ProjectRepository) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewTaskNotFound(id)
		}
		return nil, err
	}

	return task, nil
}

// GetAllTasks returns the tasks assigned to employeeID within projectID.
//
// It runs a single query with no existence pre-check; no match yields an
// empty slice. Rows come back in store order.
func (r *ProjectRepository) GetAllTasks(ctx context.Context, employeeID, projectID int64) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE employee_id = $1 AND project_id = $2`

	rows, err := r.db.Query(ctx, query, employeeID, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateTaskStatus sets the status of task id.
func (r *ProjectRepository) UpdateTaskStatus(ctx context.Context, id int64, status model.TaskStatus) error {
	query := `UPDATE tasks SET status = $1, updated_at = now() WHERE id = $2`

	return inTx(ctx, r.db, r.logger, "update task status", func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query, status, id)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewTaskNotFound(id)
		}
		return nil
	})
}

// AssignTaskToEmployee hands task taskID to employeeID within projectID and
// resets its status to assigned.
func (r *ProjectRepository) AssignTaskToEmployee(ctx context.Context, taskID, projectID, employeeID int64) error {
	query := `UPDATE tasks SET employee_id = $1, project_id = $2, status = $3, updated_at = now() WHERE id = $4`

	return inTx(ctx, r.db, r.logger, "assign task", func(tx pgx.Tx) error {
		if err := checkProject(ctx, tx, projectID); err != nil {
			return err
		}
		if err := checkEmployee(ctx, tx, employeeID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, query, employeeID, projectID, model.TaskStatusAssigned, taskID)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewTaskNotFound(taskID)
		}

		r.logger.Debug().
			Int64("task_id", taskID).
			Int64("employee_id", employeeID).
			Int64("project_id", projectID).
			Msg("task assigned")
		return nil
	})
}

// DeleteTask removes the task with id.
func (r *ProjectRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1`

	return inTx(ctx, r.db, r.logger, "delete task", func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewTaskNotFound(id)
		}
		return nil
	})
}
