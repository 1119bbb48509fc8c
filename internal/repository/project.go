package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/project-manager/internal/errs"
	"github.com/deppfellow/project-manager/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ProjectRepository performs CRUD over projects, employees and tasks.
//
// It owns a single DB handle for its lifetime. Methods for each table live
// in project.go, employee.go and task.go.
type ProjectRepository struct {
	db     DB
	logger *zerolog.Logger
}

// NewProjectRepository creates a repository over db.
func NewProjectRepository(db DB, logger *zerolog.Logger) *ProjectRepository {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ProjectRepository{
		db:     db,
		logger: logger,
	}
}

const (
	projectColumns = `id, name, description, start_date, status, created_at, updated_at`

	projectExistsQuery = `SELECT id FROM projects WHERE id = $1`
)

func scanProject(row scanner) (*model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.StartDate,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// checkProject returns a *errs.NotFoundError when the project id has no row.
func checkProject(ctx context.Context, q rowQuerier, id int64) error {
	ok, err := exists(ctx, q, projectExistsQuery, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewProjectNotFound(id)
	}
	return nil
}

// CreateProject inserts project and fills in its generated id and timestamps.
func (r *ProjectRepository) CreateProject(ctx context.Context, project *model.Project) error {
	query := `INSERT INTO projects (name, description, start_date, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	return inTx(ctx, r.db, r.logger, "create project", func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			project.Name,
			project.Description,
			project.StartDate,
			project.Status,
		).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			return err
		}

		r.logger.Debug().Int64("project_id", project.ID).Msg("project created")
		return nil
	})
}

// GetProject returns the project with id.
func (r *ProjectRepository) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewProjectNotFound(id)
		}
		return nil, err
	}

	return project, nil
}

// ListProjects returns all projects ordered by id.
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// UpdateProject overwrites the mutable columns of project.ID.
func (r *ProjectRepository) UpdateProject(ctx context.Context, project *model.Project) error {
	query := `UPDATE projects SET name = $1, description = $2, start_date = $3, status = $4, updated_at = now() WHERE id = $5`

	return inTx(ctx, r.db, r.logger, "update project", func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			project.Name,
			project.Description,
			project.StartDate,
			project.Status,
			project.ID,
		)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewProjectNotFound(project.ID)
		}
		return nil
	})
}

// DeleteProject removes the project with id.
//
// Employees and tasks referencing the project are left in place.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = $1`

	return inTx(ctx, r.db, r.logger, "delete project", func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return errs.NewProjectNotFound(id)
		}

		r.logger.Debug().Int64("project_id", id).Msg("project deleted")
		return nil
	})
}
