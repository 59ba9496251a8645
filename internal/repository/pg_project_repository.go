package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgProjectRepository is the PostgreSQL ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository returns a PgProjectRepository.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectSelectCols = `id, project_name, location, implementing_office, description, status, created_at, updated_at`

func scanProject(scan func(...any) error) (*model.Project, error) {
	var p model.Project
	if err := scan(&p.ID, &p.ProjectName, &p.Location, &p.ImplementingOffice, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// List returns projects, newest first.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectSelectCols+` FROM projects ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID returns the project with id.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectSelectCols+` FROM projects WHERE id = $1`, id).Scan)
}

// Create inserts project.
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO projects (project_name, location, implementing_office, description, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		project.ProjectName, project.Location, project.ImplementingOffice, project.Description, project.Status,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	return translate(err)
}

// Update overwrites the project with project.ID.
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE projects SET project_name = $1, location = $2, implementing_office = $3, description = $4,
			status = $5, updated_at = NOW()
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		project.ProjectName, project.Location, project.ImplementingOffice, project.Description,
		project.Status, project.ID,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	return translate(err)
}

// Delete removes the project and, by cascade, its BOQ entries.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id))
}
