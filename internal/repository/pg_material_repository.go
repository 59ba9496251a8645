package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgMaterialRepository is the PostgreSQL MaterialRepository.
type PgMaterialRepository struct {
	pool *pgxpool.Pool
}

// NewPgMaterialRepository returns a PgMaterialRepository.
func NewPgMaterialRepository(pool *pgxpool.Pool) *PgMaterialRepository {
	return &PgMaterialRepository{pool: pool}
}

const materialSelectCols = `id, material_code, description, unit, base_price, category,
	include_hauling, created_at, updated_at`

func scanMaterial(scan func(...any) error) (*model.Material, error) {
	var m model.Material
	if err := scan(
		&m.ID, &m.MaterialCode, &m.Description, &m.Unit, &m.BasePrice, &m.Category,
		&m.IncludeHauling, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// List returns materials ordered by code.
func (r *PgMaterialRepository) List(ctx context.Context, f model.MaterialFilter) ([]*model.Material, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+materialSelectCols+` FROM materials
		 WHERE ($1 = '' OR category = $1)
		   AND ($2 = '' OR material_code ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		 ORDER BY material_code`,
		f.Category, f.Search,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Material
	for rows.Next() {
		m, err := scanMaterial(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByID returns the material with id.
func (r *PgMaterialRepository) GetByID(ctx context.Context, id string) (*model.Material, error) {
	return scanMaterial(r.pool.QueryRow(ctx,
		`SELECT `+materialSelectCols+` FROM materials WHERE id = $1`, id).Scan)
}

// GetByCode returns the material with the given code.
func (r *PgMaterialRepository) GetByCode(ctx context.Context, code string) (*model.Material, error) {
	return scanMaterial(r.pool.QueryRow(ctx,
		`SELECT `+materialSelectCols+` FROM materials WHERE material_code = $1`,
		model.NormalizeMaterialCode(code)).Scan)
}

// Create inserts m. A duplicate code is ErrConflict.
func (r *PgMaterialRepository) Create(ctx context.Context, m *model.Material) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO materials (material_code, description, unit, base_price, category, include_hauling)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		m.MaterialCode, m.Description, m.Unit, m.BasePrice, m.Category, m.IncludeHauling,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return translate(err)
}

// Update overwrites the material with m.ID.
func (r *PgMaterialRepository) Update(ctx context.Context, m *model.Material) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE materials SET material_code=$1, description=$2, unit=$3, base_price=$4, category=$5,
			include_hauling=$6, updated_at=NOW()
		 WHERE id=$7
		 RETURNING created_at, updated_at`,
		m.MaterialCode, m.Description, m.Unit, m.BasePrice, m.Category, m.IncludeHauling, m.ID,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return translate(err)
}

// Delete removes the material with id.
func (r *PgMaterialRepository) Delete(ctx context.Context, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM materials WHERE id=$1`, id))
}
