package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgDUPATemplateRepository is the PostgreSQL DUPATemplateRepository.
// Entry lists are stored as JSONB arrays.
type PgDUPATemplateRepository struct {
	pool *pgxpool.Pool
}

// NewPgDUPATemplateRepository returns a PgDUPATemplateRepository.
func NewPgDUPATemplateRepository(pool *pgxpool.Pool) *PgDUPATemplateRepository {
	return &PgDUPATemplateRepository{pool: pool}
}

const dupaTemplateSelectCols = `id, pay_item_number, description, unit, output_per_hour, category,
	specification, notes, labor_template, equipment_template, material_template,
	ocm_percentage, cp_percentage, vat_percentage, is_active, created_at, updated_at`

func scanDUPATemplate(scan func(...any) error) (*model.DUPATemplate, error) {
	var t model.DUPATemplate
	if err := scan(
		&t.ID, &t.PayItemNumber, &t.Description, &t.Unit, &t.OutputPerHour, &t.Category,
		&t.Specification, &t.Notes, &t.Labor, &t.Equipment, &t.Materials,
		&t.OCMPercentage, &t.CPPercentage, &t.VATPercentage, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// List returns templates ordered by pay item number.
func (r *PgDUPATemplateRepository) List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+dupaTemplateSelectCols+` FROM dupa_templates
		 WHERE ($1 = '' OR pay_item_number ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		   AND (NOT $2 OR is_active)
		 ORDER BY pay_item_number`,
		f.Search, f.ActiveOnly,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.DUPATemplate
	for rows.Next() {
		t, err := scanDUPATemplate(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetByID returns the template with id.
func (r *PgDUPATemplateRepository) GetByID(ctx context.Context, id string) (*model.DUPATemplate, error) {
	return scanDUPATemplate(r.pool.QueryRow(ctx,
		`SELECT `+dupaTemplateSelectCols+` FROM dupa_templates WHERE id = $1`, id).Scan)
}

// Create inserts t. A duplicate pay item number is ErrConflict.
func (r *PgDUPATemplateRepository) Create(ctx context.Context, t *model.DUPATemplate) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO dupa_templates (pay_item_number, description, unit, output_per_hour, category,
			specification, notes, labor_template, equipment_template, material_template,
			ocm_percentage, cp_percentage, vat_percentage, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id, created_at, updated_at`,
		t.PayItemNumber, t.Description, t.Unit, t.OutputPerHour, t.Category,
		t.Specification, t.Notes, t.Labor, t.Equipment, t.Materials,
		t.OCMPercentage, t.CPPercentage, t.VATPercentage, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return translate(err)
}

// Update overwrites the template with t.ID.
func (r *PgDUPATemplateRepository) Update(ctx context.Context, t *model.DUPATemplate) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE dupa_templates SET pay_item_number=$1, description=$2, unit=$3, output_per_hour=$4,
			category=$5, specification=$6, notes=$7, labor_template=$8, equipment_template=$9,
			material_template=$10, ocm_percentage=$11, cp_percentage=$12, vat_percentage=$13,
			is_active=$14, updated_at=NOW()
		 WHERE id=$15
		 RETURNING created_at, updated_at`,
		t.PayItemNumber, t.Description, t.Unit, t.OutputPerHour,
		t.Category, t.Specification, t.Notes, t.Labor, t.Equipment,
		t.Materials, t.OCMPercentage, t.CPPercentage, t.VATPercentage,
		t.IsActive, t.ID,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return translate(err)
}

// Delete removes the template with id. BOQ entries built from it keep their snapshot.
func (r *PgDUPATemplateRepository) Delete(ctx context.Context, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM dupa_templates WHERE id=$1`, id))
}
