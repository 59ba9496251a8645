package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgBOQEntryRepository is the PostgreSQL BOQEntryRepository.
// Each row is a frozen snapshot of an instantiated template.
type PgBOQEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgBOQEntryRepository returns a PgBOQEntryRepository.
func NewPgBOQEntryRepository(pool *pgxpool.Pool) *PgBOQEntryRepository {
	return &PgBOQEntryRepository{pool: pool}
}

const boqEntrySelectCols = `id, project_id, template_id, pay_item_number, description, unit, output_per_hour,
	labor_items, equipment_items, material_items, labor_cost, equipment_cost, material_cost, direct_cost,
	ocm_percentage, ocm_cost, cp_percentage, cp_cost, subtotal_with_markup, vat_percentage, vat_cost,
	total_cost, unit_cost, location, instantiated_at, quantity, total_amount, created_at`

func scanBOQEntry(scan func(...any) error) (*model.BOQEntry, error) {
	var (
		e          model.BOQEntry
		templateID *string
	)
	if err := scan(
		&e.ID, &e.ProjectID, &templateID, &e.PayItemNumber, &e.Description, &e.Unit, &e.OutputPerHour,
		&e.LaborItems, &e.EquipmentItems, &e.MaterialItems, &e.LaborCost, &e.EquipmentCost, &e.MaterialCost, &e.DirectCost,
		&e.OCMPercentage, &e.OCMCost, &e.CPPercentage, &e.CPCost, &e.SubtotalWithMarkup, &e.VATPercentage, &e.VATCost,
		&e.TotalCost, &e.UnitCost, &e.Location, &e.InstantiatedAt, &e.Quantity, &e.TotalAmount, &e.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	if templateID != nil {
		e.TemplateID = *templateID
	}
	return &e, nil
}

// ListByProjectID returns the entries of a project in insertion order.
func (r *PgBOQEntryRepository) ListByProjectID(ctx context.Context, projectID string) ([]*model.BOQEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+boqEntrySelectCols+` FROM boq_entries WHERE project_id = $1 ORDER BY created_at, id`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*model.BOQEntry{}
	for rows.Next() {
		e, err := scanBOQEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Create inserts e and fills its ID and CreatedAt.
func (r *PgBOQEntryRepository) Create(ctx context.Context, e *model.BOQEntry) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO boq_entries (project_id, template_id, pay_item_number, description, unit, output_per_hour,
			labor_items, equipment_items, material_items, labor_cost, equipment_cost, material_cost, direct_cost,
			ocm_percentage, ocm_cost, cp_percentage, cp_cost, subtotal_with_markup, vat_percentage, vat_cost,
			total_cost, unit_cost, location, instantiated_at, quantity, total_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		 RETURNING id, created_at`,
		e.ProjectID, nullString(e.TemplateID), e.PayItemNumber, e.Description, e.Unit, e.OutputPerHour,
		e.LaborItems, e.EquipmentItems, e.MaterialItems, e.LaborCost, e.EquipmentCost, e.MaterialCost, e.DirectCost,
		e.OCMPercentage, e.OCMCost, e.CPPercentage, e.CPCost, e.SubtotalWithMarkup, e.VATPercentage, e.VATCost,
		e.TotalCost, e.UnitCost, e.Location, e.InstantiatedAt, e.Quantity, e.TotalAmount,
	).Scan(&e.ID, &e.CreatedAt)
	return translate(err)
}

// Delete removes entry id from projectID.
func (r *PgBOQEntryRepository) Delete(ctx context.Context, projectID, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM boq_entries WHERE id=$1 AND project_id=$2`, id, projectID))
}
