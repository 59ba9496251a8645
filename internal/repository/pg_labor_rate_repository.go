package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgLaborRateRepository is the PostgreSQL LaborRateRepository.
type PgLaborRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgLaborRateRepository returns a PgLaborRateRepository.
func NewPgLaborRateRepository(pool *pgxpool.Pool) *PgLaborRateRepository {
	return &PgLaborRateRepository{pool: pool}
}

const laborRateSelectCols = `id, location, district, foreman, leadman, equipment_operator_heavy,
	equipment_operator_high_skilled, equipment_operator_light_skilled, driver, skilled_labor,
	semi_skilled_labor, unskilled_labor, effective_date, created_at, updated_at`

func scanLaborRate(scan func(...any) error) (*model.LaborRate, error) {
	var l model.LaborRate
	if err := scan(
		&l.ID, &l.Location, &l.District, &l.Foreman, &l.Leadman, &l.EquipmentOperatorHeavy,
		&l.EquipmentOperatorHighSkilled, &l.EquipmentOperatorLightSkilled, &l.Driver, &l.SkilledLabor,
		&l.SemiSkilledLabor, &l.UnskilledLabor, &l.EffectiveDate, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

// List returns labor rates ordered by location, optionally filtered by a location substring.
func (r *PgLaborRateRepository) List(ctx context.Context, location string) ([]*model.LaborRate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+laborRateSelectCols+` FROM labor_rates
		 WHERE ($1 = '' OR location ILIKE '%' || $1 || '%')
		 ORDER BY location`,
		location,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []*model.LaborRate
	for rows.Next() {
		l, err := scanLaborRate(rows.Scan)
		if err != nil {
			return nil, err
		}
		rates = append(rates, l)
	}
	return rates, rows.Err()
}

// GetByID returns the record with id.
func (r *PgLaborRateRepository) GetByID(ctx context.Context, id string) (*model.LaborRate, error) {
	return scanLaborRate(r.pool.QueryRow(ctx,
		`SELECT `+laborRateSelectCols+` FROM labor_rates WHERE id = $1`, id).Scan)
}

// GetByLocation returns the active record of a location.
func (r *PgLaborRateRepository) GetByLocation(ctx context.Context, location string) (*model.LaborRate, error) {
	return scanLaborRate(r.pool.QueryRow(ctx,
		`SELECT `+laborRateSelectCols+` FROM labor_rates WHERE location = $1`, location).Scan)
}

// Create inserts a new record. A second record for the same location is ErrConflict.
func (r *PgLaborRateRepository) Create(ctx context.Context, l *model.LaborRate) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO labor_rates (location, district, foreman, leadman, equipment_operator_heavy,
			equipment_operator_high_skilled, equipment_operator_light_skilled, driver, skilled_labor,
			semi_skilled_labor, unskilled_labor, effective_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, CURRENT_DATE))
		 RETURNING id, effective_date, created_at, updated_at`,
		l.Location, l.District, l.Foreman, l.Leadman, l.EquipmentOperatorHeavy,
		l.EquipmentOperatorHighSkilled, l.EquipmentOperatorLightSkilled, l.Driver, l.SkilledLabor,
		l.SemiSkilledLabor, l.UnskilledLabor, nullTime(l.EffectiveDate),
	).Scan(&l.ID, &l.EffectiveDate, &l.CreatedAt, &l.UpdatedAt)
	return translate(err)
}

// Update overwrites every field of the record with l.ID.
func (r *PgLaborRateRepository) Update(ctx context.Context, l *model.LaborRate) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE labor_rates SET location=$1, district=$2, foreman=$3, leadman=$4, equipment_operator_heavy=$5,
			equipment_operator_high_skilled=$6, equipment_operator_light_skilled=$7, driver=$8, skilled_labor=$9,
			semi_skilled_labor=$10, unskilled_labor=$11, effective_date=COALESCE($12, effective_date), updated_at=NOW()
		 WHERE id=$13
		 RETURNING effective_date, created_at, updated_at`,
		l.Location, l.District, l.Foreman, l.Leadman, l.EquipmentOperatorHeavy,
		l.EquipmentOperatorHighSkilled, l.EquipmentOperatorLightSkilled, l.Driver, l.SkilledLabor,
		l.SemiSkilledLabor, l.UnskilledLabor, nullTime(l.EffectiveDate), l.ID,
	).Scan(&l.EffectiveDate, &l.CreatedAt, &l.UpdatedAt)
	return translate(err)
}

// Upsert inserts or replaces the record for l.Location.
func (r *PgLaborRateRepository) Upsert(ctx context.Context, l *model.LaborRate) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO labor_rates (location, district, foreman, leadman, equipment_operator_heavy,
			equipment_operator_high_skilled, equipment_operator_light_skilled, driver, skilled_labor,
			semi_skilled_labor, unskilled_labor, effective_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, CURRENT_DATE))
		 ON CONFLICT (location) DO UPDATE SET
			district=EXCLUDED.district, foreman=EXCLUDED.foreman, leadman=EXCLUDED.leadman,
			equipment_operator_heavy=EXCLUDED.equipment_operator_heavy,
			equipment_operator_high_skilled=EXCLUDED.equipment_operator_high_skilled,
			equipment_operator_light_skilled=EXCLUDED.equipment_operator_light_skilled,
			driver=EXCLUDED.driver, skilled_labor=EXCLUDED.skilled_labor,
			semi_skilled_labor=EXCLUDED.semi_skilled_labor, unskilled_labor=EXCLUDED.unskilled_labor,
			effective_date=EXCLUDED.effective_date, updated_at=NOW()
		 RETURNING id, effective_date, created_at, updated_at`,
		l.Location, l.District, l.Foreman, l.Leadman, l.EquipmentOperatorHeavy,
		l.EquipmentOperatorHighSkilled, l.EquipmentOperatorLightSkilled, l.Driver, l.SkilledLabor,
		l.SemiSkilledLabor, l.UnskilledLabor, nullTime(l.EffectiveDate),
	).Scan(&l.ID, &l.EffectiveDate, &l.CreatedAt, &l.UpdatedAt)
	return translate(err)
}

// Delete removes the record with id.
func (r *PgLaborRateRepository) Delete(ctx context.Context, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM labor_rates WHERE id=$1`, id))
}
