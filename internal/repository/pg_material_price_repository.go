package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgMaterialPriceRepository is the PostgreSQL MaterialPriceRepository.
type PgMaterialPriceRepository struct {
	pool *pgxpool.Pool
}

// NewPgMaterialPriceRepository returns a PgMaterialPriceRepository.
func NewPgMaterialPriceRepository(pool *pgxpool.Pool) *PgMaterialPriceRepository {
	return &PgMaterialPriceRepository{pool: pool}
}

const materialPriceSelectCols = `id, material_code, description, unit, location, unit_cost, brand,
	specification, supplier, effective_date, created_at, updated_at`

func scanMaterialPrice(scan func(...any) error) (*model.MaterialPrice, error) {
	var p model.MaterialPrice
	if err := scan(
		&p.ID, &p.MaterialCode, &p.Description, &p.Unit, &p.Location, &p.UnitCost, &p.Brand,
		&p.Specification, &p.Supplier, &p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// List returns prices newest first.
func (r *PgMaterialPriceRepository) List(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+materialPriceSelectCols+` FROM material_prices
		 WHERE ($1 = '' OR material_code = $1)
		   AND ($2 = '' OR location = $2)
		 ORDER BY effective_date DESC, material_code, location`,
		model.NormalizeMaterialCode(f.MaterialCode), f.Location,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.MaterialPrice
	for rows.Next() {
		p, err := scanMaterialPrice(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID returns the price with id.
func (r *PgMaterialPriceRepository) GetByID(ctx context.Context, id string) (*model.MaterialPrice, error) {
	return scanMaterialPrice(r.pool.QueryRow(ctx,
		`SELECT `+materialPriceSelectCols+` FROM material_prices WHERE id = $1`, id).Scan)
}

// Latest returns the price in effect at asOf, or ErrNotFound.
func (r *PgMaterialPriceRepository) Latest(ctx context.Context, code, location string, asOf time.Time) (*model.MaterialPrice, error) {
	return scanMaterialPrice(r.pool.QueryRow(ctx,
		`SELECT `+materialPriceSelectCols+` FROM material_prices
		 WHERE material_code = $1 AND location = $2 AND effective_date <= $3::date
		 ORDER BY effective_date DESC
		 LIMIT 1`,
		model.NormalizeMaterialCode(code), location, asOf,
	).Scan)
}

// Create inserts p. A second price for the same code, location and date is ErrConflict.
func (r *PgMaterialPriceRepository) Create(ctx context.Context, p *model.MaterialPrice) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO material_prices (material_code, description, unit, location, unit_cost, brand,
			specification, supplier, effective_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, CURRENT_DATE))
		 RETURNING id, effective_date, created_at, updated_at`,
		p.MaterialCode, p.Description, p.Unit, p.Location, p.UnitCost, p.Brand,
		p.Specification, p.Supplier, nullTime(p.EffectiveDate),
	).Scan(&p.ID, &p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt)
	return translate(err)
}

// Update overwrites the price with p.ID. A zero EffectiveDate keeps the stored one.
func (r *PgMaterialPriceRepository) Update(ctx context.Context, p *model.MaterialPrice) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE material_prices SET material_code=$1, description=$2, unit=$3, location=$4, unit_cost=$5,
			brand=$6, specification=$7, supplier=$8, effective_date=COALESCE($9, effective_date), updated_at=NOW()
		 WHERE id=$10
		 RETURNING effective_date, created_at, updated_at`,
		p.MaterialCode, p.Description, p.Unit, p.Location, p.UnitCost,
		p.Brand, p.Specification, p.Supplier, nullTime(p.EffectiveDate), p.ID,
	).Scan(&p.EffectiveDate, &p.CreatedAt, &p.UpdatedAt)
	return translate(err)
}

// Delete removes the price with id.
func (r *PgMaterialPriceRepository) Delete(ctx context.Context, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM material_prices WHERE id=$1`, id))
}
