package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgEquipmentRepository is the PostgreSQL EquipmentRepository.
type PgEquipmentRepository struct {
	pool *pgxpool.Pool
}

// NewPgEquipmentRepository returns a PgEquipmentRepository.
func NewPgEquipmentRepository(pool *pgxpool.Pool) *PgEquipmentRepository {
	return &PgEquipmentRepository{pool: pool}
}

const equipmentSelectCols = `id, no, description, model, capacity, flywheel_horsepower,
	hourly_rate, rental_rate, created_at, updated_at`

func scanEquipment(scan func(...any) error) (*model.Equipment, error) {
	var e model.Equipment
	if err := scan(
		&e.ID, &e.No, &e.Description, &e.Model, &e.Capacity, &e.FlywheelHorsepower,
		&e.HourlyRate, &e.RentalRate, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

// List returns the catalog ordered by equipment number. search matches description, model or capacity.
func (r *PgEquipmentRepository) List(ctx context.Context, search string) ([]*model.Equipment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+equipmentSelectCols+` FROM equipment
		 WHERE ($1 = '' OR description ILIKE '%' || $1 || '%'
			OR model ILIKE '%' || $1 || '%' OR capacity ILIKE '%' || $1 || '%')
		 ORDER BY no`,
		search,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID returns the equipment with id.
func (r *PgEquipmentRepository) GetByID(ctx context.Context, id string) (*model.Equipment, error) {
	return scanEquipment(r.pool.QueryRow(ctx,
		`SELECT `+equipmentSelectCols+` FROM equipment WHERE id = $1`, id).Scan)
}

// Create inserts e and fills its generated fields.
func (r *PgEquipmentRepository) Create(ctx context.Context, e *model.Equipment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO equipment (no, description, model, capacity, flywheel_horsepower, hourly_rate, rental_rate)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		e.No, e.Description, e.Model, e.Capacity, e.FlywheelHorsepower, e.HourlyRate, e.RentalRate,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return translate(err)
}

// Update overwrites the equipment with e.ID.
func (r *PgEquipmentRepository) Update(ctx context.Context, e *model.Equipment) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE equipment SET no=$1, description=$2, model=$3, capacity=$4, flywheel_horsepower=$5,
			hourly_rate=$6, rental_rate=$7, updated_at=NOW()
		 WHERE id=$8
		 RETURNING created_at, updated_at`,
		e.No, e.Description, e.Model, e.Capacity, e.FlywheelHorsepower, e.HourlyRate, e.RentalRate, e.ID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	return translate(err)
}

// Delete removes the equipment with id.
func (r *PgEquipmentRepository) Delete(ctx context.Context, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM equipment WHERE id=$1`, id))
}
