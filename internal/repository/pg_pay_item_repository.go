package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PgPayItemRepository is the PostgreSQL PayItemRepository.
type PgPayItemRepository struct {
	pool *pgxpool.Pool
}

// NewPgPayItemRepository returns a PgPayItemRepository.
func NewPgPayItemRepository(pool *pgxpool.Pool) *PgPayItemRepository {
	return &PgPayItemRepository{pool: pool}
}

const payItemSelectCols = `id, pay_item_number, description, unit, division, part, item, created_at, updated_at`

func scanPayItem(scan func(...any) error) (*model.PayItem, error) {
	var p model.PayItem
	if err := scan(&p.ID, &p.PayItemNumber, &p.Description, &p.Unit, &p.Division, &p.Part, &p.Item, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// List returns pay items ordered by number.
func (r *PgPayItemRepository) List(ctx context.Context, search string) ([]*model.PayItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+payItemSelectCols+` FROM pay_items
		 WHERE ($1 = '' OR pay_item_number ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		 ORDER BY pay_item_number`,
		search,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.PayItem
	for rows.Next() {
		p, err := scanPayItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID returns the pay item with id.
func (r *PgPayItemRepository) GetByID(ctx context.Context, id string) (*model.PayItem, error) {
	return scanPayItem(r.pool.QueryRow(ctx,
		`SELECT `+payItemSelectCols+` FROM pay_items WHERE id = $1`, id).Scan)
}

// Create inserts p. A duplicate number is ErrConflict.
func (r *PgPayItemRepository) Create(ctx context.Context, p *model.PayItem) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO pay_items (pay_item_number, description, unit, division, part, item)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		p.PayItemNumber, p.Description, p.Unit, p.Division, p.Part, p.Item,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translate(err)
}

// Update overwrites the pay item with p.ID.
func (r *PgPayItemRepository) Update(ctx context.Context, p *model.PayItem) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE pay_items SET pay_item_number=$1, description=$2, unit=$3, division=$4, part=$5, item=$6, updated_at=NOW()
		 WHERE id=$7
		 RETURNING created_at, updated_at`,
		p.PayItemNumber, p.Description, p.Unit, p.Division, p.Part, p.Item, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return translate(err)
}

// Delete removes the pay item with id.
func (r *PgPayItemRepository) Delete(ctx context.Context, id string) error {
	return execOne(r.pool.Exec(ctx, `DELETE FROM pay_items WHERE id=$1`, id))
}
