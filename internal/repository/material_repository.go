package repository

import (
	"context"
	"time"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// MaterialRepository persists the material catalog. Material codes are unique.
type MaterialRepository interface {
	List(ctx context.Context, f model.MaterialFilter) ([]*model.Material, error)
	GetByID(ctx context.Context, id string) (*model.Material, error)
	GetByCode(ctx context.Context, code string) (*model.Material, error)
	Create(ctx context.Context, m *model.Material) error
	Update(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id string) error
}

// MaterialPriceRepository persists location-specific material price history.
type MaterialPriceRepository interface {
	List(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error)
	GetByID(ctx context.Context, id string) (*model.MaterialPrice, error)
	// Latest returns the price of code at location with the most recent
	// effective date on or before asOf.
	Latest(ctx context.Context, code, location string, asOf time.Time) (*model.MaterialPrice, error)
	Create(ctx context.Context, p *model.MaterialPrice) error
	Update(ctx context.Context, p *model.MaterialPrice) error
	Delete(ctx context.Context, id string) error
}
