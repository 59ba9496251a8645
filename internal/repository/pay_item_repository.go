package repository

import (
	"context"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// PayItemRepository persists the DPWH pay item catalog.
type PayItemRepository interface {
	List(ctx context.Context, search string) ([]*model.PayItem, error)
	GetByID(ctx context.Context, id string) (*model.PayItem, error)
	Create(ctx context.Context, p *model.PayItem) error
	Update(ctx context.Context, p *model.PayItem) error
	Delete(ctx context.Context, id string) error
}
