package repository

import (
	"context"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// EquipmentRepository persists the equipment catalog.
type EquipmentRepository interface {
	List(ctx context.Context, search string) ([]*model.Equipment, error)
	GetByID(ctx context.Context, id string) (*model.Equipment, error)
	Create(ctx context.Context, e *model.Equipment) error
	Update(ctx context.Context, e *model.Equipment) error
	Delete(ctx context.Context, id string) error
}
