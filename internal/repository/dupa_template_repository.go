package repository

import (
	"context"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// DUPATemplateRepository persists DUPA templates. Pay item numbers are unique.
type DUPATemplateRepository interface {
	List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error)
	GetByID(ctx context.Context, id string) (*model.DUPATemplate, error)
	Create(ctx context.Context, t *model.DUPATemplate) error
	Update(ctx context.Context, t *model.DUPATemplate) error
	Delete(ctx context.Context, id string) error
}
