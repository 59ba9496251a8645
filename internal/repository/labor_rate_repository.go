package repository

import (
	"context"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// LaborRateRepository persists per-location labor rates. Location is unique.
type LaborRateRepository interface {
	List(ctx context.Context, location string) ([]*model.LaborRate, error)
	GetByID(ctx context.Context, id string) (*model.LaborRate, error)
	GetByLocation(ctx context.Context, location string) (*model.LaborRate, error)
	Create(ctx context.Context, rate *model.LaborRate) error
	Update(ctx context.Context, rate *model.LaborRate) error
	// Upsert replaces the rates of rate.Location, creating the record when absent.
	Upsert(ctx context.Context, rate *model.LaborRate) error
	Delete(ctx context.Context, id string) error
}
