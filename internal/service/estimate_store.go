package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// EstimateStore adapts the repositories to estimate.RateLookup and estimate.TemplateStore.
// repository.ErrNotFound becomes found=false; malformed ids are treated as unknown.
type EstimateStore struct {
	labor     repository.LaborRateRepository
	equipment repository.EquipmentRepository
	prices    repository.MaterialPriceRepository
	templates repository.DUPATemplateRepository
}

// NewEstimateStore returns an EstimateStore over the given repositories.
func NewEstimateStore(
	labor repository.LaborRateRepository,
	equipment repository.EquipmentRepository,
	prices repository.MaterialPriceRepository,
	templates repository.DUPATemplateRepository,
) *EstimateStore {
	return &EstimateStore{labor: labor, equipment: equipment, prices: prices, templates: templates}
}

var (
	_ estimate.RateLookup    = (*EstimateStore)(nil)
	_ estimate.TemplateStore = (*EstimateStore)(nil)
)

// LaborRates returns the per-designation rates of location.
func (s *EstimateStore) LaborRates(ctx context.Context, location string) (map[model.Designation]float64, bool, error) {
	l, err := s.labor.GetByLocation(ctx, location)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return l.Rates(), true, nil
}

// EquipmentRate returns the catalog description and hourly rate of an equipment id.
func (s *EstimateStore) EquipmentRate(ctx context.Context, equipmentID string) (estimate.EquipmentRate, bool, error) {
	if uuid.Validate(equipmentID) != nil {
		return estimate.EquipmentRate{}, false, nil
	}
	e, err := s.equipment.GetByID(ctx, equipmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return estimate.EquipmentRate{}, false, nil
	}
	if err != nil {
		return estimate.EquipmentRate{}, false, err
	}
	return estimate.EquipmentRate{Description: e.Description, HourlyRate: e.HourlyRate}, true, nil
}

// MaterialUnitCost returns the unit cost of code at location in effect at asOf.
func (s *EstimateStore) MaterialUnitCost(ctx context.Context, code, location string, asOf time.Time) (float64, bool, error) {
	p, err := s.prices.Latest(ctx, code, location, asOf)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return p.UnitCost, true, nil
}

// Template returns the stored template, or nil when id is unknown.
func (s *EstimateStore) Template(ctx context.Context, id string) (*model.DUPATemplate, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	t, err := s.templates.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return t, err
}
