package service

import (
	"context"
	"time"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// ---------------------------------------------------------------------------
// Repository mocks
// ---------------------------------------------------------------------------

type mockLaborRateRepository struct {
	getByLocationFunc func(ctx context.Context, location string) (*model.LaborRate, error)
	getByIDFunc       func(ctx context.Context, id string) (*model.LaborRate, error)
	createFunc        func(ctx context.Context, rate *model.LaborRate) error
	updateFunc        func(ctx context.Context, rate *model.LaborRate) error
	upsertFunc        func(ctx context.Context, rate *model.LaborRate) error
}

func (m *mockLaborRateRepository) List(ctx context.Context, location string) ([]*model.LaborRate, error) {
	return nil, nil
}
func (m *mockLaborRateRepository) GetByID(ctx context.Context, id string) (*model.LaborRate, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockLaborRateRepository) GetByLocation(ctx context.Context, location string) (*model.LaborRate, error) {
	if m.getByLocationFunc != nil {
		return m.getByLocationFunc(ctx, location)
	}
	return nil, repository.ErrNotFound
}
func (m *mockLaborRateRepository) Create(ctx context.Context, rate *model.LaborRate) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, rate)
	}
	return nil
}
func (m *mockLaborRateRepository) Update(ctx context.Context, rate *model.LaborRate) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, rate)
	}
	return nil
}
func (m *mockLaborRateRepository) Upsert(ctx context.Context, rate *model.LaborRate) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, rate)
	}
	return nil
}
func (m *mockLaborRateRepository) Delete(ctx context.Context, id string) error { return nil }

type mockEquipmentRepository struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Equipment, error)
}

func (m *mockEquipmentRepository) List(ctx context.Context, search string) ([]*model.Equipment, error) {
	return nil, nil
}
func (m *mockEquipmentRepository) GetByID(ctx context.Context, id string) (*model.Equipment, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockEquipmentRepository) Create(ctx context.Context, e *model.Equipment) error { return nil }
func (m *mockEquipmentRepository) Update(ctx context.Context, e *model.Equipment) error { return nil }
func (m *mockEquipmentRepository) Delete(ctx context.Context, id string) error          { return nil }

type mockMaterialRepository struct {
	createFunc func(ctx context.Context, m *model.Material) error
}

func (m *mockMaterialRepository) List(ctx context.Context, f model.MaterialFilter) ([]*model.Material, error) {
	return nil, nil
}
func (m *mockMaterialRepository) GetByID(ctx context.Context, id string) (*model.Material, error) {
	return nil, repository.ErrNotFound
}
func (m *mockMaterialRepository) GetByCode(ctx context.Context, code string) (*model.Material, error) {
	return nil, repository.ErrNotFound
}
func (m *mockMaterialRepository) Create(ctx context.Context, mat *model.Material) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, mat)
	}
	return nil
}
func (m *mockMaterialRepository) Update(ctx context.Context, mat *model.Material) error { return nil }
func (m *mockMaterialRepository) Delete(ctx context.Context, id string) error           { return nil }

type mockMaterialPriceRepository struct {
	listFunc   func(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error)
	latestFunc func(ctx context.Context, code, location string, asOf time.Time) (*model.MaterialPrice, error)
	createFunc func(ctx context.Context, p *model.MaterialPrice) error
}

func (m *mockMaterialPriceRepository) List(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return nil, nil
}
func (m *mockMaterialPriceRepository) GetByID(ctx context.Context, id string) (*model.MaterialPrice, error) {
	return nil, repository.ErrNotFound
}
func (m *mockMaterialPriceRepository) Latest(ctx context.Context, code, location string, asOf time.Time) (*model.MaterialPrice, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, code, location, asOf)
	}
	return nil, repository.ErrNotFound
}
func (m *mockMaterialPriceRepository) Create(ctx context.Context, p *model.MaterialPrice) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}
func (m *mockMaterialPriceRepository) Update(ctx context.Context, p *model.MaterialPrice) error {
	return nil
}
func (m *mockMaterialPriceRepository) Delete(ctx context.Context, id string) error { return nil }

type mockDUPATemplateRepository struct {
	getByIDFunc func(ctx context.Context, id string) (*model.DUPATemplate, error)
	createFunc  func(ctx context.Context, t *model.DUPATemplate) error
	updateFunc  func(ctx context.Context, t *model.DUPATemplate) error
}

func (m *mockDUPATemplateRepository) List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error) {
	return nil, nil
}
func (m *mockDUPATemplateRepository) GetByID(ctx context.Context, id string) (*model.DUPATemplate, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockDUPATemplateRepository) Create(ctx context.Context, t *model.DUPATemplate) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	return nil
}
func (m *mockDUPATemplateRepository) Update(ctx context.Context, t *model.DUPATemplate) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}
func (m *mockDUPATemplateRepository) Delete(ctx context.Context, id string) error { return nil }

type mockProjectRepository struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Project, error)
	createFunc  func(ctx context.Context, p *model.Project) error
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	return nil, nil
}
func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}
func (m *mockProjectRepository) Update(ctx context.Context, p *model.Project) error { return nil }
func (m *mockProjectRepository) Delete(ctx context.Context, id string) error        { return nil }

type mockBOQEntryRepository struct {
	listFunc   func(ctx context.Context, projectID string) ([]*model.BOQEntry, error)
	createFunc func(ctx context.Context, e *model.BOQEntry) error
	deleteFunc func(ctx context.Context, projectID, id string) error
}

func (m *mockBOQEntryRepository) ListByProjectID(ctx context.Context, projectID string) ([]*model.BOQEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, projectID)
	}
	return []*model.BOQEntry{}, nil
}
func (m *mockBOQEntryRepository) Create(ctx context.Context, e *model.BOQEntry) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, e)
	}
	e.ID = "entry-1"
	return nil
}
func (m *mockBOQEntryRepository) Delete(ctx context.Context, projectID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, projectID, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Instantiator mocks
// ---------------------------------------------------------------------------

type mockInstantiator struct {
	instantiateFunc func(ctx context.Context, templateID, location string, opts estimate.Options) (*model.ComputedData, error)
}

func (m *mockInstantiator) Instantiate(ctx context.Context, templateID, location string, opts estimate.Options) (*model.ComputedData, error) {
	if m.instantiateFunc != nil {
		return m.instantiateFunc(ctx, templateID, location, opts)
	}
	return &model.ComputedData{TemplateID: templateID, Location: location}, nil
}

type recordingObserver struct {
	outcomes []string
}

func (r *recordingObserver) ObserveInstantiation(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}
