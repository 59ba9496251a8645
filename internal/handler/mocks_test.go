package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

const (
	projectID  = "7d9f3a56-2b1e-4c4a-9f0e-1a2b3c4d5e6f"
	templateID = "0c8a5e1b-9d3f-4b7a-8e2c-6f5d4c3b2a10"
	entryID    = "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

// ----------------------------------------------------------------------------
// LaborRateService
// ----------------------------------------------------------------------------

type mockLaborRateService struct {
	listFunc    func(ctx context.Context, location string) ([]*model.LaborRate, error)
	getByIDFunc func(ctx context.Context, id string) (*model.LaborRate, error)
	createFunc  func(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error)
	updateFunc  func(ctx context.Context, id string, in *model.LaborRateInput) (*model.LaborRate, error)
	upsertFunc  func(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockLaborRateService) List(ctx context.Context, location string) ([]*model.LaborRate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, location)
	}
	return nil, nil
}

func (m *mockLaborRateService) GetByID(ctx context.Context, id string) (*model.LaborRate, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockLaborRateService) Create(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.LaborRate{Location: in.Location}, nil
}

func (m *mockLaborRateService) Update(ctx context.Context, id string, in *model.LaborRateInput) (*model.LaborRate, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &model.LaborRate{ID: id, Location: in.Location}, nil
}

func (m *mockLaborRateService) Upsert(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, in)
	}
	return &model.LaborRate{Location: in.Location}, nil
}

func (m *mockLaborRateService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ----------------------------------------------------------------------------
// MaterialService
// ----------------------------------------------------------------------------

type mockMaterialService struct {
	listFunc        func(ctx context.Context, f model.MaterialFilter) ([]*model.Material, error)
	createFunc      func(ctx context.Context, in *model.MaterialInput) (*model.Material, error)
	listPricesFunc  func(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error)
	createPriceFunc func(ctx context.Context, in *model.MaterialPriceInput) (*model.MaterialPrice, error)
	deletePriceFunc func(ctx context.Context, id string) error
}

func (m *mockMaterialService) List(ctx context.Context, f model.MaterialFilter) ([]*model.Material, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockMaterialService) GetByID(ctx context.Context, id string) (*model.Material, error) {
	return nil, repository.ErrNotFound
}

func (m *mockMaterialService) Create(ctx context.Context, in *model.MaterialInput) (*model.Material, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.Material{MaterialCode: in.MaterialCode}, nil
}

func (m *mockMaterialService) Update(ctx context.Context, id string, in *model.MaterialInput) (*model.Material, error) {
	return &model.Material{ID: id, MaterialCode: in.MaterialCode}, nil
}

func (m *mockMaterialService) Delete(ctx context.Context, id string) error { return nil }

func (m *mockMaterialService) ListPrices(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error) {
	if m.listPricesFunc != nil {
		return m.listPricesFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockMaterialService) GetPrice(ctx context.Context, id string) (*model.MaterialPrice, error) {
	return nil, repository.ErrNotFound
}

func (m *mockMaterialService) CreatePrice(ctx context.Context, in *model.MaterialPriceInput) (*model.MaterialPrice, error) {
	if m.createPriceFunc != nil {
		return m.createPriceFunc(ctx, in)
	}
	return &model.MaterialPrice{MaterialCode: in.MaterialCode}, nil
}

func (m *mockMaterialService) UpdatePrice(ctx context.Context, id string, in *model.MaterialPriceInput) (*model.MaterialPrice, error) {
	return &model.MaterialPrice{ID: id, MaterialCode: in.MaterialCode}, nil
}

func (m *mockMaterialService) DeletePrice(ctx context.Context, id string) error {
	if m.deletePriceFunc != nil {
		return m.deletePriceFunc(ctx, id)
	}
	return nil
}

// ----------------------------------------------------------------------------
// DUPATemplateService
// ----------------------------------------------------------------------------

type mockDUPATemplateService struct {
	listFunc        func(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error)
	getByIDFunc     func(ctx context.Context, id string) (*model.DUPATemplate, error)
	createFunc      func(ctx context.Context, in *model.DUPATemplateInput) (*model.DUPATemplate, error)
	updateFunc      func(ctx context.Context, id string, in *model.DUPATemplateInput) (*model.DUPATemplate, error)
	deleteFunc      func(ctx context.Context, id string) error
	instantiateFunc func(ctx context.Context, id string, in *model.InstantiateInput) (*model.ComputedData, error)
}

func (m *mockDUPATemplateService) List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockDUPATemplateService) GetByID(ctx context.Context, id string) (*model.DUPATemplate, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockDUPATemplateService) Create(ctx context.Context, in *model.DUPATemplateInput) (*model.DUPATemplate, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.DUPATemplate{ID: templateID, PayItemNumber: in.PayItemNumber}, nil
}

func (m *mockDUPATemplateService) Update(ctx context.Context, id string, in *model.DUPATemplateInput) (*model.DUPATemplate, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &model.DUPATemplate{ID: id, PayItemNumber: in.PayItemNumber}, nil
}

func (m *mockDUPATemplateService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDUPATemplateService) Instantiate(ctx context.Context, id string, in *model.InstantiateInput) (*model.ComputedData, error) {
	if m.instantiateFunc != nil {
		return m.instantiateFunc(ctx, id, in)
	}
	return &model.ComputedData{TemplateID: id, Location: in.Location}, nil
}

// ----------------------------------------------------------------------------
// ProjectService
// ----------------------------------------------------------------------------

type mockProjectService struct {
	listFunc           func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc        func(ctx context.Context, id string) (*model.Project, error)
	createFunc         func(ctx context.Context, in *model.ProjectInput) (*model.Project, error)
	updateFunc         func(ctx context.Context, id string, in *model.ProjectInput) (*model.Project, error)
	deleteFunc         func(ctx context.Context, id string) error
	listBOQFunc        func(ctx context.Context, projectID string) ([]*model.BOQEntry, error)
	addBOQEntryFunc    func(ctx context.Context, projectID string, in *model.BOQEntryInput) (*model.BOQEntry, error)
	deleteBOQEntryFunc func(ctx context.Context, projectID, entryID string) error
	summaryFunc        func(ctx context.Context, projectID string) (*model.ProjectCostSummary, error)
}

func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Create(ctx context.Context, in *model.ProjectInput) (*model.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.Project{ID: projectID, ProjectName: in.ProjectName, Location: in.Location}, nil
}

func (m *mockProjectService) Update(ctx context.Context, id string, in *model.ProjectInput) (*model.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &model.Project{ID: id, ProjectName: in.ProjectName, Location: in.Location}, nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectService) ListBOQ(ctx context.Context, projectID string) ([]*model.BOQEntry, error) {
	if m.listBOQFunc != nil {
		return m.listBOQFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) AddBOQEntry(ctx context.Context, projectID string, in *model.BOQEntryInput) (*model.BOQEntry, error) {
	if m.addBOQEntryFunc != nil {
		return m.addBOQEntryFunc(ctx, projectID, in)
	}
	return &model.BOQEntry{ID: entryID, ProjectID: projectID, Quantity: in.Quantity}, nil
}

func (m *mockProjectService) SaveEntry(ctx context.Context, projectID string, data *model.ComputedData, quantity float64) (string, error) {
	return entryID, nil
}

func (m *mockProjectService) DeleteBOQEntry(ctx context.Context, projectID, entryID string) error {
	if m.deleteBOQEntryFunc != nil {
		return m.deleteBOQEntryFunc(ctx, projectID, entryID)
	}
	return nil
}

func (m *mockProjectService) Summary(ctx context.Context, projectID string) (*model.ProjectCostSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, projectID)
	}
	return &model.ProjectCostSummary{}, nil
}
