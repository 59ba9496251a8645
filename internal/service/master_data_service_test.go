package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

func TestLaborRateService_Upsert_TrimsLocation(t *testing.T) {
	var saved *model.LaborRate
	repo := &mockLaborRateRepository{
		upsertFunc: func(_ context.Context, rate *model.LaborRate) error {
			saved = rate
			return nil
		},
	}
	svc := NewLaborRateService(repo)

	got, err := svc.Upsert(context.Background(), &model.LaborRateInput{Location: " Malaybalay City ", Foreman: 100})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if saved != got || got.Location != "Malaybalay City" || got.Foreman != 100 {
		t.Errorf("saved = %+v", saved)
	}
}

func TestLaborRateService_Create_BlankLocation(t *testing.T) {
	svc := NewLaborRateService(&mockLaborRateRepository{})

	if _, err := svc.Create(context.Background(), &model.LaborRateInput{Location: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestLaborRateService_Update_NotFound(t *testing.T) {
	svc := NewLaborRateService(&mockLaborRateRepository{})

	if _, err := svc.Update(context.Background(), "x", &model.LaborRateInput{Location: "Malaybalay City"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestMaterialService_Create_NormalizesCode(t *testing.T) {
	var saved *model.Material
	repo := &mockMaterialRepository{
		createFunc: func(_ context.Context, m *model.Material) error {
			saved = m
			return nil
		},
	}
	svc := NewMaterialService(repo, &mockMaterialPriceRepository{})

	got, err := svc.Create(context.Background(), &model.MaterialInput{MaterialCode: " cem-01 ", Description: "Portland Cement", Unit: "bag"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if saved == nil || got.MaterialCode != "CEM-01" {
		t.Errorf("MaterialCode = %q, want CEM-01", got.MaterialCode)
	}
	if !got.IncludeHauling {
		t.Error("IncludeHauling = false, want true by default")
	}
}

func TestMaterialService_Create_ConflictPassesThrough(t *testing.T) {
	repo := &mockMaterialRepository{
		createFunc: func(_ context.Context, _ *model.Material) error { return repository.ErrConflict },
	}
	svc := NewMaterialService(repo, &mockMaterialPriceRepository{})

	_, err := svc.Create(context.Background(), &model.MaterialInput{MaterialCode: "CEM-01", Description: "Cement", Unit: "bag"})
	if !errors.Is(err, repository.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestMaterialService_CreatePrice_RequiresLocation(t *testing.T) {
	prices := &mockMaterialPriceRepository{
		createFunc: func(_ context.Context, _ *model.MaterialPrice) error {
			t.Error("Create must not reach the repository")
			return nil
		},
	}
	svc := NewMaterialService(&mockMaterialRepository{}, prices)

	_, err := svc.CreatePrice(context.Background(), &model.MaterialPriceInput{MaterialCode: "CEM-01", Location: " ", UnitCost: 250})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestMaterialService_ListPrices_NormalizesFilter(t *testing.T) {
	var got model.MaterialPriceFilter
	prices := &mockMaterialPriceRepository{
		listFunc: func(_ context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error) {
			got = f
			return nil, nil
		},
	}
	svc := NewMaterialService(&mockMaterialRepository{}, prices)

	if _, err := svc.ListPrices(context.Background(), model.MaterialPriceFilter{MaterialCode: "cem-01", Location: " Malaybalay City "}); err != nil {
		t.Fatal(err)
	}
	if got.MaterialCode != "CEM-01" || got.Location != "Malaybalay City" {
		t.Errorf("filter = %+v", got)
	}
}
