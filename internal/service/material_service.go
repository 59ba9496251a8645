package service

import (
	"context"
	"strings"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// MaterialService manages the material catalog and its location price history.
type MaterialService interface {
	List(ctx context.Context, f model.MaterialFilter) ([]*model.Material, error)
	GetByID(ctx context.Context, id string) (*model.Material, error)
	Create(ctx context.Context, in *model.MaterialInput) (*model.Material, error)
	Update(ctx context.Context, id string, in *model.MaterialInput) (*model.Material, error)
	Delete(ctx context.Context, id string) error

	ListPrices(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error)
	GetPrice(ctx context.Context, id string) (*model.MaterialPrice, error)
	CreatePrice(ctx context.Context, in *model.MaterialPriceInput) (*model.MaterialPrice, error)
	UpdatePrice(ctx context.Context, id string, in *model.MaterialPriceInput) (*model.MaterialPrice, error)
	DeletePrice(ctx context.Context, id string) error
}

// MaterialServiceImpl is the MaterialService implementation.
type MaterialServiceImpl struct {
	materials repository.MaterialRepository
	prices    repository.MaterialPriceRepository
}

// NewMaterialService returns a MaterialServiceImpl.
func NewMaterialService(materials repository.MaterialRepository, prices repository.MaterialPriceRepository) MaterialService {
	return &MaterialServiceImpl{materials: materials, prices: prices}
}

func (s *MaterialServiceImpl) List(ctx context.Context, f model.MaterialFilter) ([]*model.Material, error) {
	f.Category = strings.TrimSpace(f.Category)
	f.Search = strings.TrimSpace(f.Search)
	return s.materials.List(ctx, f)
}

func (s *MaterialServiceImpl) GetByID(ctx context.Context, id string) (*model.Material, error) {
	return s.materials.GetByID(ctx, id)
}

func (s *MaterialServiceImpl) Create(ctx context.Context, in *model.MaterialInput) (*model.Material, error) {
	m := &model.Material{}
	in.Apply(m)
	if m.MaterialCode == "" {
		return nil, invalidf("materialCode is required")
	}
	if err := s.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialServiceImpl) Update(ctx context.Context, id string, in *model.MaterialInput) (*model.Material, error) {
	m, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(m)
	if m.MaterialCode == "" {
		return nil, invalidf("materialCode is required")
	}
	if err := s.materials.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialServiceImpl) Delete(ctx context.Context, id string) error {
	return s.materials.Delete(ctx, id)
}

// ListPrices returns price history, newest first.
func (s *MaterialServiceImpl) ListPrices(ctx context.Context, f model.MaterialPriceFilter) ([]*model.MaterialPrice, error) {
	f.MaterialCode = model.NormalizeMaterialCode(f.MaterialCode)
	f.Location = strings.TrimSpace(f.Location)
	return s.prices.List(ctx, f)
}

func (s *MaterialServiceImpl) GetPrice(ctx context.Context, id string) (*model.MaterialPrice, error) {
	return s.prices.GetByID(ctx, id)
}

func (s *MaterialServiceImpl) CreatePrice(ctx context.Context, in *model.MaterialPriceInput) (*model.MaterialPrice, error) {
	p := &model.MaterialPrice{}
	in.Apply(p)
	if err := checkPrice(p); err != nil {
		return nil, err
	}
	if err := s.prices.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *MaterialServiceImpl) UpdatePrice(ctx context.Context, id string, in *model.MaterialPriceInput) (*model.MaterialPrice, error) {
	p, err := s.prices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(p)
	if err := checkPrice(p); err != nil {
		return nil, err
	}
	if err := s.prices.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *MaterialServiceImpl) DeletePrice(ctx context.Context, id string) error {
	return s.prices.Delete(ctx, id)
}

func checkPrice(p *model.MaterialPrice) error {
	p.Location = strings.TrimSpace(p.Location)
	if p.MaterialCode == "" {
		return invalidf("materialCode is required")
	}
	if p.Location == "" {
		return invalidf("location is required")
	}
	return nil
}
