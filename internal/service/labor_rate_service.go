package service

import (
	"context"
	"strings"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// LaborRateService manages per-location labor rates.
type LaborRateService interface {
	List(ctx context.Context, location string) ([]*model.LaborRate, error)
	GetByID(ctx context.Context, id string) (*model.LaborRate, error)
	Create(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error)
	Update(ctx context.Context, id string, in *model.LaborRateInput) (*model.LaborRate, error)
	// Upsert replaces the rates of in.Location or creates them.
	Upsert(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error)
	Delete(ctx context.Context, id string) error
}

// LaborRateServiceImpl is the LaborRateService implementation.
type LaborRateServiceImpl struct {
	repo repository.LaborRateRepository
}

// NewLaborRateService returns a LaborRateServiceImpl.
func NewLaborRateService(repo repository.LaborRateRepository) LaborRateService {
	return &LaborRateServiceImpl{repo: repo}
}

func (s *LaborRateServiceImpl) List(ctx context.Context, location string) ([]*model.LaborRate, error) {
	return s.repo.List(ctx, strings.TrimSpace(location))
}

func (s *LaborRateServiceImpl) GetByID(ctx context.Context, id string) (*model.LaborRate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LaborRateServiceImpl) Create(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error) {
	l, err := newLaborRate(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LaborRateServiceImpl) Update(ctx context.Context, id string, in *model.LaborRateInput) (*model.LaborRate, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	l, err := newLaborRate(in)
	if err != nil {
		return nil, err
	}
	l.ID = id
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LaborRateServiceImpl) Upsert(ctx context.Context, in *model.LaborRateInput) (*model.LaborRate, error) {
	l, err := newLaborRate(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LaborRateServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func newLaborRate(in *model.LaborRateInput) (*model.LaborRate, error) {
	l := &model.LaborRate{}
	in.Apply(l)
	l.Location = strings.TrimSpace(l.Location)
	if l.Location == "" {
		return nil, invalidf("location is required")
	}
	return l, nil
}
