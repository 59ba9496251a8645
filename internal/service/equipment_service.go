package service

import (
	"context"
	"strings"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// EquipmentService manages the equipment catalog.
type EquipmentService interface {
	List(ctx context.Context, search string) ([]*model.Equipment, error)
	GetByID(ctx context.Context, id string) (*model.Equipment, error)
	Create(ctx context.Context, in *model.EquipmentInput) (*model.Equipment, error)
	Update(ctx context.Context, id string, in *model.EquipmentInput) (*model.Equipment, error)
	Delete(ctx context.Context, id string) error
}

// EquipmentServiceImpl is the EquipmentService implementation.
type EquipmentServiceImpl struct {
	repo repository.EquipmentRepository
}

// NewEquipmentService returns an EquipmentServiceImpl.
func NewEquipmentService(repo repository.EquipmentRepository) EquipmentService {
	return &EquipmentServiceImpl{repo: repo}
}

func (s *EquipmentServiceImpl) List(ctx context.Context, search string) ([]*model.Equipment, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *EquipmentServiceImpl) GetByID(ctx context.Context, id string) (*model.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EquipmentServiceImpl) Create(ctx context.Context, in *model.EquipmentInput) (*model.Equipment, error) {
	e := &model.Equipment{}
	in.Apply(e)
	if strings.TrimSpace(e.Description) == "" {
		return nil, invalidf("description is required")
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EquipmentServiceImpl) Update(ctx context.Context, id string, in *model.EquipmentInput) (*model.Equipment, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(e)
	if strings.TrimSpace(e.Description) == "" {
		return nil, invalidf("description is required")
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EquipmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
