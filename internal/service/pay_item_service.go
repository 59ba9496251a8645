package service

import (
	"context"
	"strings"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// PayItemService manages the pay item catalog.
type PayItemService interface {
	List(ctx context.Context, search string) ([]*model.PayItem, error)
	GetByID(ctx context.Context, id string) (*model.PayItem, error)
	Create(ctx context.Context, in *model.PayItemInput) (*model.PayItem, error)
	Update(ctx context.Context, id string, in *model.PayItemInput) (*model.PayItem, error)
	Delete(ctx context.Context, id string) error
}

// PayItemServiceImpl is the PayItemService implementation.
type PayItemServiceImpl struct {
	repo repository.PayItemRepository
}

// NewPayItemService returns a PayItemServiceImpl.
func NewPayItemService(repo repository.PayItemRepository) PayItemService {
	return &PayItemServiceImpl{repo: repo}
}

func (s *PayItemServiceImpl) List(ctx context.Context, search string) ([]*model.PayItem, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *PayItemServiceImpl) GetByID(ctx context.Context, id string) (*model.PayItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PayItemServiceImpl) Create(ctx context.Context, in *model.PayItemInput) (*model.PayItem, error) {
	p := &model.PayItem{}
	in.Apply(p)
	p.PayItemNumber = strings.TrimSpace(p.PayItemNumber)
	if p.PayItemNumber == "" {
		return nil, invalidf("payItemNumber is required")
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PayItemServiceImpl) Update(ctx context.Context, id string, in *model.PayItemInput) (*model.PayItem, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(p)
	p.PayItemNumber = strings.TrimSpace(p.PayItemNumber)
	if p.PayItemNumber == "" {
		return nil, invalidf("payItemNumber is required")
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PayItemServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
