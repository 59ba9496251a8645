package service

import (
	"context"
	"strings"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// DUPATemplateService manages DUPA templates and prices them at a location.
type DUPATemplateService interface {
	List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error)
	GetByID(ctx context.Context, id string) (*model.DUPATemplate, error)
	Create(ctx context.Context, in *model.DUPATemplateInput) (*model.DUPATemplate, error)
	Update(ctx context.Context, id string, in *model.DUPATemplateInput) (*model.DUPATemplate, error)
	Delete(ctx context.Context, id string) error
	// Instantiate prices template id at in.Location without persisting the result.
	Instantiate(ctx context.Context, id string, in *model.InstantiateInput) (*model.ComputedData, error)
}

// DUPATemplateServiceImpl is the DUPATemplateService implementation.
type DUPATemplateServiceImpl struct {
	repo         repository.DUPATemplateRepository
	instantiator Instantiator
}

// NewDUPATemplateService returns a DUPATemplateServiceImpl.
func NewDUPATemplateService(repo repository.DUPATemplateRepository, instantiator Instantiator) DUPATemplateService {
	return &DUPATemplateServiceImpl{repo: repo, instantiator: instantiator}
}

func (s *DUPATemplateServiceImpl) List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error) {
	f.Search = strings.TrimSpace(f.Search)
	return s.repo.List(ctx, f)
}

func (s *DUPATemplateServiceImpl) GetByID(ctx context.Context, id string) (*model.DUPATemplate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DUPATemplateServiceImpl) Create(ctx context.Context, in *model.DUPATemplateInput) (*model.DUPATemplate, error) {
	t := &model.DUPATemplate{}
	in.Apply(t)
	if err := checkTemplate(t); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DUPATemplateServiceImpl) Update(ctx context.Context, id string, in *model.DUPATemplateInput) (*model.DUPATemplate, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(t)
	if err := checkTemplate(t); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DUPATemplateServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *DUPATemplateServiceImpl) Instantiate(ctx context.Context, id string, in *model.InstantiateInput) (*model.ComputedData, error) {
	return s.instantiator.Instantiate(ctx, id, in.Location, estimate.Options{
		AsOf:          in.AsOfDate.TimePtr(),
		OCMPercentage: in.OCMPercentage,
		CPPercentage:  in.CPPercentage,
	})
}

// checkTemplate enforces the rules a template needs before it can be priced.
func checkTemplate(t *model.DUPATemplate) error {
	t.PayItemNumber = strings.TrimSpace(t.PayItemNumber)
	if t.PayItemNumber == "" {
		return invalidf("payItemNumber is required")
	}
	for i, l := range t.Labor {
		if !l.Designation.Valid() {
			return invalidf("laborTemplate[%d].designation %q is not a known designation", i, l.Designation)
		}
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"ocmPercentage", t.OCMPercentage},
		{"cpPercentage", t.CPPercentage},
		{"vatPercentage", t.VATPercentage},
	} {
		if p.value < 0 {
			return invalidf("%s must not be negative", p.name)
		}
	}
	return nil
}
