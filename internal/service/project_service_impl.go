package service

import (
	"context"
	"strings"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

// ProjectServiceImpl is the ProjectService implementation.
type ProjectServiceImpl struct {
	projectRepo  repository.ProjectRepository
	entryRepo    repository.BOQEntryRepository
	instantiator Instantiator
	brackets     estimate.BracketTable
}

// NewProjectService returns a ProjectServiceImpl. A nil bracket table uses estimate.DefaultBrackets.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	entryRepo repository.BOQEntryRepository,
	instantiator Instantiator,
	brackets estimate.BracketTable,
) ProjectService {
	if len(brackets) == 0 {
		brackets = estimate.DefaultBrackets()
	}
	return &ProjectServiceImpl{
		projectRepo:  projectRepo,
		entryRepo:    entryRepo,
		instantiator: instantiator,
		brackets:     brackets,
	}
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectServiceImpl) Create(ctx context.Context, in *model.ProjectInput) (*model.Project, error) {
	p := &model.Project{}
	in.Apply(p)
	if err := checkProject(p); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id string, in *model.ProjectInput) (*model.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(p)
	if err := checkProject(p); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

func (s *ProjectServiceImpl) ListBOQ(ctx context.Context, projectID string) ([]*model.BOQEntry, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.entryRepo.ListByProjectID(ctx, projectID)
}

// AddBOQEntry prices the template at in.Location, or at the project's location
// when none is given, and stores it with in.Quantity.
func (s *ProjectServiceImpl) AddBOQEntry(ctx context.Context, projectID string, in *model.BOQEntryInput) (*model.BOQEntry, error) {
	if in.Quantity <= 0 {
		return nil, invalidf("quantity must be greater than zero")
	}
	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = p.Location
	}
	data, err := s.instantiator.Instantiate(ctx, in.TemplateID, location, estimate.Options{
		AsOf:          in.AsOfDate.TimePtr(),
		OCMPercentage: in.OCMPercentage,
		CPPercentage:  in.CPPercentage,
	})
	if err != nil {
		return nil, err
	}
	return s.saveEntry(ctx, p.ID, data, in.Quantity)
}

func (s *ProjectServiceImpl) SaveEntry(ctx context.Context, projectID string, data *model.ComputedData, quantity float64) (string, error) {
	if data == nil {
		return "", invalidf("computed data is required")
	}
	if quantity <= 0 {
		return "", invalidf("quantity must be greater than zero")
	}
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return "", err
	}
	e, err := s.saveEntry(ctx, projectID, data, quantity)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func (s *ProjectServiceImpl) saveEntry(ctx context.Context, projectID string, data *model.ComputedData, quantity float64) (*model.BOQEntry, error) {
	e := model.NewBOQEntry(projectID, data, quantity)
	if err := s.entryRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ProjectServiceImpl) DeleteBOQEntry(ctx context.Context, projectID, entryID string) error {
	return s.entryRepo.Delete(ctx, projectID, entryID)
}

func (s *ProjectServiceImpl) Summary(ctx context.Context, projectID string) (*model.ProjectCostSummary, error) {
	entries, err := s.ListBOQ(ctx, projectID)
	if err != nil {
		return nil, err
	}
	summary := estimate.Aggregate(entries, s.brackets)
	return &summary, nil
}

func checkProject(p *model.Project) error {
	p.ProjectName = strings.TrimSpace(p.ProjectName)
	p.Location = strings.TrimSpace(p.Location)
	if p.ProjectName == "" {
		return invalidf("projectName is required")
	}
	if p.Location == "" {
		return invalidf("location is required")
	}
	return nil
}
