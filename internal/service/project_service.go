package service

import (
	"context"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// ProjectService manages projects and their bills of quantities.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, in *model.ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id string, in *model.ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id string) error

	ListBOQ(ctx context.Context, projectID string) ([]*model.BOQEntry, error)
	// AddBOQEntry instantiates a template and stores the result against the project.
	AddBOQEntry(ctx context.Context, projectID string, in *model.BOQEntryInput) (*model.BOQEntry, error)
	// SaveEntry stores an already instantiated template and returns the entry ID.
	SaveEntry(ctx context.Context, projectID string, data *model.ComputedData, quantity float64) (string, error)
	DeleteBOQEntry(ctx context.Context, projectID, entryID string) error
	// Summary rolls the project's BOQ up with the EDC bracket markups.
	Summary(ctx context.Context, projectID string) (*model.ProjectCostSummary, error)
}
