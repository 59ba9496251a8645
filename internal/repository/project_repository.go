package repository

import (
	"context"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// ProjectRepository persists projects. Deleting a project removes its BOQ.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}

// BOQEntryRepository persists the bill of quantities of each project.
type BOQEntryRepository interface {
	ListByProjectID(ctx context.Context, projectID string) ([]*model.BOQEntry, error)
	Create(ctx context.Context, entry *model.BOQEntry) error
	// Delete removes entry id only when it belongs to projectID.
	Delete(ctx context.Context, projectID, id string) error
}
