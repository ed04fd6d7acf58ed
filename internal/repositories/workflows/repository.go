package workflows

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/models"
)

type Repository interface {
	Create(ctx context.Context, wf *models.Workflow) error
	Get(ctx context.Context, id string) (*models.Workflow, error)
	Save(ctx context.Context, wf *models.Workflow) error
	List(ctx context.Context) ([]*models.Workflow, error)
}
