package templates

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/models"
)

type MemoryRepository struct {
	t *memdb.Table[models.WorkflowTemplate, *models.WorkflowTemplate]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		t: memdb.NewTable[models.WorkflowTemplate](func(t *models.WorkflowTemplate) string { return t.ID }),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, t *models.WorkflowTemplate) error {
	r.t.Append(t)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.WorkflowTemplate, error) {
	t, ok := r.t.Get(id)
	if !ok {
		return nil, fmt.Errorf("template %s: %w", id, common.ErrorNotFound)
	}
	return t, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.WorkflowTemplate, error) {
	return r.t.All(), nil
}
