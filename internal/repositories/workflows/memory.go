package workflows

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/models"
)

type MemoryRepository struct {
	t *memdb.Table[models.Workflow, *models.Workflow]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		t: memdb.NewTable[models.Workflow](func(w *models.Workflow) string { return w.ID }),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, wf *models.Workflow) error {
	r.t.Append(wf)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Workflow, error) {
	w, ok := r.t.Get(id)
	if !ok {
		return nil, fmt.Errorf("workflow %s: %w", id, common.ErrorNotFound)
	}
	return w, nil
}

func (r *MemoryRepository) Save(ctx context.Context, wf *models.Workflow) error {
	if !r.t.Replace(wf) {
		return fmt.Errorf("workflow %s: %w", wf.ID, common.ErrorNotFound)
	}
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Workflow, error) {
	return r.t.All(), nil
}
