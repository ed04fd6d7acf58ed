package documents

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/models"
)

// MemoryRepository keeps documents in insertion order.
type MemoryRepository struct {
	t *memdb.Table[models.Document, *models.Document]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		t: memdb.NewTable[models.Document](func(d *models.Document) string { return d.ID }),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, doc *models.Document) error {
	r.t.Append(doc)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Document, error) {
	d, ok := r.t.Get(id)
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrorNotFound)
	}
	return d, nil
}

func (r *MemoryRepository) Save(ctx context.Context, doc *models.Document) error {
	if !r.t.Replace(doc) {
		return fmt.Errorf("document %s: %w", doc.ID, common.ErrorNotFound)
	}
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (*models.Document, error) {
	d, ok := r.t.Delete(id)
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrorNotFound)
	}
	return d, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Document, error) {
	return r.t.All(), nil
}
