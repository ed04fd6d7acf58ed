package doctypes

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/models"
)

type MemoryRepository struct {
	t *memdb.Table[models.DocumentType, *models.DocumentType]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		t: memdb.NewTable[models.DocumentType](func(d *models.DocumentType) string { return d.ID }),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, t *models.DocumentType) error {
	r.t.Append(t)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.DocumentType, error) {
	return r.t.All(), nil
}
