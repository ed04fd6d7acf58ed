package auditlogs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/models"
)

type MemoryRepository struct {
	t *memdb.Table[models.AuditLog, *models.AuditLog]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		t: memdb.NewTable[models.AuditLog](func(a *models.AuditLog) string { return a.ID }),
	}
}

func (r *MemoryRepository) Append(ctx context.Context, entry *models.AuditLog) error {
	r.t.Prepend(entry)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.AuditLog, error) {
	a, ok := r.t.Get(id)
	if !ok {
		return nil, fmt.Errorf("audit entry %s: %w", id, common.ErrorNotFound)
	}
	return a, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.AuditLog, error) {
	return r.t.All(), nil
}
