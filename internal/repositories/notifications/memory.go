package notifications

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/models"
)

type MemoryRepository struct {
	t *memdb.Table[models.Notification, *models.Notification]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		t: memdb.NewTable[models.Notification](func(n *models.Notification) string { return n.ID }),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, n *models.Notification) error {
	r.t.Prepend(n)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Notification, error) {
	n, ok := r.t.Get(id)
	if !ok {
		return nil, fmt.Errorf("notification %s: %w", id, common.ErrorNotFound)
	}
	return n, nil
}

func (r *MemoryRepository) Save(ctx context.Context, n *models.Notification) error {
	if !r.t.Replace(n) {
		return fmt.Errorf("notification %s: %w", n.ID, common.ErrorNotFound)
	}
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Notification, error) {
	return r.t.All(), nil
}
