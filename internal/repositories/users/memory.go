package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/models"
)

type MemoryRepository struct {
	t *memdb.Table[models.User, *models.User]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		t: memdb.NewTable[models.User](func(u *models.User) string { return u.ID }),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) error {
	r.t.Append(user)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.t.Get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, common.ErrorNotFound)
	}
	return u, nil
}

func (r *MemoryRepository) Save(ctx context.Context, user *models.User) error {
	if !r.t.Replace(user) {
		return fmt.Errorf("user %s: %w", user.ID, common.ErrorNotFound)
	}
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.t.All(), nil
}
