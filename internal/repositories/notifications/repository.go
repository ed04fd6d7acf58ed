package notifications

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/models"
)

// Repository holds notifications newest first.
type Repository interface {
	Create(ctx context.Context, n *models.Notification) error
	Get(ctx context.Context, id string) (*models.Notification, error)
	Save(ctx context.Context, n *models.Notification) error
	List(ctx context.Context) ([]*models.Notification, error)
}
