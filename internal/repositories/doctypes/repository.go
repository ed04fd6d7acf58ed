package doctypes

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.DocumentType) error
	List(ctx context.Context) ([]*models.DocumentType, error)
}
