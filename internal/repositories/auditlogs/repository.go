package auditlogs

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/models"
)

// Repository is append-only. List returns newest first.
type Repository interface {
	Append(ctx context.Context, entry *models.AuditLog) error
	Get(ctx context.Context, id string) (*models.AuditLog, error)
	List(ctx context.Context) ([]*models.AuditLog, error)
}
