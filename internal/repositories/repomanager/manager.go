package repomanager

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/repositories/auditlogs"
	"github.com/dmitrijs2005/docflow/internal/repositories/doctypes"
	"github.com/dmitrijs2005/docflow/internal/repositories/documents"
	"github.com/dmitrijs2005/docflow/internal/repositories/notifications"
	"github.com/dmitrijs2005/docflow/internal/repositories/templates"
	"github.com/dmitrijs2005/docflow/internal/repositories/users"
	"github.com/dmitrijs2005/docflow/internal/repositories/workflows"
)

type RepositoryManager interface {
	Documents() documents.Repository
	DocumentTypes() doctypes.Repository
	Users() users.Repository
	Templates() templates.Repository
	Workflows() workflows.Repository
	AuditLogs() auditlogs.Repository
	Notifications() notifications.Repository

	// Exclusive runs fn with every other Exclusive caller locked out.
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error
}
