// Package repomanager wires the in-memory repository implementations into a
// single store and provides a store-wide exclusive section for operations
// that touch several collections.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/memdb"
	"github.com/dmitrijs2005/docflow/internal/repositories/auditlogs"
	"github.com/dmitrijs2005/docflow/internal/repositories/doctypes"
	"github.com/dmitrijs2005/docflow/internal/repositories/documents"
	"github.com/dmitrijs2005/docflow/internal/repositories/notifications"
	"github.com/dmitrijs2005/docflow/internal/repositories/templates"
	"github.com/dmitrijs2005/docflow/internal/repositories/users"
	"github.com/dmitrijs2005/docflow/internal/repositories/workflows"
)

// MemoryRepositoryManager owns one instance of each repository. Repeated
// accessor calls return the same instance.
type MemoryRepositoryManager struct {
	documents     *documents.MemoryRepository
	docTypes      *doctypes.MemoryRepository
	users         *users.MemoryRepository
	templates     *templates.MemoryRepository
	workflows     *workflows.MemoryRepository
	auditLogs     *auditlogs.MemoryRepository
	notifications *notifications.MemoryRepository

	x memdb.Exclusive
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		documents:     documents.NewMemoryRepository(),
		docTypes:      doctypes.NewMemoryRepository(),
		users:         users.NewMemoryRepository(),
		templates:     templates.NewMemoryRepository(),
		workflows:     workflows.NewMemoryRepository(),
		auditLogs:     auditlogs.NewMemoryRepository(),
		notifications: notifications.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Documents() documents.Repository { return m.documents }

func (m *MemoryRepositoryManager) DocumentTypes() doctypes.Repository { return m.docTypes }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Templates() templates.Repository { return m.templates }

func (m *MemoryRepositoryManager) Workflows() workflows.Repository { return m.workflows }

func (m *MemoryRepositoryManager) AuditLogs() auditlogs.Repository { return m.auditLogs }

func (m *MemoryRepositoryManager) Notifications() notifications.Repository { return m.notifications }

func (m *MemoryRepositoryManager) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.x.Do(ctx, fn)
}
