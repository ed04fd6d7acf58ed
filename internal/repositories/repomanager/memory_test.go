package repomanager

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryManager_SameInstances(t *testing.T) {
	m := NewMemoryRepositoryManager()

	assert.Same(t, m.Documents(), m.Documents())
	assert.Same(t, m.DocumentTypes(), m.DocumentTypes())
	assert.Same(t, m.Users(), m.Users())
	assert.Same(t, m.Templates(), m.Templates())
	assert.Same(t, m.Workflows(), m.Workflows())
	assert.Same(t, m.AuditLogs(), m.AuditLogs())
	assert.Same(t, m.Notifications(), m.Notifications())
}

var _ RepositoryManager = (*MemoryRepositoryManager)(nil)

func TestMemoryRepositoryManager_ExclusiveSerializes(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepositoryManager()
	require.NoError(t, m.Documents().Create(ctx, &models.Document{ID: "d", Version: "0"}))

	// read-modify-write under Exclusive must not lose updates
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Exclusive(ctx, func(ctx context.Context) error {
				d, err := m.Documents().Get(ctx, "d")
				if err != nil {
					return err
				}
				d.Attachments = append(d.Attachments, "x")
				return m.Documents().Save(ctx, d)
			})
		}()
	}
	wg.Wait()

	d, err := m.Documents().Get(ctx, "d")
	require.NoError(t, err)
	assert.Len(t, d.Attachments, 20)
}
