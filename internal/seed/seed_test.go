package seed

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/dmitrijs2005/docflow/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	m := repomanager.NewMemoryRepositoryManager()

	current, err := Load(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, "1", current)

	types, _ := m.DocumentTypes().List(ctx)
	assert.Len(t, types, 9)

	users, _ := m.Users().List(ctx)
	require.Len(t, users, 5)
	assert.Equal(t, models.RoleAdministrator, users[0].Role)

	tpls, _ := m.Templates().List(ctx)
	require.Len(t, tpls, 2)
	for _, tpl := range tpls {
		assert.Len(t, tpl.Steps, 3)
	}

	docs, _ := m.Documents().List(ctx)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"QM-001", "SOP-QA-101", "WI-PRD-205"},
		[]string{docs[0].Number, docs[1].Number, docs[2].Number})

	logs, _ := m.AuditLogs().List(ctx)
	assert.Empty(t, logs, "seeding is not audited")
}

func TestTemplates_ApplyToDocumentKinds(t *testing.T) {
	tpls := Templates()
	assert.True(t, tpls[0].AppliesTo(models.KindProcedure))
	assert.True(t, tpls[0].AppliesTo(models.KindWorkInstruction))
	assert.False(t, tpls[0].AppliesTo(models.KindPolicy))
	assert.True(t, tpls[1].AppliesTo(models.KindManual))
}
