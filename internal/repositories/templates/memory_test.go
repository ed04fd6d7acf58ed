package templates

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	tpl := &models.WorkflowTemplate{
		ID:              "1",
		Name:            "Standard SOP Review",
		ApplicableTypes: []models.DocumentKind{models.KindProcedure},
		Steps:           []models.StepDefinition{{Number: 1, Name: "Review", Role: models.RoleReviewer}},
	}
	require.NoError(t, r.Create(ctx, tpl))
	tpl.Steps[0].Name = "mutated"

	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Review", got.Steps[0].Name)

	_, err = r.Get(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
