package workflows

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

	wf := &models.Workflow{
		ID:          "w1",
		CurrentStep: 1,
		Status:      models.StepInProgress,
		Steps: []models.WorkflowStep{
			{ID: "s1", Number: 1, Status: models.StepInProgress},
			{ID: "s2", Number: 2, Status: models.StepPending},
		},
	}
	require.NoError(t, r.Create(ctx, wf))

	got, err := r.Get(ctx, "w1")
	require.NoError(t, err)
	got.Steps[0].Status = models.StepApproved
	got.CurrentStep = 2

	stored, _ := r.Get(ctx, "w1")
	assert.Equal(t, models.StepInProgress, stored.Steps[0].Status, "get must not alias")

	require.NoError(t, r.Save(ctx, got))
	stored, _ = r.Get(ctx, "w1")
	assert.Equal(t, 2, stored.CurrentStep)
	assert.Equal(t, models.StepApproved, stored.Steps[0].Status)

	_, err = r.Get(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.Save(ctx, &models.Workflow{ID: "nope"}), common.ErrorNotFound)

	list, _ := r.List(ctx)
	assert.Len(t, list, 1)
}
