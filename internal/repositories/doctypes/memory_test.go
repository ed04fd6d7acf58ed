package doctypes

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateList(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.DocumentType{ID: "1", Type: models.KindManual}))
	require.NoError(t, r.Create(ctx, &models.DocumentType{ID: "2", Type: models.KindPolicy}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.KindManual, list[0].Type)
	assert.Equal(t, models.KindPolicy, list[1].Type)
}
