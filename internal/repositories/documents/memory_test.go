package documents

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.Document{ID: "1", Title: "Quality Manual"}))
	require.NoError(t, r.Create(ctx, &models.Document{ID: "2", Title: "Cleaning SOP"}))

	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Quality Manual", got.Title)

	got.Title = "Edited"
	require.NoError(t, r.Save(ctx, got))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Edited", list[0].Title)
	assert.Equal(t, "2", list[1].ID)

	del, err := r.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Edited", del.Title)

	list, _ = r.List(ctx)
	assert.Len(t, list, 1)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.Get(ctx, "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = r.Save(ctx, &models.Document{ID: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.Delete(ctx, "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_NoAliasing(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	in := &models.Document{ID: "1", Attachments: []string{"a.pdf"}}
	require.NoError(t, r.Create(ctx, in))
	in.Attachments[0] = "changed.pdf"

	got, _ := r.Get(ctx, "1")
	assert.Equal(t, []string{"a.pdf"}, got.Attachments)
}
