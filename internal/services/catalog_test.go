package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	added, err := st.Catalog.AddDocumentType(ctx, &models.DocumentType{Type: "Protocol", Description: "Validation protocols"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	types, err := st.Catalog.DocumentTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 10)
	assert.Equal(t, models.DocumentKind("Protocol"), types[9].Type)
}

func TestSignatureService_Capture(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)
	signIn(t, st, "5")

	sig, err := st.Signatures.Capture(ctx, "Final Approval", "periodic review", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, sig.ID)
	assert.Equal(t, "Emily Davis", sig.SignedBy)
	assert.Equal(t, models.RoleApprover, sig.SignedByRole)
	assert.Equal(t, "Final Approval", sig.Meaning)
	assert.Equal(t, "periodic review", sig.Reason)
	assert.Equal(t, "hunter2", sig.Password, "kept as captured")
	assert.True(t, sig.SignedAt.After(baseTime))
	assert.NotContains(t, sig.String(), "hunter2")

	signIn(t, st, "")
	_, err = st.Signatures.Capture(ctx, "x", "", "")
	assert.ErrorIs(t, err, common.ErrNoCurrentUser)
}
