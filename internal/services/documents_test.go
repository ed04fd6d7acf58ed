package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSOP() *models.Document {
	return &models.Document{
		Title:     "Deviation Handling",
		Number:    "SOP-QA-120",
		Version:   "1.0",
		Type:      models.KindProcedure,
		Category:  "Quality Assurance",
		Security:  models.SecurityInternal,
		Status:    models.StatusDraft,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy: "Sarah Johnson",
	}
}

func TestDocumentService_Create(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	in := newSOP()
	got, err := st.Documents.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)

	stored, err := st.Documents.Get(ctx, got.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(in, stored, cmpopts.IgnoreFields(models.Document{}, "ID")); diff != "" {
		t.Errorf("stored document mismatch (-want +got):\n%s", diff)
	}

	logs, err := st.Audit.List(ctx, AuditFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionDocumentCreated, logs[0].Action)
	assert.Equal(t, got.ID, logs[0].DocumentID)
	assert.Equal(t, "SOP-QA-120", logs[0].DocumentNumber)
	assert.Equal(t, "Deviation Handling", logs[0].DocumentTitle)
	assert.Equal(t, "1", logs[0].UserID)
	assert.Equal(t, "System Administrator", logs[0].UserName)
	assert.Equal(t, "192.168.1.1", logs[0].IPAddress)
	assert.Equal(t, "docflow-cli", logs[0].UserAgent)
}

func TestDocumentService_CreateIgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	in := newSOP()
	in.ID = "2"
	got, err := st.Documents.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, "2", got.ID)

	seeded, err := st.Documents.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "SOP-QA-101", seeded.Number)
}

func TestDocumentService_CreateWithoutCurrentUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)
	require.NoError(t, st.Users.SetCurrentUser(ctx, ""))

	got, err := st.Documents.Create(ctx, newSOP())
	require.NoError(t, err)

	_, err = st.Documents.Get(ctx, got.ID)
	require.NoError(t, err)

	logs, _ := st.Audit.List(ctx, AuditFilter{})
	assert.Empty(t, logs)
}

func TestDocumentService_Update(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	before, err := st.Documents.Get(ctx, "3")
	require.NoError(t, err)

	status := models.StatusApproved
	version := "1.0" // unchanged value, not a change
	got, err := st.Documents.Update(ctx, "3", models.DocumentUpdate{Status: &status, Version: &version})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)

	after, _ := st.Documents.Get(ctx, "3")
	want := before.Clone()
	want.Status = models.StatusApproved
	if diff := cmp.Diff(want, after); diff != "" {
		t.Errorf("only status may change (-want +got):\n%s", diff)
	}

	logs, _ := st.Audit.List(ctx, AuditFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionDocumentUpdated, logs[0].Action)
	assert.Equal(t, map[string]models.Change{
		"status": {Old: models.StatusUnderReview, New: models.StatusApproved},
	}, logs[0].Changes)
}

func TestDocumentService_UpdateWithNoDifferencesIsStillAudited(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	title := "Batch Record Review Procedure"
	_, err := st.Documents.Update(ctx, "2", models.DocumentUpdate{Title: &title})
	require.NoError(t, err)

	logs, _ := st.Audit.List(ctx, AuditFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionDocumentUpdated, logs[0].Action)
	assert.NotNil(t, logs[0].Changes)
	assert.Empty(t, logs[0].Changes)
}

func TestDocumentService_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	title := "x"
	_, err := st.Documents.Update(ctx, "nope", models.DocumentUpdate{Title: &title})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	logs, _ := st.Audit.List(ctx, AuditFilter{})
	assert.Empty(t, logs)
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	require.NoError(t, st.Documents.Delete(ctx, "1"))

	_, err := st.Documents.Get(ctx, "1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	logs, _ := st.Audit.List(ctx, AuditFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionDocumentDeleted, logs[0].Action)
	assert.Equal(t, "QM-001", logs[0].DocumentNumber)
	assert.Equal(t, "Good Manufacturing Practice Guidelines", logs[0].DocumentTitle)

	err = st.Documents.Delete(ctx, "1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	logs, _ = st.Audit.List(ctx, AuditFilter{})
	assert.Len(t, logs, 1)
}

func TestDocumentService_DeleteReferencedByWorkflow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	wf, err := st.Workflows.Initiate(ctx, "2", "1")
	require.NoError(t, err)
	require.NoError(t, st.Documents.Delete(ctx, "2"))

	got, err := st.Workflows.Get(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, "2", got.DocumentID, "dangling reference is kept")
	assert.Equal(t, "SOP-QA-101", got.DocumentNumber)
}

func TestDocumentService_GetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	a, err := st.Documents.Get(ctx, "2")
	require.NoError(t, err)
	b, err := st.Documents.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	a.Title = "local edit"
	c, _ := st.Documents.Get(ctx, "2")
	assert.Equal(t, b, c, "returned values are copies")
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	tests := []struct {
		name   string
		filter DocumentFilter
		want   []string
	}{
		{"all", DocumentFilter{}, []string{"QM-001", "SOP-QA-101", "WI-PRD-205"}},
		{"search title case-insensitive", DocumentFilter{Search: "batch record"}, []string{"SOP-QA-101"}},
		{"search number", DocumentFilter{Search: "wi-prd"}, []string{"WI-PRD-205"}},
		{"by type", DocumentFilter{Type: models.KindManual}, []string{"QM-001"}},
		{"by status", DocumentFilter{Status: models.StatusEffective}, []string{"QM-001", "SOP-QA-101"}},
		{"combined", DocumentFilter{Search: "qa", Status: models.StatusUnderReview}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := st.Documents.List(ctx, tt.filter)
			require.NoError(t, err)
			got := []string{}
			for _, d := range docs {
				got = append(got, d.Number)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentService_Sign(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	sig, err := st.Signatures.Capture(ctx, "Approved for release", "annual review", "secret")
	require.NoError(t, err)

	entry, err := st.Documents.Sign(ctx, "1", sig, "Document Signed")
	require.NoError(t, err)
	assert.Equal(t, "Document Signed", entry.Action)
	assert.Equal(t, "QM-001", entry.DocumentNumber)
	require.NotNil(t, entry.Signature)
	assert.Equal(t, "System Administrator", entry.Signature.SignedBy)

	doc, _ := st.Documents.Get(ctx, "1")
	assert.Equal(t, models.StatusEffective, doc.Status, "signing does not modify the document")

	_, err = st.Documents.Sign(ctx, "missing", sig, "Document Signed")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, st.Users.SetCurrentUser(ctx, ""))
	_, err = st.Documents.Sign(ctx, "1", sig, "Document Signed")
	assert.ErrorIs(t, err, common.ErrNoCurrentUser)

	logs, _ := st.Audit.List(ctx, AuditFilter{})
	assert.Len(t, logs, 1)
}
