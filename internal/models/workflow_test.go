package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWorkflow() *Workflow {
	return &Workflow{
		ID:          "w-1",
		CurrentStep: 2,
		Steps: []WorkflowStep{
			{ID: "s-1", Number: 1, Name: "Technical Review", Status: StepApproved,
				Signature: &ElectronicSignature{ID: "sig-1", SignedBy: "Michael Brown"}},
			{ID: "s-2", Number: 2, Name: "QA Review", Status: StepPending},
		},
	}
}

func TestWorkflow_Clone_IsDeep(t *testing.T) {
	w := sampleWorkflow()
	c := w.Clone()

	c.Steps[0].Status = StepPending
	c.Steps[0].Signature.SignedBy = "someone else"

	assert.Equal(t, StepApproved, w.Steps[0].Status)
	assert.Equal(t, "Michael Brown", w.Steps[0].Signature.SignedBy)
}

func TestWorkflow_StepAndCurrent(t *testing.T) {
	w := sampleWorkflow()

	s, ok := w.Step("s-2")
	require.True(t, ok)
	assert.Equal(t, "QA Review", s.Name)

	_, ok = w.Step("missing")
	assert.False(t, ok)

	cur, ok := w.Current()
	require.True(t, ok)
	assert.Equal(t, "s-2", cur.ID)

	w.CurrentStep = 9
	_, ok = w.Current()
	assert.False(t, ok)
}

func TestWorkflowTemplate_AppliesTo(t *testing.T) {
	tpl := &WorkflowTemplate{ApplicableTypes: []DocumentKind{KindProcedure, KindWorkInstruction}}
	assert.True(t, tpl.AppliesTo(KindProcedure))
	assert.False(t, tpl.AppliesTo(KindPolicy))
}

func TestElectronicSignature_NeverExposesPassword(t *testing.T) {
	sig := ElectronicSignature{
		ID:           "sig-1",
		SignedBy:     "Emily Davis",
		SignedByRole: RoleApprover,
		SignedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Meaning:      "Final Approval",
		Reason:       "meets requirements",
		Password:     "hunter2",
	}

	b, err := json.Marshal(&AuditLog{ID: "a-1", Signature: &sig})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hunter2")
	assert.Contains(t, string(b), `"signedBy":"Emily Davis"`)

	assert.NotContains(t, sig.String(), "hunter2")
	assert.Contains(t, sig.String(), "meets requirements")
}

func TestAuditLog_Clone_IsDeep(t *testing.T) {
	a := &AuditLog{
		ID:        "a-1",
		Changes:   map[string]Change{"status": {Old: StatusDraft, New: StatusEffective}},
		Signature: &ElectronicSignature{ID: "sig"},
	}
	c := a.Clone()
	c.Changes["title"] = Change{Old: "a", New: "b"}
	c.Signature.ID = "other"

	assert.Len(t, a.Changes, 1)
	assert.Equal(t, "sig", a.Signature.ID)
}

func TestAuditLog_Clone_CopiesAttachmentChanges(t *testing.T) {
	d := &Document{Attachments: []string{"a.pdf"}}
	changes := DocumentUpdate{Attachments: &[]string{"b.pdf"}}.Apply(d)
	a := &AuditLog{ID: "a-1", Changes: changes}

	c := a.Clone()
	c.Changes["attachments"].Old.([]string)[0] = "x"
	c.Changes["attachments"].New.([]string)[0] = "y"

	assert.Equal(t, []string{"a.pdf"}, a.Changes["attachments"].Old)
	assert.Equal(t, []string{"b.pdf"}, a.Changes["attachments"].New)
}
