package models

import (
	"slices"
	"time"
)

// Change is one field-level difference recorded by an update.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// AuditLog is an immutable audit trail entry. Document number and title are
// snapshots taken when the entry was written.
type AuditLog struct {
	ID             string               `json:"id"`
	Timestamp      time.Time            `json:"timestamp"`
	UserID         string               `json:"userId"`
	UserName       string               `json:"userName"`
	Action         string               `json:"action"`
	DocumentID     string               `json:"documentId"`
	DocumentNumber string               `json:"documentNumber"`
	DocumentTitle  string               `json:"documentTitle"`
	Changes        map[string]Change    `json:"changes,omitempty"`
	IPAddress      string               `json:"ipAddress"`
	UserAgent      string               `json:"userAgent"`
	Signature      *ElectronicSignature `json:"electronicSignature,omitempty"`
}

func (a *AuditLog) Clone() *AuditLog {
	if a == nil {
		return nil
	}
	c := *a
	if a.Changes != nil {
		c.Changes = make(map[string]Change, len(a.Changes))
		for k, ch := range a.Changes {
			c.Changes[k] = Change{Old: cloneValue(ch.Old), New: cloneValue(ch.New)}
		}
	}
	c.Signature = a.Signature.Clone()
	return &c
}

// cloneValue copies the reference-typed values a change map can hold.
func cloneValue(v any) any {
	if s, ok := v.([]string); ok {
		return slices.Clone(s)
	}
	return v
}

// Audit action labels.
const (
	ActionDocumentCreated      = "Document Created"
	ActionDocumentUpdated      = "Document Updated"
	ActionDocumentDeleted      = "Document Deleted"
	ActionDocumentSigned       = "Document Signed"
	ActionWorkflowInitiated    = "Workflow Initiated"
	ActionWorkflowStepApproved = "Workflow Step Approved"
)
