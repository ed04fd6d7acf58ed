// Package models defines the docflow domain records held by the in-memory
// repositories.
package models

import (
	"slices"
	"time"
)

// DocumentKind classifies a controlled document.
type DocumentKind string

const (
	KindManual          DocumentKind = "Manual"
	KindProcedure       DocumentKind = "Procedure"
	KindProcess         DocumentKind = "Process"
	KindWorkInstruction DocumentKind = "Work Instruction"
	KindPolicy          DocumentKind = "Policy"
	KindChecklist       DocumentKind = "Checklist"
	KindFormat          DocumentKind = "Format"
	KindTemplate        DocumentKind = "Template"
	KindMasters         DocumentKind = "Masters"
)

// Security is the confidentiality classification of a document.
type Security string

const (
	SecurityConfidential Security = "Confidential"
	SecurityInternal     Security = "Internal"
	SecurityRestricted   Security = "Restricted"
	SecurityPublic       Security = "Public"
)

// DocumentStatus is the lifecycle status. Any status may follow any other.
type DocumentStatus string

const (
	StatusDraft       DocumentStatus = "Draft"
	StatusUnderReview DocumentStatus = "Under Review"
	StatusApproved    DocumentStatus = "Approved"
	StatusEffective   DocumentStatus = "Effective"
	StatusObsolete    DocumentStatus = "Obsolete"
	StatusRetired     DocumentStatus = "Retired"
)

// DocumentStatuses lists the statuses in lifecycle order.
var DocumentStatuses = []DocumentStatus{
	StatusDraft, StatusUnderReview, StatusApproved, StatusEffective, StatusObsolete, StatusRetired,
}

// Document is a controlled record. Zero dates mean "not set".
type Document struct {
	ID            string         `json:"id"`
	Title         string         `json:"documentTitle"`
	Number        string         `json:"documentNumber"`
	Version       string         `json:"documentVersion"`
	Type          DocumentKind   `json:"documentType"`
	Category      string         `json:"documentCategory"`
	Security      Security       `json:"documentSecurity"`
	Status        DocumentStatus `json:"status"`
	CreatedAt     time.Time      `json:"dateCreated"`
	CreatedBy     string         `json:"createdBy"`
	IssuedAt      time.Time      `json:"dateOfIssue"`
	IssuedBy      string         `json:"issuedBy,omitempty"`
	IssuerRole    Role           `json:"issuerRole,omitempty"`
	EffectiveFrom time.Time      `json:"effectiveFromDate"`
	NextIssue     time.Time      `json:"dateOfNextIssue"`
	Content       string         `json:"content,omitempty"`
	Attachments   []string       `json:"attachments,omitempty"`
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Attachments = slices.Clone(d.Attachments)
	return &c
}

// DocumentUpdate is a partial update: nil fields are left untouched.
type DocumentUpdate struct {
	Title         *string
	Number        *string
	Version       *string
	Type          *DocumentKind
	Category      *string
	Security      *Security
	Status        *DocumentStatus
	CreatedAt     *time.Time
	CreatedBy     *string
	IssuedAt      *time.Time
	IssuedBy      *string
	IssuerRole    *Role
	EffectiveFrom *time.Time
	NextIssue     *time.Time
	Content       *string
	Attachments   *[]string
}

// Apply merges u into d and returns the changes it made, keyed by the
// document's JSON field names. A present field equal to the stored value is
// not a change.
func (u DocumentUpdate) Apply(d *Document) map[string]Change {
	changes := make(map[string]Change)

	merge(changes, "documentTitle", &d.Title, u.Title)
	merge(changes, "documentNumber", &d.Number, u.Number)
	merge(changes, "documentVersion", &d.Version, u.Version)
	merge(changes, "documentType", &d.Type, u.Type)
	merge(changes, "documentCategory", &d.Category, u.Category)
	merge(changes, "documentSecurity", &d.Security, u.Security)
	merge(changes, "status", &d.Status, u.Status)
	mergeTime(changes, "dateCreated", &d.CreatedAt, u.CreatedAt)
	merge(changes, "createdBy", &d.CreatedBy, u.CreatedBy)
	mergeTime(changes, "dateOfIssue", &d.IssuedAt, u.IssuedAt)
	merge(changes, "issuedBy", &d.IssuedBy, u.IssuedBy)
	merge(changes, "issuerRole", &d.IssuerRole, u.IssuerRole)
	mergeTime(changes, "effectiveFromDate", &d.EffectiveFrom, u.EffectiveFrom)
	mergeTime(changes, "dateOfNextIssue", &d.NextIssue, u.NextIssue)
	merge(changes, "content", &d.Content, u.Content)

	if u.Attachments != nil {
		if !slices.Equal(d.Attachments, *u.Attachments) {
			changes["attachments"] = Change{Old: slices.Clone(d.Attachments), New: slices.Clone(*u.Attachments)}
		}
		d.Attachments = slices.Clone(*u.Attachments)
	}

	return changes
}

func merge[T comparable](changes map[string]Change, key string, dst *T, v *T) {
	if v == nil {
		return
	}
	if *dst != *v {
		changes[key] = Change{Old: *dst, New: *v}
	}
	*dst = *v
}

func mergeTime(changes map[string]Change, key string, dst *time.Time, v *time.Time) {
	if v == nil {
		return
	}
	if !dst.Equal(*v) {
		changes[key] = Change{Old: *dst, New: *v}
	}
	*dst = *v
}

// DocumentType is a catalog entry describing a document kind.
type DocumentType struct {
	ID          string       `json:"id"`
	Type        DocumentKind `json:"type"`
	Description string       `json:"description"`
}

func (t *DocumentType) Clone() *DocumentType {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
