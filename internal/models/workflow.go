package models

import (
	"slices"
	"time"
)

// WorkflowStatus is shared by workflows and their steps. StepRejected is
// part of the vocabulary but no operation produces it.
type WorkflowStatus string

const (
	StepPending    WorkflowStatus = "Pending"
	StepInProgress WorkflowStatus = "In Progress"
	StepApproved   WorkflowStatus = "Approved"
	StepRejected   WorkflowStatus = "Rejected"
)

// StepDefinition is one template step.
type StepDefinition struct {
	Number int    `json:"stepNumber"`
	Name   string `json:"stepName"`
	Role   Role   `json:"assignedRole"`
}

// WorkflowTemplate is a reusable ordered approval sequence.
type WorkflowTemplate struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	ApplicableTypes []DocumentKind   `json:"applicableDocumentTypes"`
	Steps           []StepDefinition `json:"steps"`
}

func (t *WorkflowTemplate) Clone() *WorkflowTemplate {
	if t == nil {
		return nil
	}
	c := *t
	c.ApplicableTypes = slices.Clone(t.ApplicableTypes)
	c.Steps = slices.Clone(t.Steps)
	return &c
}

// AppliesTo reports whether documents of kind k may run this template.
func (t *WorkflowTemplate) AppliesTo(k DocumentKind) bool {
	return slices.Contains(t.ApplicableTypes, k)
}

type WorkflowStep struct {
	ID           string               `json:"id"`
	Number       int                  `json:"stepNumber"`
	Name         string               `json:"stepName"`
	AssignedRole Role                 `json:"assignedRole"`
	AssignedUser string               `json:"assignedUser,omitempty"`
	Status       WorkflowStatus       `json:"status"`
	CompletedBy  string               `json:"completedBy,omitempty"`
	CompletedAt  time.Time            `json:"completedAt"`
	Comments     string               `json:"comments,omitempty"`
	Signature    *ElectronicSignature `json:"signature,omitempty"`
}

// Workflow is a running approval sequence bound to one document. Document
// number and title are snapshots taken at initiation.
type Workflow struct {
	ID             string         `json:"id"`
	Name           string         `json:"workflowName"`
	DocumentID     string         `json:"documentId"`
	DocumentNumber string         `json:"documentNumber"`
	DocumentTitle  string         `json:"documentTitle"`
	InitiatedBy    string         `json:"initiatedBy"`
	InitiatedAt    time.Time      `json:"initiatedAt"`
	CurrentStep    int            `json:"currentStep"`
	Status         WorkflowStatus `json:"status"`
	Steps          []WorkflowStep `json:"steps"`
	CompletedAt    time.Time      `json:"completedAt"`
}

func (w *Workflow) Clone() *Workflow {
	if w == nil {
		return nil
	}
	c := *w
	c.Steps = make([]WorkflowStep, len(w.Steps))
	for i, s := range w.Steps {
		s.Signature = s.Signature.Clone()
		c.Steps[i] = s
	}
	return &c
}

// Step returns the step with the given id.
func (w *Workflow) Step(id string) (*WorkflowStep, bool) {
	for i := range w.Steps {
		if w.Steps[i].ID == id {
			return &w.Steps[i], true
		}
	}
	return nil, false
}

// Current returns the step whose number equals CurrentStep.
func (w *Workflow) Current() (*WorkflowStep, bool) {
	for i := range w.Steps {
		if w.Steps[i].Number == w.CurrentStep {
			return &w.Steps[i], true
		}
	}
	return nil, false
}
