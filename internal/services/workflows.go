package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
)

// WorkflowFilter narrows List. Empty fields match everything.
type WorkflowFilter struct {
	Status     models.WorkflowStatus
	DocumentID string
}

// WorkflowService runs approval workflows built from templates.
//
// In lenient mode (the default) the engine trusts its caller: it does not
// check that the template applies to the document type, that the approver
// holds the step's role, or that the step is the current one. Strict mode
// enforces all three.
type WorkflowService struct {
	store *Store
}

// Initiate starts a workflow for the document from the template. Every step
// starts Pending and the workflow points at step 1.
func (s *WorkflowService) Initiate(ctx context.Context, documentID, templateID string) (*models.Workflow, error) {
	st := s.store
	var wf *models.Workflow

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		u := st.currentUser(ctx)
		if u == nil {
			return common.ErrNoCurrentUser
		}
		doc, err := st.repos.Documents().Get(ctx, documentID)
		if err != nil {
			return err
		}
		tpl, err := st.repos.Templates().Get(ctx, templateID)
		if err != nil {
			return err
		}
		if st.strict && !tpl.AppliesTo(doc.Type) {
			return fmt.Errorf("template %q does not apply to %s documents: %w", tpl.Name, doc.Type, common.ErrInvalidState)
		}

		wf = &models.Workflow{
			ID:             st.newID(),
			Name:           tpl.Name,
			DocumentID:     doc.ID,
			DocumentNumber: doc.Number,
			DocumentTitle:  doc.Title,
			InitiatedBy:    u.Name,
			InitiatedAt:    st.now(),
			CurrentStep:    1,
			Status:         models.StepInProgress,
			Steps:          make([]models.WorkflowStep, 0, len(tpl.Steps)),
		}
		for _, def := range tpl.Steps {
			wf.Steps = append(wf.Steps, models.WorkflowStep{
				ID:           st.newID(),
				Number:       def.Number,
				Name:         def.Name,
				AssignedRole: def.Role,
				Status:       models.StepPending,
			})
		}

		if err := st.repos.Workflows().Create(ctx, wf); err != nil {
			return fmt.Errorf("error creating workflow: %w", err)
		}

		entry := st.newAuditEntry(u, models.ActionWorkflowInitiated+": "+wf.Name, wf.DocumentID, wf.DocumentNumber, wf.DocumentTitle)
		if err := st.repos.AuditLogs().Append(ctx, entry); err != nil {
			return fmt.Errorf("error appending audit entry: %w", err)
		}

		if step, ok := wf.Current(); ok {
			return st.Notifications.notifyRole(ctx, step.AssignedRole, wf, models.NotificationReview,
				"Review required", fmt.Sprintf("%s: %q awaits %s", wf.DocumentNumber, step.Name, step.AssignedRole))
		}
		return nil
	})
	if err != nil {
		st.log.Warn(ctx, "workflow initiation rejected", "document", documentID, "template", templateID, "error", err)
		return nil, err
	}

	st.log.Info(ctx, "workflow initiated", "id", wf.ID, "document", wf.DocumentID, "steps", len(wf.Steps))
	return wf.Clone(), nil
}

// ApproveStep marks the step Approved on behalf of the current user and
// advances the workflow to the first step still Pending, in list order. The
// workflow becomes Approved once every step is.
func (s *WorkflowService) ApproveStep(ctx context.Context, workflowID, stepID string, sig *models.ElectronicSignature, comments string) (*models.Workflow, error) {
	st := s.store
	var wf *models.Workflow

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		u := st.currentUser(ctx)
		if u == nil {
			return common.ErrNoCurrentUser
		}
		var err error
		wf, err = st.repos.Workflows().Get(ctx, workflowID)
		if err != nil {
			return err
		}
		step, ok := wf.Step(stepID)
		if !ok {
			return fmt.Errorf("step %s: %w", stepID, common.ErrorNotFound)
		}

		if st.strict {
			if u.Role != step.AssignedRole {
				return fmt.Errorf("%s may not approve a %s step: %w", u.Role, step.AssignedRole, common.ErrForbidden)
			}
			if step.Number != wf.CurrentStep || step.Status != models.StepPending {
				return fmt.Errorf("step %q is not awaiting approval: %w", step.Name, common.ErrInvalidState)
			}
		}

		now := st.now()
		step.Status = models.StepApproved
		step.CompletedBy = u.Name
		step.CompletedAt = now
		step.Comments = comments
		step.Signature = sig.Clone()
		stepName := step.Name

		prev := wf.CurrentStep
		advance(wf, now)

		if err := st.repos.Workflows().Save(ctx, wf); err != nil {
			return fmt.Errorf("error saving workflow: %w", err)
		}

		entry := st.newAuditEntry(u, models.ActionWorkflowStepApproved+": "+stepName, wf.DocumentID, wf.DocumentNumber, wf.DocumentTitle)
		entry.Signature = sig.Clone()
		if err := st.repos.AuditLogs().Append(ctx, entry); err != nil {
			return fmt.Errorf("error appending audit entry: %w", err)
		}

		switch {
		case wf.Status == models.StepApproved:
			return st.Notifications.notifyInitiator(ctx, wf)
		case wf.CurrentStep != prev:
			next, _ := wf.Current()
			return st.Notifications.notifyRole(ctx, next.AssignedRole, wf, models.NotificationApproval,
				"Approval required", fmt.Sprintf("%s: %q awaits %s", wf.DocumentNumber, next.Name, next.AssignedRole))
		}
		return nil
	})
	if err != nil {
		st.log.Warn(ctx, "step approval rejected", "workflow", workflowID, "step", stepID, "error", err)
		return nil, err
	}

	st.log.Info(ctx, "workflow step approved", "workflow", wf.ID, "step", stepID, "status", wf.Status)
	return wf.Clone(), nil
}

// advance recomputes CurrentStep, Status and CompletedAt from the steps.
func advance(wf *models.Workflow, now time.Time) {
	allApproved := true
	var next *models.WorkflowStep
	for i := range wf.Steps {
		if wf.Steps[i].Status != models.StepApproved {
			allApproved = false
		}
		if next == nil && wf.Steps[i].Status == models.StepPending {
			next = &wf.Steps[i]
		}
	}

	if next != nil {
		wf.CurrentStep = next.Number
	}
	if allApproved {
		wf.Status = models.StepApproved
		wf.CompletedAt = now
	} else {
		wf.Status = models.StepInProgress
		wf.CompletedAt = time.Time{}
	}
}

func (s *WorkflowService) Get(ctx context.Context, id string) (*models.Workflow, error) {
	return s.store.repos.Workflows().Get(ctx, id)
}

func (s *WorkflowService) List(ctx context.Context, f WorkflowFilter) ([]*models.Workflow, error) {
	all, err := s.store.repos.Workflows().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Workflow, 0, len(all))
	for _, w := range all {
		if f.Status != "" && w.Status != f.Status {
			continue
		}
		if f.DocumentID != "" && w.DocumentID != f.DocumentID {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

// ApplicableTemplates lists the templates whose applicable types include the
// document's type.
func (s *WorkflowService) ApplicableTemplates(ctx context.Context, documentID string) ([]*models.WorkflowTemplate, error) {
	doc, err := s.store.repos.Documents().Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	all, err := s.store.repos.Templates().List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.WorkflowTemplate
	for _, t := range all {
		if t.AppliesTo(doc.Type) {
			out = append(out, t)
		}
	}
	return out, nil
}

// AddTemplate stores a copy of t under a fresh id. Running workflows keep
// their own step copies and are not affected by later templates.
func (s *WorkflowService) AddTemplate(ctx context.Context, t *models.WorkflowTemplate) (*models.WorkflowTemplate, error) {
	st := s.store
	c := t.Clone()
	c.ID = st.newID()
	if err := st.repos.Templates().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("error creating template: %w", err)
	}
	st.log.Info(ctx, "workflow template added", "id", c.ID, "name", c.Name)
	return c, nil
}

func (s *WorkflowService) Templates(ctx context.Context) ([]*models.WorkflowTemplate, error) {
	return s.store.repos.Templates().List(ctx)
}
