package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/dmitrijs2005/docflow/internal/services"
)

func (a *App) Templates(ctx context.Context) error {
	tpls, err := a.store.Workflows.Templates(ctx)
	if err != nil {
		return a.fail(err)
	}
	for _, t := range tpls {
		kinds := make([]string, 0, len(t.ApplicableTypes))
		for _, k := range t.ApplicableTypes {
			kinds = append(kinds, string(k))
		}
		a.printf("%s  %s\n", t.ID, t.Name)
		a.field("Description", t.Description)
		a.field("Applies to", strings.Join(kinds, ", "))
		for _, s := range t.Steps {
			a.printf("    %d. %s (%s)\n", s.Number, s.Name, s.Role)
		}
	}
	return nil
}

func (a *App) AddTemplate(ctx context.Context) error {
	var f templateForm
	var err error

	if f.Name, err = GetSimpleText(a.reader, "Template name", a.out); err != nil {
		return a.fail(err)
	}
	if f.Description, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
		return a.fail(err)
	}
	if f.ApplicableTypes, err = GetList(a.reader, "Applicable document types (comma separated)", a.out); err != nil {
		return a.fail(err)
	}
	for n := 1; ; n++ {
		name, err := GetSimpleText(a.reader, fmt.Sprintf("Step %d name (empty to finish)", n), a.out)
		if err != nil {
			return a.fail(err)
		}
		if name == "" {
			break
		}
		role, err := GetSimpleText(a.reader, fmt.Sprintf("Step %d role", n), a.out)
		if err != nil {
			return a.fail(err)
		}
		f.Steps = append(f.Steps, stepForm{Name: name, Role: role})
	}

	if err := validate.Struct(f); err != nil {
		return a.fail(describe(err))
	}
	types, err := a.store.Catalog.DocumentTypes(ctx)
	if err != nil {
		return a.fail(err)
	}
	for _, k := range f.ApplicableTypes {
		if !slices.ContainsFunc(types, func(t *models.DocumentType) bool { return string(t.Type) == k }) {
			return a.fail(fmt.Errorf("unknown document type %q (see 'types')", k))
		}
	}

	t, err := a.store.Workflows.AddTemplate(ctx, f.template())
	if err != nil {
		return a.fail(err)
	}
	a.printf("Added template %s (%s)\n", t.ID, t.Name)
	return nil
}

func (a *App) Workflows(ctx context.Context) error {
	wfs, err := a.store.Workflows.List(ctx, services.WorkflowFilter{})
	if err != nil {
		return a.fail(err)
	}
	if len(wfs) == 0 {
		a.println("No workflows.")
		return nil
	}
	rows := make([][]string, 0, len(wfs))
	for _, w := range wfs {
		rows = append(rows, []string{
			w.ID, w.Name, w.DocumentNumber, string(w.Status),
			fmt.Sprintf("%d/%d", w.CurrentStep, len(w.Steps)), w.InitiatedBy, timestamp(w.InitiatedAt),
		})
	}
	a.table([]string{"ID", "WORKFLOW", "DOCUMENT", "STATUS", "STEP", "INITIATED BY", "INITIATED AT"}, rows)
	return nil
}

func (a *App) Workflow(ctx context.Context, id string) error {
	w, err := a.store.Workflows.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}

	a.printf("%s  %s\n", w.ID, w.Name)
	a.field("Document", fmt.Sprintf("%s %s", w.DocumentNumber, w.DocumentTitle))
	a.field("Status", string(w.Status))
	a.field("Current step", fmt.Sprint(w.CurrentStep))
	a.field("Initiated", fmt.Sprintf("%s by %s", timestamp(w.InitiatedAt), w.InitiatedBy))
	a.field("Completed", timestamp(w.CompletedAt))

	rows := make([][]string, 0, len(w.Steps))
	for _, s := range w.Steps {
		marker := ""
		if s.Number == w.CurrentStep && s.Status == models.StepPending {
			marker = "*"
		}
		rows = append(rows, []string{
			marker + fmt.Sprint(s.Number), s.ID, s.Name, string(s.AssignedRole), string(s.Status),
			orDash(s.CompletedBy), orDash(timestamp(s.CompletedAt)), orDash(s.Comments),
		})
	}
	a.table([]string{"#", "STEP ID", "NAME", "ROLE", "STATUS", "COMPLETED BY", "COMPLETED AT", "COMMENTS"}, rows)
	for _, s := range w.Steps {
		if s.Signature != nil {
			a.printf("  step %d signature: %s\n", s.Number, s.Signature)
		}
	}
	return nil
}

func (a *App) Initiate(ctx context.Context) error {
	docID, err := GetSimpleText(a.reader, "Document ID", a.out)
	if err != nil {
		return a.fail(err)
	}
	tpls, err := a.store.Workflows.ApplicableTemplates(ctx, docID)
	if err != nil {
		return a.fail(err)
	}
	if len(tpls) == 0 {
		a.println("No applicable workflow templates for this document type")
		return nil
	}

	for _, t := range tpls {
		a.printf("  %s  %s (%d steps)\n", t.ID, t.Name, len(t.Steps))
	}
	tplID, err := GetDefaultText(a.reader, "Template ID", tpls[0].ID, a.out)
	if err != nil {
		return a.fail(err)
	}

	w, err := a.store.Workflows.Initiate(ctx, docID, tplID)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Initiated workflow %s (%s) for %s\n", w.ID, w.Name, w.DocumentNumber)
	return nil
}

func (a *App) Approve(ctx context.Context, workflowID, stepID string) error {
	w, err := a.store.Workflows.Get(ctx, workflowID)
	if err != nil {
		return a.fail(err)
	}
	step, ok := w.Step(stepID)
	if !ok {
		return a.fail(fmt.Errorf("workflow %s has no step %s", workflowID, stepID))
	}
	u, err := a.store.Users.CurrentUser(ctx)
	if err != nil {
		return a.fail(err)
	}

	if u.Role != step.AssignedRole {
		ok, err := Confirm(a.reader, fmt.Sprintf("Step %q is assigned to %s, you are %s. Continue?", step.Name, step.AssignedRole, u.Role), a.out)
		if err != nil {
			return a.fail(err)
		}
		if !ok {
			a.println("Cancelled.")
			return nil
		}
	}

	a.printf("Approving %q of %s\n", step.Name, w.DocumentNumber)
	sf, err := a.signatureForm(step.Name, true)
	if err != nil {
		return a.fail(err)
	}
	sig, err := a.store.Signatures.Capture(ctx, sf.Meaning, sf.Reason, sf.Password)
	if err != nil {
		return a.fail(err)
	}

	w, err = a.store.Workflows.ApproveStep(ctx, workflowID, stepID, sig, sf.Comments)
	if err != nil {
		return a.fail(err)
	}
	if w.Status == models.StepApproved {
		a.printf("Workflow %s approved\n", w.ID)
	} else {
		a.printf("Step approved; workflow now at step %d\n", w.CurrentStep)
	}
	return nil
}
