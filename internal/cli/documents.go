package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/dmitrijs2005/docflow/internal/services"
)

type formField struct {
	label string
	dst   *string
}

// fill prompts for each field, offering the current value as default. A
// single "-" clears the field.
func (a *App) fill(fields []formField) error {
	for _, f := range fields {
		v, err := GetDefaultText(a.reader, f.label, *f.dst, a.out)
		if err != nil {
			return err
		}
		if v == "-" {
			v = ""
		}
		*f.dst = v
	}
	return nil
}

func (f *documentForm) fields() []formField {
	return []formField{
		{"Document title", &f.Title},
		{"Document number", &f.Number},
		{"Version", &f.Version},
		{"Date created (YYYY-MM-DD)", &f.CreatedAt},
		{"Created by", &f.CreatedBy},
		{"Date of issue (YYYY-MM-DD)", &f.IssuedAt},
		{"Issued by", &f.IssuedBy},
		{"Issuer role", &f.IssuerRole},
		{"Effective from (YYYY-MM-DD)", &f.EffectiveFrom},
		{"Date of next issue (YYYY-MM-DD)", &f.NextIssue},
		{"Document type", &f.Type},
		{"Category", &f.Category},
		{"Security", &f.Security},
		{"Status", &f.Status},
	}
}

// content reads the document body. An empty entry keeps the current text.
func (a *App) content(f *documentForm) error {
	prompt := "Content"
	if f.Content != "" {
		prompt += " (empty keeps the current text)"
	}
	s, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if s != "" {
		f.Content = s
	}
	return nil
}

// checkDocumentForm validates f and that its type exists in the catalog.
func (a *App) checkDocumentForm(ctx context.Context, f documentForm) error {
	if err := validate.Struct(f); err != nil {
		return describe(err)
	}
	types, err := a.store.Catalog.DocumentTypes(ctx)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(types, func(t *models.DocumentType) bool { return string(t.Type) == f.Type }) {
		return fmt.Errorf("unknown document type %q (see 'types')", f.Type)
	}
	return nil
}

// attachments reads attachment names as a comma separated list. An empty
// entry keeps the current list and a single "-" clears it.
func (a *App) attachments(f *documentForm) error {
	prompt := "Attachments (comma separated)"
	if len(f.Attachments) > 0 {
		prompt += fmt.Sprintf(" [%s]", strings.Join(f.Attachments, ", "))
	}
	items, err := GetList(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	switch {
	case len(items) == 1 && items[0] == "-":
		f.Attachments = nil
	case len(items) > 0:
		f.Attachments = items
	}
	return nil
}

func (a *App) Docs(ctx context.Context, f services.DocumentFilter) error {
	docs, err := a.store.Documents.List(ctx, f)
	if err != nil {
		return a.fail(err)
	}
	if len(docs) == 0 {
		a.println("No documents found.")
		return nil
	}
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{d.ID, d.Number, d.Title, d.Version, string(d.Type), string(d.Status), string(d.Security)})
	}
	a.table([]string{"ID", "NUMBER", "TITLE", "VERSION", "TYPE", "STATUS", "SECURITY"}, rows)
	return nil
}

func (a *App) Doc(ctx context.Context, id string) error {
	d, err := a.store.Documents.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}

	a.printf("%s  %s (v%s)\n", d.Number, d.Title, d.Version)
	a.field("ID", d.ID)
	a.field("Type", string(d.Type))
	a.field("Category", d.Category)
	a.field("Security", string(d.Security))
	a.field("Status", string(d.Status))
	a.field("Created", formatDate(d.CreatedAt)+" by "+d.CreatedBy)
	if !d.IssuedAt.IsZero() {
		a.field("Issued", fmt.Sprintf("%s by %s (%s)", formatDate(d.IssuedAt), orDash(d.IssuedBy), orDash(string(d.IssuerRole))))
	}
	a.field("Effective from", formatDate(d.EffectiveFrom))
	a.field("Next issue", formatDate(d.NextIssue))
	a.field("Content", d.Content)
	a.field("Attachments", strings.Join(d.Attachments, ", "))

	wfs, err := a.store.Workflows.List(ctx, services.WorkflowFilter{DocumentID: d.ID})
	if err != nil {
		return a.fail(err)
	}
	for _, w := range wfs {
		a.field("Workflow", fmt.Sprintf("%s %s [%s]", w.ID, w.Name, w.Status))
	}
	return nil
}

func (a *App) NewDoc(ctx context.Context) error {
	createdBy := ""
	if u, err := a.store.Users.CurrentUser(ctx); err == nil {
		createdBy = u.Name
	}

	f := newDocumentForm(createdBy, time.Now())
	if err := a.fill(f.fields()); err != nil {
		return a.fail(err)
	}
	if err := a.content(&f); err != nil {
		return a.fail(err)
	}
	if err := a.attachments(&f); err != nil {
		return a.fail(err)
	}
	if err := a.checkDocumentForm(ctx, f); err != nil {
		return a.fail(err)
	}

	d, err := a.store.Documents.Create(ctx, f.document())
	if err != nil {
		return a.fail(err)
	}
	a.printf("Created document %s (%s)\n", d.ID, d.Number)
	return nil
}

func (a *App) EditDoc(ctx context.Context, id string) error {
	d, err := a.store.Documents.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}

	before := documentFormOf(d)
	f := before
	if err := a.fill(f.fields()); err != nil {
		return a.fail(err)
	}
	if err := a.content(&f); err != nil {
		return a.fail(err)
	}
	if err := a.attachments(&f); err != nil {
		return a.fail(err)
	}
	if err := a.checkDocumentForm(ctx, f); err != nil {
		return a.fail(err)
	}

	if _, err := a.store.Documents.Update(ctx, id, f.diff(before)); err != nil {
		return a.fail(err)
	}
	a.printf("Updated document %s\n", id)
	return nil
}

func (a *App) DeleteDoc(ctx context.Context, id string) error {
	d, err := a.store.Documents.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s %s?", d.Number, d.Title), a.out)
	if err != nil {
		return a.fail(err)
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}
	if err := a.store.Documents.Delete(ctx, id); err != nil {
		return a.fail(err)
	}
	a.printf("Deleted document %s\n", id)
	return nil
}

func (a *App) SignDoc(ctx context.Context, id string) error {
	d, err := a.store.Documents.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Signing %s %s\n", d.Number, d.Title)

	meaning, err := GetDefaultText(a.reader, "Meaning of signature", "Reviewed", a.out)
	if err != nil {
		return a.fail(err)
	}
	sf, err := a.signatureForm(meaning, false)
	if err != nil {
		return a.fail(err)
	}

	sig, err := a.store.Signatures.Capture(ctx, sf.Meaning, sf.Reason, sf.Password)
	if err != nil {
		return a.fail(err)
	}
	if _, err := a.store.Documents.Sign(ctx, id, sig, models.ActionDocumentSigned); err != nil {
		return a.fail(err)
	}
	a.printf("Signed %s as %s\n", d.Number, sig.SignedBy)
	return nil
}

// signatureForm collects reason, password and optionally comments for a
// signature with the given meaning.
func (a *App) signatureForm(meaning string, withComments bool) (signatureForm, error) {
	a.println("Your electronic signature has the same legal effect as a handwritten signature.")

	sf := signatureForm{Meaning: meaning}
	var err error
	if sf.Reason, err = GetSimpleText(a.reader, "Reason for signing", a.out); err != nil {
		return sf, err
	}
	if sf.Password, err = GetSecret(a.reader, a.out); err != nil {
		return sf, err
	}
	if withComments {
		if sf.Comments, err = GetSimpleText(a.reader, "Comments (optional)", a.out); err != nil {
			return sf, err
		}
	}
	if err := validate.Struct(sf); err != nil {
		return sf, describe(err)
	}
	return sf, nil
}
