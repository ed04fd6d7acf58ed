package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// documentForm mirrors the document entry form. Dates are entered as
// YYYY-MM-DD; optional dates may be left blank.
type documentForm struct {
	Title         string `validate:"required"`
	Number        string `validate:"required"`
	Version       string `validate:"required"`
	CreatedAt     string `validate:"required,datetime=2006-01-02"`
	CreatedBy     string `validate:"required"`
	IssuedAt      string `validate:"omitempty,datetime=2006-01-02"`
	IssuedBy      string
	IssuerRole    string `validate:"omitempty,oneof=Administrator 'QA Manager' 'Document Controller' Reviewer Approver User"`
	EffectiveFrom string `validate:"omitempty,datetime=2006-01-02"`
	NextIssue     string `validate:"omitempty,datetime=2006-01-02"`
	Type          string `validate:"required"`
	Category      string `validate:"required"`
	Security      string `validate:"required,oneof=Confidential Internal Restricted Public"`
	Status        string `validate:"required,oneof=Draft 'Under Review' Approved Effective Obsolete Retired"`
	Content       string
	Attachments   []string `validate:"dive,required"`
}

func newDocumentForm(createdBy string, today time.Time) documentForm {
	return documentForm{
		Version:   "1.0",
		CreatedAt: today.Format(common.DateLayout),
		CreatedBy: createdBy,
		Type:      string(models.KindProcedure),
		Security:  string(models.SecurityInternal),
		Status:    string(models.StatusDraft),
	}
}

func documentFormOf(d *models.Document) documentForm {
	return documentForm{
		Title:         d.Title,
		Number:        d.Number,
		Version:       d.Version,
		CreatedAt:     formatDate(d.CreatedAt),
		CreatedBy:     d.CreatedBy,
		IssuedAt:      formatDate(d.IssuedAt),
		IssuedBy:      d.IssuedBy,
		IssuerRole:    string(d.IssuerRole),
		EffectiveFrom: formatDate(d.EffectiveFrom),
		NextIssue:     formatDate(d.NextIssue),
		Type:          string(d.Type),
		Category:      d.Category,
		Security:      string(d.Security),
		Status:        string(d.Status),
		Content:       d.Content,
		Attachments:   slices.Clone(d.Attachments),
	}
}

// document converts a validated form.
func (f documentForm) document() *models.Document {
	return &models.Document{
		Title:         f.Title,
		Number:        f.Number,
		Version:       f.Version,
		CreatedAt:     parseDate(f.CreatedAt),
		CreatedBy:     f.CreatedBy,
		IssuedAt:      parseDate(f.IssuedAt),
		IssuedBy:      f.IssuedBy,
		IssuerRole:    models.Role(f.IssuerRole),
		EffectiveFrom: parseDate(f.EffectiveFrom),
		NextIssue:     parseDate(f.NextIssue),
		Type:          models.DocumentKind(f.Type),
		Category:      f.Category,
		Security:      models.Security(f.Security),
		Status:        models.DocumentStatus(f.Status),
		Content:       f.Content,
		Attachments:   slices.Clone(f.Attachments),
	}
}

// diff returns an update holding the fields of f that differ from before.
func (f documentForm) diff(before documentForm) models.DocumentUpdate {
	d := f.document()
	var u models.DocumentUpdate
	if f.Title != before.Title {
		u.Title = &d.Title
	}
	if f.Number != before.Number {
		u.Number = &d.Number
	}
	if f.Version != before.Version {
		u.Version = &d.Version
	}
	if f.CreatedAt != before.CreatedAt {
		u.CreatedAt = &d.CreatedAt
	}
	if f.CreatedBy != before.CreatedBy {
		u.CreatedBy = &d.CreatedBy
	}
	if f.IssuedAt != before.IssuedAt {
		u.IssuedAt = &d.IssuedAt
	}
	if f.IssuedBy != before.IssuedBy {
		u.IssuedBy = &d.IssuedBy
	}
	if f.IssuerRole != before.IssuerRole {
		u.IssuerRole = &d.IssuerRole
	}
	if f.EffectiveFrom != before.EffectiveFrom {
		u.EffectiveFrom = &d.EffectiveFrom
	}
	if f.NextIssue != before.NextIssue {
		u.NextIssue = &d.NextIssue
	}
	if f.Type != before.Type {
		u.Type = &d.Type
	}
	if f.Category != before.Category {
		u.Category = &d.Category
	}
	if f.Security != before.Security {
		u.Security = &d.Security
	}
	if f.Status != before.Status {
		u.Status = &d.Status
	}
	if f.Content != before.Content {
		u.Content = &d.Content
	}
	if !slices.Equal(f.Attachments, before.Attachments) {
		u.Attachments = &d.Attachments
	}
	return u
}

type userForm struct {
	Username   string `validate:"required"`
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Role       string `validate:"required,oneof=Administrator 'QA Manager' 'Document Controller' Reviewer Approver User"`
	Department string `validate:"required"`
}

type typeForm struct {
	Type        string `validate:"required"`
	Description string `validate:"required"`
}

type stepForm struct {
	Name string `validate:"required"`
	Role string `validate:"required,oneof=Administrator 'QA Manager' 'Document Controller' Reviewer Approver User"`
}

type templateForm struct {
	Name            string     `validate:"required"`
	Description     string
	ApplicableTypes []string   `validate:"min=1,dive,required"`
	Steps           []stepForm `validate:"min=1,dive"`
}

func (f templateForm) template() *models.WorkflowTemplate {
	t := &models.WorkflowTemplate{Name: f.Name, Description: f.Description}
	for _, k := range f.ApplicableTypes {
		t.ApplicableTypes = append(t.ApplicableTypes, models.DocumentKind(k))
	}
	for i, s := range f.Steps {
		t.Steps = append(t.Steps, models.StepDefinition{Number: i + 1, Name: s.Name, Role: models.Role(s.Role)})
	}
	return t
}

// signatureForm holds what the signer types; meaning is fixed by the caller.
type signatureForm struct {
	Meaning  string `validate:"required"`
	Reason   string `validate:"required"`
	Password string `validate:"required"`
	Comments string
}

// describe turns validator errors into one readable line.
func describe(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s needs at least %s entries", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param()))
		case "datetime":
			msgs = append(msgs, fe.Field()+" must be a date (YYYY-MM-DD)")
		case "email":
			msgs = append(msgs, fe.Field()+" must be an email address")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(common.DateLayout)
}

// parseDate parses a validated date; blank means unset.
func parseDate(s string) time.Time {
	t, err := time.Parse(common.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
