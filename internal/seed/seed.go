// Package seed loads the demo catalog, users, workflow templates and
// documents straight into the repositories. Seeding writes no audit entries.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/dmitrijs2005/docflow/internal/repositories/repomanager"
)

// Load fills m with the demo data set and returns the id of the user the
// session should start as.
func Load(ctx context.Context, m repomanager.RepositoryManager) (string, error) {
	for _, t := range DocumentTypes() {
		if err := m.DocumentTypes().Create(ctx, t); err != nil {
			return "", fmt.Errorf("error seeding document types: %w", err)
		}
	}

	users := Users()
	for _, u := range users {
		if err := m.Users().Create(ctx, u); err != nil {
			return "", fmt.Errorf("error seeding users: %w", err)
		}
	}

	for _, t := range Templates() {
		if err := m.Templates().Create(ctx, t); err != nil {
			return "", fmt.Errorf("error seeding templates: %w", err)
		}
	}

	for _, d := range Documents() {
		if err := m.Documents().Create(ctx, d); err != nil {
			return "", fmt.Errorf("error seeding documents: %w", err)
		}
	}

	return users[0].ID, nil
}

func DocumentTypes() []*models.DocumentType {
	return []*models.DocumentType{
		{ID: "1", Type: models.KindManual, Description: "Quality manuals and handbooks"},
		{ID: "2", Type: models.KindProcedure, Description: "Standard Operating Procedures (SOPs)"},
		{ID: "3", Type: models.KindProcess, Description: "Process flow documents"},
		{ID: "4", Type: models.KindWorkInstruction, Description: "Detailed work instructions"},
		{ID: "5", Type: models.KindPolicy, Description: "Company policies"},
		{ID: "6", Type: models.KindChecklist, Description: "Quality checklists"},
		{ID: "7", Type: models.KindFormat, Description: "Standard formats"},
		{ID: "8", Type: models.KindTemplate, Description: "Document templates"},
		{ID: "9", Type: models.KindMasters, Description: "Master documents"},
	}
}

// Users returns the demo directory. The administrator comes first.
func Users() []*models.User {
	return []*models.User{
		{ID: "1", Username: "admin", Name: "System Administrator", Email: "admin@pharma.com",
			Role: models.RoleAdministrator, Department: "IT", Active: true},
		{ID: "2", Username: "qa_manager", Name: "John Smith", Email: "john.smith@pharma.com",
			Role: models.RoleQAManager, Department: "Quality Assurance", Active: true},
		{ID: "3", Username: "doc_controller", Name: "Sarah Johnson", Email: "sarah.j@pharma.com",
			Role: models.RoleDocumentController, Department: "Quality Assurance", Active: true},
		{ID: "4", Username: "reviewer1", Name: "Michael Brown", Email: "michael.b@pharma.com",
			Role: models.RoleReviewer, Department: "Production", Active: true},
		{ID: "5", Username: "approver1", Name: "Emily Davis", Email: "emily.d@pharma.com",
			Role: models.RoleApprover, Department: "Quality Assurance", Active: true},
	}
}

func Templates() []*models.WorkflowTemplate {
	return []*models.WorkflowTemplate{
		{
			ID:              "1",
			Name:            "Standard SOP Review",
			Description:     "Standard workflow for SOP review and approval",
			ApplicableTypes: []models.DocumentKind{models.KindProcedure, models.KindWorkInstruction},
			Steps: []models.StepDefinition{
				{Number: 1, Name: "Technical Review", Role: models.RoleReviewer},
				{Number: 2, Name: "QA Review", Role: models.RoleQAManager},
				{Number: 3, Name: "Final Approval", Role: models.RoleApprover},
			},
		},
		{
			ID:              "2",
			Name:            "Policy Approval",
			Description:     "Workflow for policy approval",
			ApplicableTypes: []models.DocumentKind{models.KindPolicy, models.KindManual},
			Steps: []models.StepDefinition{
				{Number: 1, Name: "Department Review", Role: models.RoleReviewer},
				{Number: 2, Name: "QA Approval", Role: models.RoleQAManager},
				{Number: 3, Name: "Executive Approval", Role: models.RoleApprover},
			},
		},
	}
}

func Documents() []*models.Document {
	return []*models.Document{
		{
			ID:            "1",
			Title:         "Good Manufacturing Practice Guidelines",
			Number:        "QM-001",
			Version:       "3.0",
			CreatedAt:     date(2024, 1, 15),
			CreatedBy:     "Sarah Johnson",
			IssuedAt:      date(2024, 2, 1),
			IssuedBy:      "Emily Davis",
			IssuerRole:    models.RoleApprover,
			EffectiveFrom: date(2024, 2, 1),
			NextIssue:     date(2025, 2, 1),
			Type:          models.KindManual,
			Category:      "Quality Management",
			Security:      models.SecurityInternal,
			Status:        models.StatusEffective,
		},
		{
			ID:            "2",
			Title:         "Batch Record Review Procedure",
			Number:        "SOP-QA-101",
			Version:       "2.1",
			CreatedAt:     date(2024, 3, 10),
			CreatedBy:     "John Smith",
			IssuedAt:      date(2024, 3, 20),
			IssuedBy:      "Emily Davis",
			IssuerRole:    models.RoleApprover,
			EffectiveFrom: date(2024, 3, 25),
			NextIssue:     date(2025, 3, 25),
			Type:          models.KindProcedure,
			Category:      "Quality Assurance",
			Security:      models.SecurityConfidential,
			Status:        models.StatusEffective,
		},
		{
			ID:        "3",
			Title:     "Equipment Cleaning Validation Protocol",
			Number:    "WI-PRD-205",
			Version:   "1.0",
			CreatedAt: date(2024, 10, 1),
			CreatedBy: "Michael Brown",
			Type:      models.KindWorkInstruction,
			Category:  "Production",
			Security:  models.SecurityInternal,
			Status:    models.StatusUnderReview,
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
