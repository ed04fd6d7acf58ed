package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
)

// DocumentFilter narrows List. Empty fields match everything.
type DocumentFilter struct {
	Search string
	Type   models.DocumentKind
	Status models.DocumentStatus
}

func (f DocumentFilter) match(d *models.Document) bool {
	if f.Search != "" && !containsFold(f.Search, d.Title, d.Number) {
		return false
	}
	if f.Type != "" && d.Type != f.Type {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return true
}

// DocumentService is the document registry. When a current user is set each
// mutation appends exactly one audit entry; without one the mutation still
// happens but is not audited.
type DocumentService struct {
	store *Store
}

// Create stores a copy of doc under a fresh id and returns it.
func (s *DocumentService) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	st := s.store
	d := doc.Clone()

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		d.ID = st.newID()
		if err := st.repos.Documents().Create(ctx, d); err != nil {
			return fmt.Errorf("error creating document: %w", err)
		}
		if u := st.currentUser(ctx); u != nil {
			entry := st.newAuditEntry(u, models.ActionDocumentCreated, d.ID, d.Number, d.Title)
			if err := st.repos.AuditLogs().Append(ctx, entry); err != nil {
				return fmt.Errorf("error appending audit entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	st.log.Info(ctx, "document created", "id", d.ID, "number", d.Number)
	return d.Clone(), nil
}

// Update merges the present fields of upd into the document. The audit entry
// carries the field-level changes; it is written even when nothing differs.
func (s *DocumentService) Update(ctx context.Context, id string, upd models.DocumentUpdate) (*models.Document, error) {
	st := s.store
	var out *models.Document

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		d, err := st.repos.Documents().Get(ctx, id)
		if err != nil {
			return err
		}

		changes := upd.Apply(d)
		if err := st.repos.Documents().Save(ctx, d); err != nil {
			return fmt.Errorf("error saving document: %w", err)
		}

		if u := st.currentUser(ctx); u != nil {
			entry := st.newAuditEntry(u, models.ActionDocumentUpdated, d.ID, d.Number, d.Title)
			entry.Changes = changes
			if err := st.repos.AuditLogs().Append(ctx, entry); err != nil {
				return fmt.Errorf("error appending audit entry: %w", err)
			}
		}
		out = d
		return nil
	})
	if err != nil {
		st.log.Warn(ctx, "document update rejected", "id", id, "error", err)
		return nil, err
	}

	st.log.Info(ctx, "document updated", "id", id)
	return out, nil
}

// Delete removes the document. Workflows referencing it are left as they are.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	st := s.store

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		d, err := st.repos.Documents().Delete(ctx, id)
		if err != nil {
			return err
		}
		if u := st.currentUser(ctx); u != nil {
			entry := st.newAuditEntry(u, models.ActionDocumentDeleted, d.ID, d.Number, d.Title)
			if err := st.repos.AuditLogs().Append(ctx, entry); err != nil {
				return fmt.Errorf("error appending audit entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		st.log.Warn(ctx, "document delete rejected", "id", id, "error", err)
		return err
	}

	st.log.Info(ctx, "document deleted", "id", id)
	return nil
}

func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	return s.store.repos.Documents().Get(ctx, id)
}

// List returns the documents matching f in registry order.
func (s *DocumentService) List(ctx context.Context, f DocumentFilter) ([]*models.Document, error) {
	all, err := s.store.repos.Documents().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Document, 0, len(all))
	for _, d := range all {
		if f.match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Sign records an attestation against a document under the given action
// label. The document itself is not modified.
func (s *DocumentService) Sign(ctx context.Context, documentID string, sig *models.ElectronicSignature, action string) (*models.AuditLog, error) {
	st := s.store
	var entry *models.AuditLog

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		u := st.currentUser(ctx)
		if u == nil {
			return common.ErrNoCurrentUser
		}
		d, err := st.repos.Documents().Get(ctx, documentID)
		if err != nil {
			return err
		}
		entry = st.newAuditEntry(u, action, d.ID, d.Number, d.Title)
		entry.Signature = sig.Clone()
		return st.repos.AuditLogs().Append(ctx, entry)
	})
	if err != nil {
		st.log.Warn(ctx, "document signing rejected", "id", documentID, "error", err)
		return nil, err
	}

	st.log.Info(ctx, "document signed", "id", documentID, "action", action)
	return entry, nil
}
