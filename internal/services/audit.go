package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docflow/internal/models"
)

// AuditFilter narrows List. Search is case-insensitive over document number,
// document title and user name; Action must match exactly.
type AuditFilter struct {
	Search string `json:"search,omitempty"`
	Action string `json:"action,omitempty"`
}

func (f AuditFilter) match(a *models.AuditLog) bool {
	if f.Search != "" && !containsFold(f.Search, a.DocumentNumber, a.DocumentTitle, a.UserName) {
		return false
	}
	return f.Action == "" || a.Action == f.Action
}

// AuditService reads the trail. Entries are written by the other services as
// part of their own operations; Append is for callers recording actions the
// store does not model.
type AuditService struct {
	store *Store
}

// Append prepends a copy of entry, filling in id and timestamp when unset.
func (s *AuditService) Append(ctx context.Context, entry *models.AuditLog) (*models.AuditLog, error) {
	st := s.store
	e := entry.Clone()
	if e.ID == "" {
		e.ID = st.newID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = st.now()
	}

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		return st.repos.AuditLogs().Append(ctx, e)
	})
	if err != nil {
		return nil, fmt.Errorf("error appending audit entry: %w", err)
	}
	return e, nil
}

// List returns matching entries, newest first.
func (s *AuditService) List(ctx context.Context, f AuditFilter) ([]*models.AuditLog, error) {
	all, err := s.store.repos.AuditLogs().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.AuditLog, 0, len(all))
	for _, a := range all {
		if f.match(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Actions returns the distinct action labels in the order they appear in the
// trail (newest first).
func (s *AuditService) Actions(ctx context.Context) ([]string, error) {
	all, err := s.store.repos.AuditLogs().List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []string
	for _, a := range all {
		if _, ok := seen[a.Action]; ok {
			continue
		}
		seen[a.Action] = struct{}{}
		out = append(out, a.Action)
	}
	return out, nil
}

// Recent returns at most n of the newest entries.
func (s *AuditService) Recent(ctx context.Context, n int) ([]*models.AuditLog, error) {
	all, err := s.store.repos.AuditLogs().List(ctx)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// Export is a point-in-time copy of the audit trail, ready to be written out.
// Signatures are serialized without their passwords.
type Export struct {
	ExportedAt time.Time          `json:"exportedAt"`
	ExportedBy string             `json:"exportedBy,omitempty"`
	IPAddress  string             `json:"ipAddress"`
	Filter     AuditFilter        `json:"filter"`
	Entries    []*models.AuditLog `json:"entries"`
}

// Export snapshots the entries matching f, newest first.
func (s *AuditService) Export(ctx context.Context, f AuditFilter) (*Export, error) {
	entries, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &Export{
		ExportedAt: s.store.now(),
		IPAddress:  s.store.session.ClientIP,
		Filter:     f,
		Entries:    entries,
	}
	if u := s.store.currentUser(ctx); u != nil {
		out.ExportedBy = u.Name
	}
	s.store.log.Info(ctx, "audit trail exported", "entries", len(entries))
	return out, nil
}
