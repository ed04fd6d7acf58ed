package services

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/models"
)

// Stats is the dashboard summary.
type Stats struct {
	TotalDocuments     int
	EffectiveDocuments int
	UnderReview        int
	ActiveWorkflows    int
	RecentActivity     []*models.AuditLog
}

type DashboardService struct {
	store *Store
}

func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	st := s.store

	docs, err := st.repos.Documents().List(ctx)
	if err != nil {
		return nil, err
	}
	wfs, err := st.repos.Workflows().List(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := st.Audit.Recent(ctx, st.recent)
	if err != nil {
		return nil, err
	}

	out := &Stats{TotalDocuments: len(docs), RecentActivity: recent}
	for _, d := range docs {
		switch d.Status {
		case models.StatusEffective:
			out.EffectiveDocuments++
		case models.StatusUnderReview:
			out.UnderReview++
		}
	}
	for _, w := range wfs {
		if w.Status == models.StepInProgress {
			out.ActiveWorkflows++
		}
	}
	return out, nil
}
