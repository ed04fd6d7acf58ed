package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/models"
)

// CatalogService manages the document type catalog. Types are append-only.
type CatalogService struct {
	store *Store
}

func (s *CatalogService) AddDocumentType(ctx context.Context, t *models.DocumentType) (*models.DocumentType, error) {
	st := s.store
	c := t.Clone()
	c.ID = st.newID()
	if err := st.repos.DocumentTypes().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("error creating document type: %w", err)
	}
	st.log.Info(ctx, "document type added", "id", c.ID, "type", c.Type)
	return c, nil
}

func (s *CatalogService) DocumentTypes(ctx context.Context) ([]*models.DocumentType, error) {
	return s.store.repos.DocumentTypes().List(ctx)
}
