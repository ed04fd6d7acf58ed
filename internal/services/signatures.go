package services

import (
	"context"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
)

// SignatureService captures electronic signatures for the current user. The
// password is recorded as given and never checked.
type SignatureService struct {
	store *Store
}

func (s *SignatureService) Capture(ctx context.Context, meaning, reason, password string) (*models.ElectronicSignature, error) {
	st := s.store
	u := st.currentUser(ctx)
	if u == nil {
		return nil, common.ErrNoCurrentUser
	}
	return &models.ElectronicSignature{
		ID:           st.newID(),
		SignedBy:     u.Name,
		SignedByRole: u.Role,
		SignedAt:     st.now(),
		Meaning:      meaning,
		Reason:       reason,
		Password:     password,
	}, nil
}
