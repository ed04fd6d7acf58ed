package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
)

// UserService manages the user directory and the session's current user.
type UserService struct {
	store *Store
}

func (s *UserService) AddUser(ctx context.Context, u *models.User) (*models.User, error) {
	st := s.store
	c := u.Clone()
	c.ID = st.newID()
	if err := st.repos.Users().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	st.log.Info(ctx, "user added", "id", c.ID, "role", c.Role)
	return c, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	st := s.store
	var out *models.User
	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		u, err := st.repos.Users().Get(ctx, id)
		if err != nil {
			return err
		}
		upd.Apply(u)
		out = u
		return st.repos.Users().Save(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	st.log.Info(ctx, "user updated", "id", id)
	return out, nil
}

func (s *UserService) Users(ctx context.Context) ([]*models.User, error) {
	return s.store.repos.Users().List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.store.repos.Users().Get(ctx, id)
}

// SetCurrentUser switches the session identity and stamps the user's last
// login. An empty id signs the session out. An unknown id leaves the session
// unchanged.
func (s *UserService) SetCurrentUser(ctx context.Context, id string) error {
	st := s.store
	if id == "" {
		st.session.SetUserID("")
		st.log.Info(ctx, "session cleared")
		return nil
	}

	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		u, err := st.repos.Users().Get(ctx, id)
		if err != nil {
			return err
		}
		u.LastLogin = st.now()
		if err := st.repos.Users().Save(ctx, u); err != nil {
			return err
		}
		st.session.SetUserID(id)
		return nil
	})
	if err != nil {
		st.log.Warn(ctx, "user switch rejected", "id", id, "error", err)
		return err
	}

	st.log.Info(ctx, "current user changed", "id", id)
	return nil
}

// CurrentUser returns the session user or ErrNoCurrentUser.
func (s *UserService) CurrentUser(ctx context.Context) (*models.User, error) {
	u := s.store.currentUser(ctx)
	if u == nil {
		return nil, common.ErrNoCurrentUser
	}
	return u, nil
}
