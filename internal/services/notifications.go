package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docflow/internal/models"
)

// NotificationService stores per-user notifications. The workflow engine
// raises them when a step becomes current and when a workflow completes.
type NotificationService struct {
	store *Store
}

// Add stores a copy of n with a fresh id and creation time.
func (s *NotificationService) Add(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	st := s.store
	var out *models.Notification
	err := st.repos.Exclusive(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.add(ctx, n)
		return err
	})
	return out, err
}

func (s *NotificationService) add(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	st := s.store
	c := n.Clone()
	c.ID = st.newID()
	c.CreatedAt = st.now()
	c.Read = false
	if err := st.repos.Notifications().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("error creating notification: %w", err)
	}
	st.log.Debug(ctx, "notification added", "id", c.ID, "user", c.UserID, "type", c.Type)
	return c, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	st := s.store
	return st.repos.Exclusive(ctx, func(ctx context.Context) error {
		n, err := st.repos.Notifications().Get(ctx, id)
		if err != nil {
			return err
		}
		n.Read = true
		return st.repos.Notifications().Save(ctx, n)
	})
}

// ForUser returns the user's notifications, newest first.
func (s *NotificationService) ForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	all, err := s.store.repos.Notifications().List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Notification
	for _, n := range all {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	ns, err := s.ForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range ns {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// notifyRole notifies every active user holding role. Callers hold the
// exclusive section.
func (s *NotificationService) notifyRole(ctx context.Context, role models.Role, wf *models.Workflow, typ models.NotificationType, title, msg string) error {
	users, err := s.store.repos.Users().List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if !u.Active || u.Role != role {
			continue
		}
		if _, err := s.add(ctx, &models.Notification{
			UserID:     u.ID,
			Type:       typ,
			Title:      title,
			Message:    msg,
			DocumentID: wf.DocumentID,
			WorkflowID: wf.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

// notifyInitiator tells the users named as the workflow's initiator that it
// completed. Callers hold the exclusive section.
func (s *NotificationService) notifyInitiator(ctx context.Context, wf *models.Workflow) error {
	users, err := s.store.repos.Users().List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Name != wf.InitiatedBy {
			continue
		}
		if _, err := s.add(ctx, &models.Notification{
			UserID:     u.ID,
			Type:       models.NotificationWorkflow,
			Title:      "Workflow approved",
			Message:    fmt.Sprintf("%s for %s completed", wf.Name, wf.DocumentNumber),
			DocumentID: wf.DocumentID,
			WorkflowID: wf.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}
