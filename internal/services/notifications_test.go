package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_AddMarkRead(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	n, err := st.Notifications.Add(ctx, &models.Notification{UserID: "2", Type: models.NotificationExpiry, Title: "Review due", Read: true})
	require.NoError(t, err)
	assert.False(t, n.Read, "new notifications start unread")

	count, err := st.Notifications.UnreadCount(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, st.Notifications.MarkRead(ctx, n.ID))
	count, _ = st.Notifications.UnreadCount(ctx, "2")
	assert.Equal(t, 0, count)

	assert.ErrorIs(t, st.Notifications.MarkRead(ctx, "ghost"), common.ErrorNotFound)
}

func TestNotificationService_RaisedByWorkflow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	wf, err := st.Workflows.Initiate(ctx, "2", "1")
	require.NoError(t, err)

	reviewer, err := st.Notifications.ForUser(ctx, "4")
	require.NoError(t, err)
	require.Len(t, reviewer, 1)
	assert.Equal(t, models.NotificationReview, reviewer[0].Type)
	assert.Equal(t, wf.ID, reviewer[0].WorkflowID)

	qa, _ := st.Notifications.ForUser(ctx, "2")
	assert.Empty(t, qa)

	wf = approveAs(t, st, "4", wf, 0)
	qa, _ = st.Notifications.ForUser(ctx, "2")
	require.Len(t, qa, 1)
	assert.Equal(t, models.NotificationApproval, qa[0].Type)

	wf = approveAs(t, st, "2", wf, 1)
	_ = approveAs(t, st, "5", wf, 2)

	admin, _ := st.Notifications.ForUser(ctx, "1")
	require.Len(t, admin, 1, "initiator hears about completion")
	assert.Equal(t, models.NotificationWorkflow, admin[0].Type)
}

func TestNotificationService_SkipsInactiveUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, false)

	inactive := false
	_, err := st.Users.UpdateUser(ctx, "4", models.UserUpdate{Active: &inactive})
	require.NoError(t, err)

	_, err = st.Workflows.Initiate(ctx, "2", "1")
	require.NoError(t, err)

	ns, _ := st.Notifications.ForUser(ctx, "4")
	assert.Empty(t, ns)
}
