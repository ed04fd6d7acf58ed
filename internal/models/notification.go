package models

import "time"

type NotificationType string

const (
	NotificationWorkflow NotificationType = "workflow"
	NotificationReview   NotificationType = "review"
	NotificationApproval NotificationType = "approval"
	NotificationExpiry   NotificationType = "expiry"
	NotificationSystem   NotificationType = "system"
)

type Notification struct {
	ID         string           `json:"id"`
	UserID     string           `json:"userId"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	DocumentID string           `json:"documentId,omitempty"`
	WorkflowID string           `json:"workflowId,omitempty"`
	Read       bool             `json:"isRead"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
