package dto

import (
	"time"

	"projectconnect/internal/models"
)

type NotificationResponse struct {
	ID        string           `json:"id"`
	Sender    string           `json:"sender"`
	Operation models.Operation `json:"operation"`
	Project   string           `json:"project"`
	Timestamp time.Time        `json:"timestamp"`
}

func NewNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Sender:    n.Sender,
		Operation: n.Operation,
		Project:   n.ProjectName,
		Timestamp: n.CreatedAt,
	}
}

func NewNotificationResponses(notifications []models.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, NewNotificationResponse(&notifications[i]))
	}
	return out
}
