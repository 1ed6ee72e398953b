package dto

import (
	"time"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// NotificationResponse represents a pending scheduled notification.
type NotificationResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	FireAt   time.Time `json:"fireAt"`
	Repeat   string    `json:"repeat"`
	Status   string    `json:"status"`
	Attempts int       `json:"attempts"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// UpdateReminderRequest represents the request to change the daily reminder.
type UpdateReminderRequest struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour" binding:"min=0,max=23"`
	Minute  int  `json:"minute" binding:"min=0,max=59"`
}

// ReminderResponse represents the daily reminder configuration.
type ReminderResponse struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}

// ToReminderResponse converts reminder settings to a DTO.
func ToReminderResponse(settings *entity.ReminderSettings) ReminderResponse {
	return ReminderResponse{
		Enabled: settings.Enabled,
		Hour:    settings.Hour,
		Minute:  settings.Minute,
	}
}

// ToNotificationListResponse converts scheduled notifications to a list DTO.
func ToNotificationListResponse(notifications []*entity.ScheduledNotification) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:       n.ID,
			Title:    n.Title,
			Body:     n.Body,
			FireAt:   n.FireAt,
			Repeat:   string(n.Repeat),
			Status:   string(n.Status),
			Attempts: n.Attempts,
		}
	}
	return NotificationListResponse{
		Notifications: responses,
	}
}
