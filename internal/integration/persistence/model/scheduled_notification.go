package model

import (
	"time"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// ScheduledNotificationModel represents the scheduled_notifications table.
type ScheduledNotificationModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text"`
	FireAt    time.Time `gorm:"not null;index"`
	Repeat    string    `gorm:"type:varchar(10);not null"`
	Status    string    `gorm:"type:varchar(10);not null;index"`
	Attempts  int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ScheduledNotificationModel.
func (ScheduledNotificationModel) TableName() string {
	return "scheduled_notifications"
}

// ToEntity converts a ScheduledNotificationModel to a domain entity.
func (m *ScheduledNotificationModel) ToEntity() *entity.ScheduledNotification {
	return &entity.ScheduledNotification{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		FireAt:    m.FireAt,
		Repeat:    entity.NotificationRepeat(m.Repeat),
		Status:    entity.NotificationStatus(m.Status),
		Attempts:  m.Attempts,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ScheduledNotificationFromEntity creates a model from a domain entity.
func ScheduledNotificationFromEntity(n *entity.ScheduledNotification) *ScheduledNotificationModel {
	return &ScheduledNotificationModel{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		FireAt:    n.FireAt,
		Repeat:    string(n.Repeat),
		Status:    string(n.Status),
		Attempts:  n.Attempts,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
