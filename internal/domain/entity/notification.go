// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Well-known notification identifiers. Subscription alerts use the prefix
// followed by the template id so they can be cancelled per template.
const (
	NotificationIDDailyReminder      = "dailyExpenseReminder"
	NotificationIDBudgetAlert        = "budgetAlert"
	NotificationIDSubscriptionPrefix = "subscription_"
)

// ReminderSettings configures the daily expense-logging reminder.
type ReminderSettings struct {
	Enabled bool
	Hour    int
	Minute  int
}

// DefaultReminderSettings returns the reminder defaults: disabled, 20:00.
func DefaultReminderSettings() *ReminderSettings {
	return &ReminderSettings{Hour: 20}
}

// NotificationRepeat describes how a scheduled notification recurs.
type NotificationRepeat string

const (
	RepeatNone    NotificationRepeat = "none"
	RepeatDaily   NotificationRepeat = "daily"
	RepeatMonthly NotificationRepeat = "monthly"
)

// NotificationStatus is the delivery lifecycle state.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// ScheduledNotification is a user-visible notification queued for delivery.
type ScheduledNotification struct {
	ID        string
	Title     string
	Body      string
	FireAt    time.Time
	Repeat    NotificationRepeat
	Status    NotificationStatus
	Attempts  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewScheduledNotification creates a pending notification.
func NewScheduledNotification(id, title, body string, fireAt time.Time, repeat NotificationRepeat) *ScheduledNotification {
	now := time.Now().UTC()

	return &ScheduledNotification{
		ID:        id,
		Title:     title,
		Body:      body,
		FireAt:    fireAt,
		Repeat:    repeat,
		Status:    NotificationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkSent records a successful delivery. Repeating notifications go back to
// pending with the next fire time.
func (n *ScheduledNotification) MarkSent(now time.Time) {
	n.Attempts = 0
	n.UpdatedAt = now

	switch n.Repeat {
	case RepeatDaily:
		n.FireAt = n.FireAt.AddDate(0, 0, 1)
		n.Status = NotificationPending
	case RepeatMonthly:
		n.FireAt = n.FireAt.AddDate(0, 1, 0)
		n.Status = NotificationPending
	default:
		n.Status = NotificationSent
	}
}

// MarkFailed records a delivery failure. After maxAttempts the notification
// is dropped rather than retried forever.
func (n *ScheduledNotification) MarkFailed(now time.Time, maxAttempts int) {
	n.Attempts++
	n.UpdatedAt = now
	if n.Attempts >= maxAttempts {
		n.Status = NotificationFailed
	}
}
