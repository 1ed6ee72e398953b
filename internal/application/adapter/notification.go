// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// NotificationScheduler defines the best-effort notification collaborator.
// Callers never treat a scheduling failure as fatal.
type NotificationScheduler interface {
	// Schedule queues a notification, replacing any pending one with the same id.
	Schedule(ctx context.Context, notification *entity.ScheduledNotification) error

	// Cancel removes pending notifications whose id matches exactly or starts
	// with the given prefix.
	Cancel(ctx context.Context, idOrPrefix string) error

	// Pending returns notifications that have not been delivered yet.
	Pending(ctx context.Context) ([]*entity.ScheduledNotification, error)
}

// NotificationQueueRepository extends the scheduler with the delivery
// bookkeeping the worker needs.
type NotificationQueueRepository interface {
	NotificationScheduler

	// Due returns pending notifications whose fire time has passed.
	Due(ctx context.Context, now time.Time) ([]*entity.ScheduledNotification, error)

	// Update persists state changes made during delivery.
	Update(ctx context.Context, notification *entity.ScheduledNotification) error
}

// SendAlertInput represents the input for delivering one alert.
type SendAlertInput struct {
	Title string
	Body  string
}

// SendAlertResult represents the result of delivering an alert.
type SendAlertResult struct {
	ProviderID string
}

// AlertSender delivers a due notification through an external channel.
type AlertSender interface {
	Send(ctx context.Context, input SendAlertInput) (*SendAlertResult, error)
}
