// Package notify delivers scheduled notifications through an external channel.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// Worker polls the notification queue and delivers due notifications.
type Worker struct {
	queue        adapter.NotificationQueueRepository
	sender       adapter.AlertSender
	clock        adapter.Clock
	pollInterval time.Duration
	maxAttempts  int
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	PollInterval time.Duration
	MaxAttempts  int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 30 * time.Second,
		MaxAttempts:  3,
	}
}

// NewWorker creates a new notification worker.
func NewWorker(queue adapter.NotificationQueueRepository, sender adapter.AlertSender, clock adapter.Clock, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		clock:        clock,
		pollInterval: config.PollInterval,
		maxAttempts:  config.MaxAttempts,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"max_attempts", w.maxAttempts,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processDue(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.processDue(ctx)
		}
	}
}

// processDue fetches and delivers all currently due notifications.
func (w *Worker) processDue(ctx context.Context) {
	now := w.clock.Now()

	due, err := w.queue.Due(ctx, now)
	if err != nil {
		slog.Error("Failed to get due notifications", "error", err)
		return
	}

	for _, notification := range due {
		select {
		case <-ctx.Done():
			return
		default:
			w.deliver(ctx, notification, now)
		}
	}
}

// deliver sends one notification and records the outcome.
func (w *Worker) deliver(ctx context.Context, notification *entity.ScheduledNotification, now time.Time) {
	logger := slog.With("notification_id", notification.ID)

	result, err := w.sender.Send(ctx, adapter.SendAlertInput{
		Title: notification.Title,
		Body:  notification.Body,
	})
	if err != nil {
		logger.Error("Failed to deliver notification", "error", err)

		var notifErr *domainerror.NotificationError
		if errors.As(err, &notifErr) && notifErr.Code == domainerror.ErrCodePermanentDeliveryFailure {
			notification.MarkFailed(now, 1)
		} else {
			notification.MarkFailed(now, w.maxAttempts)
		}

		if updateErr := w.queue.Update(ctx, notification); updateErr != nil {
			logger.Error("Failed to record delivery failure", "error", updateErr)
		}
		return
	}

	notification.MarkSent(now)
	if err := w.queue.Update(ctx, notification); err != nil {
		logger.Error("Failed to record delivery", "error", err)
		return
	}

	logger.Info("Notification delivered", "provider_id", result.ProviderID)
}

// ProcessNow delivers all due notifications immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processDue(ctx)
}
