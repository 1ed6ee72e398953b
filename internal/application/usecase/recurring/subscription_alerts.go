package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// subscriptionAlertHour is the local hour at which due-day alerts fire.
const subscriptionAlertHour = 9

// SubscriptionAlertScheduler keeps the per-template reminder notifications in
// sync with the template list. All operations are best effort: failures are
// logged and never propagated.
type SubscriptionAlertScheduler struct {
	scheduler adapter.NotificationScheduler
	clock     adapter.Clock
	enabled   bool
}

// NewSubscriptionAlertScheduler creates a new SubscriptionAlertScheduler.
func NewSubscriptionAlertScheduler(scheduler adapter.NotificationScheduler, clock adapter.Clock, enabled bool) *SubscriptionAlertScheduler {
	return &SubscriptionAlertScheduler{
		scheduler: scheduler,
		clock:     clock,
		enabled:   enabled,
	}
}

// Reschedule replaces the template's pending alerts: a due-day alert at 09:00
// repeating monthly, plus a one-shot reminder the day before. An inactive
// template only has its alerts cancelled.
func (s *SubscriptionAlertScheduler) Reschedule(ctx context.Context, template *entity.RecurringTemplate) {
	s.CancelFor(ctx, template.ID)

	if !s.enabled || !template.IsActive {
		return
	}

	now := s.clock.Now()
	dueDate := nextOccurrence(now, template.DayOfMonth)

	identifier := entity.NotificationIDSubscriptionPrefix + template.ID.String()
	body := fmt.Sprintf("%s - %s", template.Name, template.Amount.StringFixed(2))

	if reminderAt := dueDate.AddDate(0, 0, -1); reminderAt.After(now) {
		reminder := entity.NewScheduledNotification(
			identifier+"_reminder",
			"Upcoming Subscription",
			body,
			reminderAt,
			entity.RepeatNone,
		)
		if err := s.scheduler.Schedule(ctx, reminder); err != nil {
			slog.Warn("Failed to schedule subscription reminder",
				"templateID", template.ID,
				"error", err,
			)
		}
	}

	dueAlert := entity.NewScheduledNotification(
		identifier,
		"Subscription Due Today",
		body,
		dueDate,
		entity.RepeatMonthly,
	)
	if err := s.scheduler.Schedule(ctx, dueAlert); err != nil {
		slog.Warn("Failed to schedule subscription alert",
			"templateID", template.ID,
			"error", err,
		)
	}
}

// CancelFor removes all pending alerts for the template, matching by id prefix.
func (s *SubscriptionAlertScheduler) CancelFor(ctx context.Context, templateID uuid.UUID) {
	prefix := entity.NotificationIDSubscriptionPrefix + templateID.String()
	if err := s.scheduler.Cancel(ctx, prefix); err != nil {
		slog.Warn("Failed to cancel subscription alerts",
			"templateID", templateID,
			"error", err,
		)
	}
}

// nextOccurrence returns the next due date at the alert hour: this month if
// the target day is still ahead, otherwise next month, with the day clamped
// to the month's length.
func nextOccurrence(now time.Time, dayOfMonth int) time.Time {
	year, month := now.Year(), now.Month()
	if now.Day() >= dayOfMonth {
		month++
	}

	ref := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	day := dayOfMonth
	if last := lastDayOfMonth(ref); day > last {
		day = last
	}

	return time.Date(ref.Year(), ref.Month(), day, subscriptionAlertHour, 0, 0, 0, now.Location())
}
