// Package reminder manages the daily expense-logging reminder.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// UpdateReminderInput represents the input for a reminder settings update.
type UpdateReminderInput struct {
	Enabled bool
	Hour    int
	Minute  int
}

// UpdateReminderUseCase persists the reminder configuration and keeps the
// queued daily notification in sync with it.
type UpdateReminderUseCase struct {
	settingsRepo adapter.SettingsRepository
	scheduler    adapter.NotificationScheduler
	clock        adapter.Clock
}

// NewUpdateReminderUseCase creates a new UpdateReminderUseCase instance.
func NewUpdateReminderUseCase(
	settingsRepo adapter.SettingsRepository,
	scheduler adapter.NotificationScheduler,
	clock adapter.Clock,
) *UpdateReminderUseCase {
	return &UpdateReminderUseCase{
		settingsRepo: settingsRepo,
		scheduler:    scheduler,
		clock:        clock,
	}
}

// Execute validates and saves the settings, then replaces the pending daily
// notification. Scheduling is best effort: the saved settings are the source
// of truth and a failed reschedule is logged only.
func (uc *UpdateReminderUseCase) Execute(ctx context.Context, input UpdateReminderInput) (*entity.ReminderSettings, error) {
	if input.Hour < 0 || input.Hour > 23 || input.Minute < 0 || input.Minute > 59 {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidReminderTime,
			"reminder time must be a valid hour and minute",
			domainerror.ErrInvalidReminderTime,
		)
	}

	settings := &entity.ReminderSettings{
		Enabled: input.Enabled,
		Hour:    input.Hour,
		Minute:  input.Minute,
	}
	if err := uc.settingsRepo.SaveReminderSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save reminder settings: %w", err)
	}

	if err := uc.scheduler.Cancel(ctx, entity.NotificationIDDailyReminder); err != nil {
		slog.Warn("Failed to cancel daily reminder", "error", err)
	}

	if settings.Enabled {
		notification := entity.NewScheduledNotification(
			entity.NotificationIDDailyReminder,
			"Expense Reminder",
			"Don't forget to log today's expenses.",
			nextReminderTime(uc.clock.Now(), settings.Hour, settings.Minute),
			entity.RepeatDaily,
		)
		if err := uc.scheduler.Schedule(ctx, notification); err != nil {
			slog.Warn("Failed to schedule daily reminder", "error", err)
		}
	}

	return settings, nil
}

// nextReminderTime returns today at hh:mm, or tomorrow if that has passed.
func nextReminderTime(now time.Time, hour, minute int) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// GetReminderUseCase reads the reminder configuration.
type GetReminderUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetReminderUseCase creates a new GetReminderUseCase instance.
func NewGetReminderUseCase(settingsRepo adapter.SettingsRepository) *GetReminderUseCase {
	return &GetReminderUseCase{settingsRepo: settingsRepo}
}

// Execute returns the stored reminder settings.
func (uc *GetReminderUseCase) Execute(ctx context.Context) (*entity.ReminderSettings, error) {
	settings, err := uc.settingsRepo.GetReminderSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder settings: %w", err)
	}
	return settings, nil
}
