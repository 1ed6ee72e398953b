// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// BudgetStateRepository defines the month-keyed store for budget notification
// de-duplication state.
type BudgetStateRepository interface {
	// Get retrieves the state for a month key. A missing record yields a
	// zero-value state (both flags false) for that key.
	Get(ctx context.Context, key entity.MonthKey) (*entity.BudgetNotificationState, error)

	// Put persists the state for its month key, creating or overwriting.
	Put(ctx context.Context, state *entity.BudgetNotificationState) error

	// DeleteAllExcept drops every stored month record except the given key.
	DeleteAllExcept(ctx context.Context, key entity.MonthKey) error
}

// SettingsRepository defines the store for user-level settings.
type SettingsRepository interface {
	// GetBudgetSettings retrieves the budget configuration. Absent settings
	// yield a zero budget with alerts disabled.
	GetBudgetSettings(ctx context.Context) (*entity.BudgetSettings, error)

	// SaveBudgetSettings persists the budget configuration.
	SaveBudgetSettings(ctx context.Context, settings *entity.BudgetSettings) error

	// GetReminderSettings retrieves the daily reminder configuration. Absent
	// settings yield the defaults.
	GetReminderSettings(ctx context.Context) (*entity.ReminderSettings, error)

	// SaveReminderSettings persists the daily reminder configuration.
	SaveReminderSettings(ctx context.Context, settings *entity.ReminderSettings) error
}
