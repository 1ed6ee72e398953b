package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	"github.com/pockets-tracker/backend/internal/integration/persistence/model"
)

// Settings row keys.
const (
	budgetSettingsKey   = "budget"
	reminderSettingsKey = "reminder"
)

// budgetSettingsRecord is the JSON shape stored in the settings value column.
type budgetSettingsRecord struct {
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	Threshold     decimal.Decimal `json:"threshold"`
	AlertsEnabled bool            `json:"alertsEnabled"`
}

// reminderSettingsRecord is the JSON shape of the daily reminder row.
type reminderSettingsRecord struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}

// settingsRepository implements the adapter.SettingsRepository interface on
// top of a generic key-value table.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetBudgetSettings retrieves the budget configuration. Absent or unreadable
// settings yield a zero budget with alerts disabled.
func (r *settingsRepository) GetBudgetSettings(ctx context.Context) (*entity.BudgetSettings, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", budgetSettingsKey).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.BudgetSettings{
				MonthlyBudget: decimal.Zero,
				Threshold:     decimal.Zero,
			}, nil
		}
		return nil, result.Error
	}

	var record budgetSettingsRecord
	if err := json.Unmarshal([]byte(settingModel.Value), &record); err != nil {
		// Unreadable settings behave like absent ones.
		return &entity.BudgetSettings{
			MonthlyBudget: decimal.Zero,
			Threshold:     decimal.Zero,
		}, nil
	}

	return &entity.BudgetSettings{
		MonthlyBudget: record.MonthlyBudget,
		Threshold:     record.Threshold,
		AlertsEnabled: record.AlertsEnabled,
	}, nil
}

// SaveBudgetSettings persists the budget configuration.
func (r *settingsRepository) SaveBudgetSettings(ctx context.Context, settings *entity.BudgetSettings) error {
	value, err := json.Marshal(budgetSettingsRecord{
		MonthlyBudget: settings.MonthlyBudget,
		Threshold:     settings.Threshold,
		AlertsEnabled: settings.AlertsEnabled,
	})
	if err != nil {
		return err
	}

	settingModel := model.SettingModel{
		Key:       budgetSettingsKey,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Save(&settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetReminderSettings retrieves the daily reminder configuration. Absent or
// unreadable settings yield the defaults.
func (r *settingsRepository) GetReminderSettings(ctx context.Context) (*entity.ReminderSettings, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", reminderSettingsKey).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.DefaultReminderSettings(), nil
		}
		return nil, result.Error
	}

	var record reminderSettingsRecord
	if err := json.Unmarshal([]byte(settingModel.Value), &record); err != nil {
		return entity.DefaultReminderSettings(), nil
	}

	return &entity.ReminderSettings{
		Enabled: record.Enabled,
		Hour:    record.Hour,
		Minute:  record.Minute,
	}, nil
}

// SaveReminderSettings persists the daily reminder configuration.
func (r *settingsRepository) SaveReminderSettings(ctx context.Context, settings *entity.ReminderSettings) error {
	value, err := json.Marshal(reminderSettingsRecord{
		Enabled: settings.Enabled,
		Hour:    settings.Hour,
		Minute:  settings.Minute,
	})
	if err != nil {
		return err
	}

	settingModel := model.SettingModel{
		Key:       reminderSettingsKey,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Save(&settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
