package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// BudgetStateModel represents the budget_notification_states table, one row
// per calendar month keyed by "<year>_<month>".
type BudgetStateModel struct {
	MonthKey          string          `gorm:"type:varchar(8);primaryKey"`
	ThresholdNotified bool            `gorm:"default:false"`
	BudgetNotified    bool            `gorm:"default:false"`
	Progress          decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetStateModel.
func (BudgetStateModel) TableName() string {
	return "budget_notification_states"
}

// ToEntity converts a BudgetStateModel to a domain BudgetNotificationState.
func (m *BudgetStateModel) ToEntity() *entity.BudgetNotificationState {
	return &entity.BudgetNotificationState{
		MonthKey:          parseMonthKey(m.MonthKey),
		ThresholdNotified: m.ThresholdNotified,
		BudgetNotified:    m.BudgetNotified,
		Progress:          m.Progress,
	}
}

// BudgetStateFromEntity creates a BudgetStateModel from a domain state.
func BudgetStateFromEntity(state *entity.BudgetNotificationState) *BudgetStateModel {
	return &BudgetStateModel{
		MonthKey:          state.MonthKey.String(),
		ThresholdNotified: state.ThresholdNotified,
		BudgetNotified:    state.BudgetNotified,
		Progress:          state.Progress,
		UpdatedAt:         time.Now().UTC(),
	}
}

// parseMonthKey reverses entity.MonthKey.String. A malformed key yields a
// zero key, which never matches the current month.
func parseMonthKey(key string) entity.MonthKey {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return entity.MonthKey{}
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		return entity.MonthKey{}
	}
	return entity.MonthKey{Year: year, Month: time.Month(month)}
}
