// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthKey identifies one calendar month for notification de-duplication.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyFor returns the MonthKey covering the given date.
func MonthKeyFor(date time.Time) MonthKey {
	return MonthKey{Year: date.Year(), Month: date.Month()}
}

// String renders the key in the persisted "<year>_<month>" form.
func (k MonthKey) String() string {
	return fmt.Sprintf("%d_%d", k.Year, int(k.Month))
}

// BudgetNotificationState holds the per-month alert de-duplication flags.
// Exactly one state record exists per month key; months other than the
// current one are stale and swept opportunistically.
type BudgetNotificationState struct {
	MonthKey          MonthKey
	ThresholdNotified bool
	BudgetNotified    bool
	Progress          decimal.Decimal
}

// AlertKind discriminates budget alert variants.
type AlertKind string

const (
	AlertNone             AlertKind = "none"
	AlertThresholdCrossed AlertKind = "threshold_crossed"
	AlertBudgetExceeded   AlertKind = "budget_exceeded"
)

// BudgetAlert is the outcome of one budget evaluation.
type BudgetAlert struct {
	Kind     AlertKind
	Progress decimal.Decimal
}

// NoneAlert returns the empty alert outcome.
func NoneAlert() BudgetAlert {
	return BudgetAlert{Kind: AlertNone}
}

// BudgetSettings holds the user's budget configuration.
type BudgetSettings struct {
	MonthlyBudget decimal.Decimal
	// Threshold is the fraction of budget that triggers the early warning,
	// e.g. 0.8 for 80%.
	Threshold     decimal.Decimal
	AlertsEnabled bool
}
