// Package budget contains budget configuration and threshold alert use cases.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// Progress returns spending divided by budget. A non-positive budget yields
// zero progress so a cleared budget never alerts.
func Progress(spending, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return spending.Div(budget)
}

// Decide advances the per-month notification state for the given progress and
// returns the alert to raise, if any. The state is mutated in place; the
// caller persists it.
//
// The flags re-arm when progress drops back below the threshold, so a large
// refund or deletion lets both alerts fire again later in the same month.
// Crossing straight into exceeded territory raises only the exceeded alert
// and leaves the threshold flag unset: if spending then falls back between
// the threshold and the budget, the threshold alert still fires once.
func Decide(state *entity.BudgetNotificationState, progress, threshold decimal.Decimal) entity.BudgetAlert {
	state.Progress = progress

	if progress.LessThan(threshold) {
		state.ThresholdNotified = false
		state.BudgetNotified = false
		return entity.NoneAlert()
	}

	one := decimal.NewFromInt(1)

	if progress.GreaterThanOrEqual(one) {
		if state.BudgetNotified {
			return entity.NoneAlert()
		}
		state.BudgetNotified = true
		return entity.BudgetAlert{Kind: entity.AlertBudgetExceeded, Progress: progress}
	}

	if state.ThresholdNotified {
		return entity.NoneAlert()
	}
	state.ThresholdNotified = true
	return entity.BudgetAlert{Kind: entity.AlertThresholdCrossed, Progress: progress}
}
