package dto

import (
	"github.com/pockets-tracker/backend/internal/application/usecase/budget"
)

// UpdateBudgetSettingsRequest represents the request body for budget settings.
type UpdateBudgetSettingsRequest struct {
	MonthlyBudget string `json:"monthlyBudget" binding:"required"`
	Threshold     string `json:"threshold" binding:"required"`
	AlertsEnabled bool   `json:"alertsEnabled"`
}

// BudgetStatusResponse represents the current month's budget standing.
type BudgetStatusResponse struct {
	MonthlyBudget     string `json:"monthlyBudget"`
	Threshold         string `json:"threshold"`
	AlertsEnabled     bool   `json:"alertsEnabled"`
	Spending          string `json:"spending"`
	Progress          string `json:"progress"`
	Remaining         string `json:"remaining"`
	ThresholdNotified bool   `json:"thresholdNotified"`
	BudgetNotified    bool   `json:"budgetNotified"`
}

// ToBudgetStatusResponse converts a use case output to a BudgetStatusResponse DTO.
func ToBudgetStatusResponse(output *budget.GetStatusOutput) BudgetStatusResponse {
	return BudgetStatusResponse{
		MonthlyBudget:     output.MonthlyBudget.String(),
		Threshold:         output.Threshold.String(),
		AlertsEnabled:     output.AlertsEnabled,
		Spending:          output.Spending.String(),
		Progress:          output.Progress.StringFixed(4),
		Remaining:         output.Remaining.String(),
		ThresholdNotified: output.ThresholdNotified,
		BudgetNotified:    output.BudgetNotified,
	}
}
