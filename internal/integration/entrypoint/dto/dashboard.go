package dto

import (
	"github.com/pockets-tracker/backend/internal/application/usecase/dashboard"
)

// MonthlySummaryResponse represents one month's aggregated totals.
type MonthlySummaryResponse struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	ExpenseTotal string `json:"expenseTotal"`
	IncomeTotal  string `json:"incomeTotal"`
	Balance      string `json:"balance"`
	Transactions int    `json:"transactions"`
}

// CategoryBreakdownItemResponse is one category's share of the month.
type CategoryBreakdownItemResponse struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Total      string `json:"total"`
	Percentage string `json:"percentage"`
}

// CategoryBreakdownResponse represents the per-category totals.
type CategoryBreakdownResponse struct {
	Total string                          `json:"total"`
	Items []CategoryBreakdownItemResponse `json:"items"`
}

// ToMonthlySummaryResponse converts a use case output to a DTO.
func ToMonthlySummaryResponse(output *dashboard.GetMonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:         output.Year,
		Month:        int(output.Month),
		ExpenseTotal: output.ExpenseTotal.String(),
		IncomeTotal:  output.IncomeTotal.String(),
		Balance:      output.Balance.String(),
		Transactions: output.Transactions,
	}
}

// ToCategoryBreakdownResponse converts a use case output to a DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	items := make([]CategoryBreakdownItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = CategoryBreakdownItemResponse{
			CategoryID: item.CategoryID.String(),
			Name:       item.Name,
			Icon:       item.Icon,
			Total:      item.Total.String(),
			Percentage: item.Percentage.String(),
		}
	}
	return CategoryBreakdownResponse{
		Total: output.Total.String(),
		Items: items,
	}
}
