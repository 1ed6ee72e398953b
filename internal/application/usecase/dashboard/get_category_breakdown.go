package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput selects the month and transaction type. A zero
// Ref means the current month.
type GetCategoryBreakdownInput struct {
	Ref  time.Time
	Type entity.TransactionType
}

// CategoryBreakdownItem is one category's share of the month.
type CategoryBreakdownItem struct {
	CategoryID uuid.UUID
	Name       string
	Icon       string
	Total      decimal.Decimal
	Percentage decimal.Decimal
}

// GetCategoryBreakdownOutput represents the per-category totals.
type GetCategoryBreakdownOutput struct {
	Total decimal.Decimal
	Items []*CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase aggregates one month's transactions by category.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	clock           adapter.Clock
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		clock:           clock,
	}
}

// Execute returns per-category totals sorted by the repository's ordering,
// each with its percentage of the month's total.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	ref := input.Ref
	if ref.IsZero() {
		ref = uc.clock.Now()
	}

	transactionType := input.Type
	if transactionType == "" {
		transactionType = entity.TransactionTypeExpense
	}

	totals, err := uc.transactionRepo.MonthlyTotalsByCategory(ctx, ref, transactionType)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	output := &GetCategoryBreakdownOutput{}
	for _, t := range totals {
		output.Total = output.Total.Add(t.Total)
	}

	hundred := decimal.NewFromInt(100)
	for _, t := range totals {
		item := &CategoryBreakdownItem{
			CategoryID: t.CategoryID,
			Total:      t.Total,
		}
		if c, ok := byID[t.CategoryID]; ok {
			item.Name = c.Name
			item.Icon = c.Icon
		}
		if output.Total.IsPositive() {
			item.Percentage = t.Total.Div(output.Total).Mul(hundred).Round(1)
		}
		output.Items = append(output.Items, item)
	}

	return output, nil
}
