// Package dashboard contains read-only aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// GetMonthlySummaryInput selects the month to summarize. A zero Ref means
// the current month.
type GetMonthlySummaryInput struct {
	Ref time.Time
}

// GetMonthlySummaryOutput represents one month's aggregated totals.
type GetMonthlySummaryOutput struct {
	Year         int
	Month        time.Month
	ExpenseTotal decimal.Decimal
	IncomeTotal  decimal.Decimal
	Balance      decimal.Decimal
	Transactions int
}

// GetMonthlySummaryUseCase computes expense, income, and balance totals for
// one calendar month.
type GetMonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute returns the month's totals.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	ref := input.Ref
	if ref.IsZero() {
		ref = uc.clock.Now()
	}

	transactions, err := uc.transactionRepo.FindByMonth(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	output := &GetMonthlySummaryOutput{
		Year:         ref.Year(),
		Month:        ref.Month(),
		Transactions: len(transactions),
	}

	for _, t := range transactions {
		if t.Type == entity.TransactionTypeIncome {
			output.IncomeTotal = output.IncomeTotal.Add(t.Amount)
		} else {
			output.ExpenseTotal = output.ExpenseTotal.Add(t.Amount)
		}
	}
	output.Balance = output.IncomeTotal.Sub(output.ExpenseTotal)

	return output, nil
}
