// Package quickadd contains the one-tap entry use case that creates a
// transaction with minimal input and sensible fallbacks.
package quickadd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// Notes stamped on quick-added transactions.
const (
	QuickAddExpenseNote = "Quick Added Expense"
	QuickAddIncomeNote  = "Quick Added Income"
)

// fallbackCategoryName is resolved when no usable category is given.
const fallbackCategoryName = "Other"

// AddEntryInput represents the input for a quick-add entry.
type AddEntryInput struct {
	Amount decimal.Decimal
	Type   entity.TransactionType
	// CategoryID is optional; a missing or unknown id falls back to the
	// "Other" category.
	CategoryID *uuid.UUID
}

// AddEntryOutput represents the output of a quick-add entry.
type AddEntryOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// BudgetChecker re-evaluates the monthly budget after a spending change.
type BudgetChecker interface {
	Execute(ctx context.Context) (entity.BudgetAlert, error)
}

// AddEntryUseCase creates a transaction from a bare amount, bypassing the
// recurring pipeline entirely.
type AddEntryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetChecker   BudgetChecker
	clock           adapter.Clock
}

// NewAddEntryUseCase creates a new AddEntryUseCase instance.
func NewAddEntryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetChecker BudgetChecker,
	clock adapter.Clock,
) *AddEntryUseCase {
	return &AddEntryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetChecker:   budgetChecker,
		clock:           clock,
	}
}

// Execute creates the transaction dated now, resolving the category through
// the fallback chain, then re-evaluates the monthly budget.
func (uc *AddEntryUseCase) Execute(ctx context.Context, input AddEntryInput) (*AddEntryOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	category, err := uc.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	note := QuickAddExpenseNote
	if input.Type == entity.TransactionTypeIncome {
		note = QuickAddIncomeNote
	}

	transaction := entity.NewTransaction(uc.clock.Now(), input.Amount, input.Type, category.ID, note)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create quick-add transaction: %w", err)
	}

	if uc.budgetChecker != nil {
		if _, err := uc.budgetChecker.Execute(ctx); err != nil {
			// Quick-add itself succeeded; the next mutation re-evaluates.
			slog.Warn("Budget evaluation after quick-add failed", "error", err)
		}
	}

	return &AddEntryOutput{Transaction: transaction, Category: category}, nil
}

// resolveCategory walks the fallback chain: the given id, then the "Other"
// category, then the first stored category, then a freshly created "Other".
func (uc *AddEntryUseCase) resolveCategory(ctx context.Context, id *uuid.UUID) (*entity.Category, error) {
	if id != nil {
		if category, err := uc.categoryRepo.FindByID(ctx, *id); err == nil {
			return category, nil
		}
	}

	other, err := uc.categoryRepo.FindByName(ctx, fallbackCategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up fallback category: %w", err)
	}
	if other != nil {
		return other, nil
	}

	all, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(all) > 0 {
		return all[0], nil
	}

	created := entity.NewCategory(fallbackCategoryName, entity.DefaultCategoryIcon, "", true)
	if err := uc.categoryRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create fallback category: %w", err)
	}
	return created, nil
}
