// Package transaction contains transaction management use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// MaxNoteLength bounds the free-text note.
const MaxNoteLength = 500

// CreateTransactionInput represents the input data for creating a transaction.
type CreateTransactionInput struct {
	Date       time.Time
	Amount     decimal.Decimal
	Type       entity.TransactionType
	CategoryID uuid.UUID
	Note       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *Output
}

// CreateTransactionUseCase handles the business logic for transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetChecker   BudgetChecker
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetChecker BudgetChecker,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetChecker:   budgetChecker,
	}
}

// Execute validates and persists a new transaction, then re-evaluates the
// monthly budget.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Amount, input.Type, input.Note); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	transaction := entity.NewTransaction(input.Date, input.Amount, input.Type, input.CategoryID, input.Note)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	checkBudget(ctx, uc.budgetChecker)

	return &CreateTransactionOutput{Transaction: ToOutput(transaction)}, nil
}

// validateTransactionFields applies the shared create/update validations.
func validateTransactionFields(amount decimal.Decimal, transactionType entity.TransactionType, note string) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if len(note) > MaxNoteLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			"note exceeds maximum length",
			domainerror.ErrNoteTooLong,
		)
	}

	return nil
}
