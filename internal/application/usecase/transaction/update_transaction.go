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

// UpdateTransactionInput represents the input data for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	ID         uuid.UUID
	Date       *time.Time
	Amount     *decimal.Decimal
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	Note       *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *Output
}

// UpdateTransactionUseCase handles the business logic for transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetChecker   BudgetChecker
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetChecker BudgetChecker,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetChecker:   budgetChecker,
	}
}

// Execute applies the changes and re-evaluates the monthly budget. Editing a
// materialized transaction keeps its template link intact.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Note != nil {
		transaction.Note = *input.Note
	}

	if err := validateTransactionFields(transaction.Amount, transaction.Type, transaction.Note); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		transaction.CategoryID = *input.CategoryID
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	checkBudget(ctx, uc.budgetChecker)

	return &UpdateTransactionOutput{Transaction: ToOutput(transaction)}, nil
}
