package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// DeleteTransactionUseCase handles the business logic for transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetChecker   BudgetChecker
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetChecker BudgetChecker,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		budgetChecker:   budgetChecker,
	}
}

// Execute deletes the transaction and re-evaluates the monthly budget, which
// re-arms the alert flags when the deletion drops spending back below the
// threshold.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.transactionRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	checkBudget(ctx, uc.budgetChecker)

	return nil
}
