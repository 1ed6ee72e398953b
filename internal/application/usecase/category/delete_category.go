package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// DeleteCategoryUseCase handles category deletion.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute deletes the category. A category still referenced by transactions
// cannot be removed.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	count, err := uc.transactionRepo.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"category still has transactions",
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
