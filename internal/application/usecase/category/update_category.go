package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged.
type UpdateCategoryInput struct {
	ID    uuid.UUID
	Name  *string
	Icon  *string
	Color *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category edits.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeMissingCategoryFields,
				fmt.Sprintf("category name must be 1 to %d characters", MaxCategoryNameLength),
				nil,
			)
		}

		existing, err := uc.categoryRepo.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if existing != nil && existing.ID != category.ID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameTaken,
				"a category with this name already exists",
				domainerror.ErrCategoryNameTaken,
			)
		}
		category.Name = *input.Name
	}

	if input.Icon != nil {
		category.Icon = *input.Icon
	}

	if input.Color != nil {
		if *input.Color != "" && !hexColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeMissingCategoryFields,
				"color must be a valid hex format (#XXXXXX)",
				nil,
			)
		}
		category.Color = *input.Color
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
