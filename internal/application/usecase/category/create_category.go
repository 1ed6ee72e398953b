// Package category contains category management use cases.
package category

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// hexColorRegex is compiled once at package level.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Icon  string // Optional, defaults to DefaultCategoryIcon
	Color string // Optional hex color
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. Names are unique across the store.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" || len(input.Name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			fmt.Sprintf("category name must be 1 to %d characters", MaxCategoryNameLength),
			nil,
		)
	}

	if input.Color != "" && !hexColorRegex.MatchString(input.Color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"color must be a valid hex format (#XXXXXX)",
			nil,
		)
	}

	existing, err := uc.categoryRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTaken,
			"a category with this name already exists",
			domainerror.ErrCategoryNameTaken,
		)
	}

	category := entity.NewCategory(input.Name, input.Icon, input.Color, false)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
