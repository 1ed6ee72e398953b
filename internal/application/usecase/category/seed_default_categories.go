package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// SeedDefaultCategoriesUseCase populates the starter categories on first run.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute seeds the default categories when the store is empty. A non-empty
// store is left untouched, so user deletions of defaults stick.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context) error {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, category := range entity.DefaultCategories() {
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}

	slog.Info("Seeded default categories")
	return nil
}
