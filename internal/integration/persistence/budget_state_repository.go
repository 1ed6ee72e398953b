package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	"github.com/pockets-tracker/backend/internal/integration/persistence/model"
)

// budgetStateRepository implements the adapter.BudgetStateRepository interface.
type budgetStateRepository struct {
	db *gorm.DB
}

// NewBudgetStateRepository creates a new budget state repository instance.
func NewBudgetStateRepository(db *gorm.DB) adapter.BudgetStateRepository {
	return &budgetStateRepository{
		db: db,
	}
}

// Get retrieves the state for a month key. A missing record yields a
// zero-value state for that key.
func (r *budgetStateRepository) Get(ctx context.Context, key entity.MonthKey) (*entity.BudgetNotificationState, error) {
	var stateModel model.BudgetStateModel
	result := r.db.WithContext(ctx).Where("month_key = ?", key.String()).First(&stateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.BudgetNotificationState{
				MonthKey: key,
				Progress: decimal.Zero,
			}, nil
		}
		return nil, result.Error
	}
	return stateModel.ToEntity(), nil
}

// Put persists the state for its month key, creating or overwriting.
func (r *budgetStateRepository) Put(ctx context.Context, state *entity.BudgetNotificationState) error {
	stateModel := model.BudgetStateFromEntity(state)
	result := r.db.WithContext(ctx).Save(stateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteAllExcept drops every stored month record except the given key.
func (r *budgetStateRepository) DeleteAllExcept(ctx context.Context, key entity.MonthKey) error {
	result := r.db.WithContext(ctx).
		Where("month_key <> ?", key.String()).
		Delete(&model.BudgetStateModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
