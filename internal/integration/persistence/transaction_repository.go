// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
	"github.com/pockets-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(note) LIKE ?", searchPattern)
	}

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindByMonth retrieves all transactions dated within the month containing ref.
func (r *transactionRepository) FindByMonth(ctx context.Context, ref time.Time) ([]*entity.Transaction, error) {
	start, end := monthRange(ref)

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindBySourceTemplateInMonth retrieves the transaction materialized from the
// given template within the month containing ref, or nil if none exists.
func (r *transactionRepository) FindBySourceTemplateInMonth(ctx context.Context, templateID uuid.UUID, ref time.Time) (*entity.Transaction, error) {
	start, end := monthRange(ref)

	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("source_template_id = ?", templateID).
		Where("date >= ? AND date < ?", start, end).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// MonthlyTotal sums transaction amounts of the given type within the month containing ref.
func (r *transactionRepository) MonthlyTotal(ctx context.Context, ref time.Time, transactionType entity.TransactionType) (decimal.Decimal, error) {
	start, end := monthRange(ref)

	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("type = ?", string(transactionType)).
		Where("date >= ? AND date < ?", start, end).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// MonthlyTotalsByCategory sums amounts of the given type per category within the month.
func (r *transactionRepository) MonthlyTotalsByCategory(ctx context.Context, ref time.Time, transactionType entity.TransactionType) ([]*entity.CategoryTotal, error) {
	start, end := monthRange(ref)

	var rows []struct {
		CategoryID uuid.UUID       `gorm:"column:category_id"`
		Total      decimal.Decimal `gorm:"column:total"`
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, COALESCE(SUM(amount), 0) as total").
		Where("type = ?", string(transactionType)).
		Where("date >= ? AND date < ?", start, end).
		Group("category_id").
		Order("total DESC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]*entity.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = &entity.CategoryTotal{
			CategoryID: row.CategoryID,
			Total:      row.Total,
		}
	}
	return totals, nil
}

// CountByCategory counts transactions referencing the given category.
func (r *transactionRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// monthRange returns [start, end) bounds for the month containing ref.
func monthRange(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 1, 0)
}
