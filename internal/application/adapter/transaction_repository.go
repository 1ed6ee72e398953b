// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// TransactionFilter represents filter criteria for querying transactions.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Search     string
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database. The write is committed
	// synchronously so that other processes sharing the store observe it.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByMonth retrieves all transactions dated within the month containing ref.
	FindByMonth(ctx context.Context, ref time.Time) ([]*entity.Transaction, error)

	// FindBySourceTemplateInMonth retrieves the transaction materialized from the
	// given template within the month containing ref, or nil if none exists.
	FindBySourceTemplateInMonth(ctx context.Context, templateID uuid.UUID, ref time.Time) (*entity.Transaction, error)

	// MonthlyTotal sums transaction amounts of the given type within the month containing ref.
	MonthlyTotal(ctx context.Context, ref time.Time, transactionType entity.TransactionType) (decimal.Decimal, error)

	// MonthlyTotalsByCategory sums amounts of the given type per category within the month.
	MonthlyTotalsByCategory(ctx context.Context, ref time.Time, transactionType entity.TransactionType) ([]*entity.CategoryTotal, error)

	// CountByCategory counts transactions referencing the given category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
