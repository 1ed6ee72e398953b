package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// ListTransactionsInput represents the optional filter criteria for listing.
type ListTransactionsInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Search     string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*Output
}

// ListTransactionsUseCase handles transaction queries.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute returns transactions matching the filter, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		Search:     input.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &ListTransactionsOutput{Transactions: make([]*Output, len(transactions))}
	for i, t := range transactions {
		output.Transactions[i] = ToOutput(t)
	}
	return output, nil
}
