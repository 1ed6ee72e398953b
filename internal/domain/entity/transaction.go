// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a realized expense or income record.
type Transaction struct {
	ID         uuid.UUID
	Date       time.Time
	Amount     decimal.Decimal
	Type       TransactionType
	CategoryID uuid.UUID
	Note       string

	// SourceTemplateID links a materialized transaction back to the recurring
	// template that produced it. Nil for transactions entered directly.
	SourceTemplateID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	date time.Time,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID uuid.UUID,
	note string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		Date:       date,
		Amount:     amount,
		Type:       transactionType,
		CategoryID: categoryID,
		Note:       note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewMaterializedTransaction creates a Transaction produced from a recurring
// template. The note carries the template name for display; the link itself
// is the SourceTemplateID foreign key.
func NewMaterializedTransaction(template *RecurringTemplate, date time.Time) *Transaction {
	txn := NewTransaction(date, template.Amount, template.Type, template.CategoryID, template.Name)
	templateID := template.ID
	txn.SourceTemplateID = &templateID
	return txn
}

// IsIncome reports whether the transaction is an income record.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// SignedAmount returns the amount negated for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionTotals represents aggregated totals for a period.
type TransactionTotals struct {
	ExpenseTotal decimal.Decimal
	IncomeTotal  decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryTotal represents the amount accumulated by one category in a period.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Total      decimal.Decimal
}
