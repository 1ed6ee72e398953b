// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type       string          `gorm:"type:varchar(10);not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Note       string          `gorm:"type:text"`

	// SourceTemplateID links back to the recurring template that produced
	// this row. The per-month uniqueness check filters on it.
	SourceTemplateID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:               m.ID,
		Date:             m.Date,
		Amount:           m.Amount,
		Type:             entity.TransactionType(m.Type),
		CategoryID:       m.CategoryID,
		Note:             m.Note,
		SourceTemplateID: m.SourceTemplateID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToEntityWithCategory converts the model and its preloaded category.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:               transaction.ID,
		Date:             transaction.Date,
		Amount:           transaction.Amount,
		Type:             string(transaction.Type),
		CategoryID:       transaction.CategoryID,
		Note:             transaction.Note,
		SourceTemplateID: transaction.SourceTemplateID,
		CreatedAt:        transaction.CreatedAt,
		UpdatedAt:        transaction.UpdatedAt,
	}
}
