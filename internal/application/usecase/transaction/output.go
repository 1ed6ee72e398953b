package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// Output represents a transaction returned by the use cases.
type Output struct {
	ID               uuid.UUID
	Date             time.Time
	Amount           decimal.Decimal
	Type             entity.TransactionType
	CategoryID       uuid.UUID
	Note             string
	SourceTemplateID *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ToOutput maps a transaction entity to its output representation.
func ToOutput(t *entity.Transaction) *Output {
	return &Output{
		ID:               t.ID,
		Date:             t.Date,
		Amount:           t.Amount,
		Type:             t.Type,
		CategoryID:       t.CategoryID,
		Note:             t.Note,
		SourceTemplateID: t.SourceTemplateID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
