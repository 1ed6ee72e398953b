package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// TemplateOutput represents a recurring template in use case outputs.
type TemplateOutput struct {
	ID                uuid.UUID
	Name              string
	Amount            decimal.Decimal
	CategoryID        uuid.UUID
	DayOfMonth        int
	Type              entity.TransactionType
	IsActive          bool
	LastProcessedDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ToTemplateOutput converts a domain RecurringTemplate to a TemplateOutput.
func ToTemplateOutput(template *entity.RecurringTemplate) *TemplateOutput {
	return &TemplateOutput{
		ID:                template.ID,
		Name:              template.Name,
		Amount:            template.Amount,
		CategoryID:        template.CategoryID,
		DayOfMonth:        template.DayOfMonth,
		Type:              template.Type,
		IsActive:          template.IsActive,
		LastProcessedDate: template.LastProcessedDate,
		CreatedAt:         template.CreatedAt,
		UpdatedAt:         template.UpdatedAt,
	}
}
