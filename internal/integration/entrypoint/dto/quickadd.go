package dto

import (
	"github.com/pockets-tracker/backend/internal/application/usecase/quickadd"
)

// QuickAddRequest represents the request body for a quick-add entry.
type QuickAddRequest struct {
	Amount     string  `json:"amount" binding:"required"`
	Type       string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID *string `json:"categoryId,omitempty" binding:"omitempty,uuid"`
}

// QuickAddResponse represents the created entry and its resolved category.
type QuickAddResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Category    CategoryResponse    `json:"category"`
}

// ToQuickAddResponse converts a use case output to a QuickAddResponse DTO.
func ToQuickAddResponse(output *quickadd.AddEntryOutput) QuickAddResponse {
	response := QuickAddResponse{
		Category: ToCategoryResponse(output.Category),
	}
	response.Transaction = TransactionResponse{
		ID:         output.Transaction.ID.String(),
		Date:       output.Transaction.Date.Format("2006-01-02"),
		Amount:     output.Transaction.Amount.String(),
		Type:       string(output.Transaction.Type),
		CategoryID: output.Transaction.CategoryID.String(),
		Note:       output.Transaction.Note,
		CreatedAt:  output.Transaction.CreatedAt,
		UpdatedAt:  output.Transaction.UpdatedAt,
	}
	return response
}
