package dto

import (
	"time"

	"github.com/pockets-tracker/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date       string `json:"date" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=expense income"`
	CategoryID string `json:"categoryId" binding:"required,uuid"`
	Note       string `json:"note,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date       *string `json:"date,omitempty"`
	Amount     *string `json:"amount,omitempty"`
	Type       *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID *string `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	Note       *string `json:"note,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	Amount           string    `json:"amount"`
	Type             string    `json:"type"`
	CategoryID       string    `json:"categoryId"`
	Note             string    `json:"note"`
	SourceTemplateID *string   `json:"sourceTemplateId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a use case output to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.Output) TransactionResponse {
	response := TransactionResponse{
		ID:         output.ID.String(),
		Date:       output.Date.Format("2006-01-02"),
		Amount:     output.Amount.String(),
		Type:       string(output.Type),
		CategoryID: output.CategoryID.String(),
		Note:       output.Note,
		CreatedAt:  output.CreatedAt,
		UpdatedAt:  output.UpdatedAt,
	}
	if output.SourceTemplateID != nil {
		id := output.SourceTemplateID.String()
		response.SourceTemplateID = &id
	}
	return response
}

// ToTransactionListResponse converts a list of outputs to a TransactionListResponse.
func ToTransactionListResponse(outputs []*transaction.Output) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
