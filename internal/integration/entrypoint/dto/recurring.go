package dto

import (
	"time"

	"github.com/pockets-tracker/backend/internal/application/usecase/recurring"
)

// CreateTemplateRequest represents the request body for template creation.
type CreateTemplateRequest struct {
	Name       string `json:"name" binding:"required,min=1"`
	Amount     string `json:"amount" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required,uuid"`
	DayOfMonth int    `json:"dayOfMonth" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=expense income"`
}

// UpdateTemplateRequest represents the request body for template update.
type UpdateTemplateRequest struct {
	Name       *string `json:"name,omitempty"`
	Amount     *string `json:"amount,omitempty"`
	CategoryID *string `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	DayOfMonth *int    `json:"dayOfMonth,omitempty"`
	Type       *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// TemplateResponse represents a single recurring template in API responses.
type TemplateResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Amount            string     `json:"amount"`
	CategoryID        string     `json:"categoryId"`
	DayOfMonth        int        `json:"dayOfMonth"`
	Type              string     `json:"type"`
	IsActive          bool       `json:"isActive"`
	LastProcessedDate *time.Time `json:"lastProcessedDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// TemplateListResponse represents the response for listing templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ProcessTemplatesResponse reports the outcome of a materialization pass.
type ProcessTemplatesResponse struct {
	Processed           int                   `json:"processed"`
	CreatedTransactions []TransactionResponse `json:"createdTransactions"`
}

// ToTemplateResponse converts a use case output to a TemplateResponse DTO.
func ToTemplateResponse(output *recurring.TemplateOutput) TemplateResponse {
	return TemplateResponse{
		ID:                output.ID.String(),
		Name:              output.Name,
		Amount:            output.Amount.String(),
		CategoryID:        output.CategoryID.String(),
		DayOfMonth:        output.DayOfMonth,
		Type:              string(output.Type),
		IsActive:          output.IsActive,
		LastProcessedDate: output.LastProcessedDate,
		CreatedAt:         output.CreatedAt,
		UpdatedAt:         output.UpdatedAt,
	}
}

// ToTemplateListResponse converts a list of outputs to a TemplateListResponse.
func ToTemplateListResponse(outputs []*recurring.TemplateOutput) TemplateListResponse {
	templates := make([]TemplateResponse, len(outputs))
	for i, output := range outputs {
		templates[i] = ToTemplateResponse(output)
	}
	return TemplateListResponse{
		Templates: templates,
	}
}
