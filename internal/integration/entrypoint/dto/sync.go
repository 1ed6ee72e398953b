package dto

import (
	"github.com/pockets-tracker/backend/internal/application/usecase/sync"
)

// SyncResponse reports what one sync pass did.
type SyncResponse struct {
	TemplatesProcessed  int  `json:"templatesProcessed"`
	TransactionsCreated int  `json:"transactionsCreated"`
	BudgetAlertRaised   bool `json:"budgetAlertRaised"`
}

// ToSyncResponse converts a use case output to a SyncResponse DTO.
func ToSyncResponse(output *sync.RunSyncOutput) SyncResponse {
	return SyncResponse{
		TemplatesProcessed:  output.TemplatesProcessed,
		TransactionsCreated: output.TransactionsCreated,
		BudgetAlertRaised:   output.BudgetAlertRaised,
	}
}
