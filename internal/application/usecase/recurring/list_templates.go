package recurring

import (
	"context"
	"fmt"

	"github.com/pockets-tracker/backend/internal/application/adapter"
)

// ListTemplatesOutput represents the output of listing templates.
type ListTemplatesOutput struct {
	Templates []*TemplateOutput
}

// ListTemplatesUseCase lists all recurring templates.
type ListTemplatesUseCase struct {
	templateStore adapter.RecurringTemplateStore
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateStore adapter.RecurringTemplateStore) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{templateStore: templateStore}
}

// Execute returns all templates in stored order.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context) (*ListTemplatesOutput, error) {
	templates, err := uc.templateStore.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}

	output := &ListTemplatesOutput{Templates: make([]*TemplateOutput, len(templates))}
	for i, t := range templates {
		output.Templates[i] = ToTemplateOutput(t)
	}
	return output, nil
}
