package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// ToggleTemplateOutput represents the output of toggling a template.
type ToggleTemplateOutput struct {
	Template *TemplateOutput
}

// ToggleTemplateUseCase flips a template's active flag.
type ToggleTemplateUseCase struct {
	templateStore adapter.RecurringTemplateStore
	alerts        *SubscriptionAlertScheduler
}

// NewToggleTemplateUseCase creates a new ToggleTemplateUseCase instance.
func NewToggleTemplateUseCase(
	templateStore adapter.RecurringTemplateStore,
	alerts *SubscriptionAlertScheduler,
) *ToggleTemplateUseCase {
	return &ToggleTemplateUseCase{
		templateStore: templateStore,
		alerts:        alerts,
	}
}

// Execute toggles the active flag and refreshes the updated timestamp.
// Deactivated templates keep their last-processed marker.
func (uc *ToggleTemplateUseCase) Execute(ctx context.Context, id uuid.UUID) (*ToggleTemplateOutput, error) {
	templates, err := uc.templateStore.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}

	template := findTemplate(templates, id)
	if template == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeTemplateNotFound,
			"recurring template not found",
			domainerror.ErrTemplateNotFound,
		)
	}

	template.IsActive = !template.IsActive
	template.Touch()

	if err := uc.templateStore.SaveAll(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save recurring templates: %w", err)
	}

	uc.alerts.Reschedule(ctx, template)

	return &ToggleTemplateOutput{Template: ToTemplateOutput(template)}, nil
}
