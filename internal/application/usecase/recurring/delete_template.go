package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
)

// DeleteTemplateUseCase removes a recurring template.
type DeleteTemplateUseCase struct {
	templateStore adapter.RecurringTemplateStore
	alerts        *SubscriptionAlertScheduler
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(
	templateStore adapter.RecurringTemplateStore,
	alerts *SubscriptionAlertScheduler,
) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		templateStore: templateStore,
		alerts:        alerts,
	}
}

// Execute deletes the template with the given id. Deleting a non-existent id
// is a no-op, not an error. Pending subscription alerts for the template are
// cancelled either way.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	templates, err := uc.templateStore.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recurring templates: %w", err)
	}

	remaining := templates[:0]
	for _, t := range templates {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}

	if len(remaining) == len(templates) {
		slog.Debug("Delete of unknown recurring template ignored", "templateID", id)
	} else {
		if err := uc.templateStore.SaveAll(ctx, remaining); err != nil {
			return fmt.Errorf("failed to save recurring templates: %w", err)
		}
	}

	uc.alerts.CancelFor(ctx, id)

	return nil
}
