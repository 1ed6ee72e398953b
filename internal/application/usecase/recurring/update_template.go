package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// UpdateTemplateInput represents the input for template update. Nil fields
// are left unchanged.
type UpdateTemplateInput struct {
	ID         uuid.UUID
	Name       *string
	Amount     *decimal.Decimal
	CategoryID *uuid.UUID
	DayOfMonth *int
	Type       *entity.TransactionType
}

// UpdateTemplateOutput represents the output of template update.
type UpdateTemplateOutput struct {
	Template *TemplateOutput
}

// UpdateTemplateUseCase handles recurring template edits.
type UpdateTemplateUseCase struct {
	templateStore adapter.RecurringTemplateStore
	categoryRepo  adapter.CategoryRepository
	alerts        *SubscriptionAlertScheduler
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(
	templateStore adapter.RecurringTemplateStore,
	categoryRepo adapter.CategoryRepository,
	alerts *SubscriptionAlertScheduler,
) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		templateStore: templateStore,
		categoryRepo:  categoryRepo,
		alerts:        alerts,
	}
}

// Execute performs the template update, refreshing the updated timestamp.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	templates, err := uc.templateStore.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}

	template := findTemplate(templates, input.ID)
	if template == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeTemplateNotFound,
			"recurring template not found",
			domainerror.ErrTemplateNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeTemplateNameRequired,
				"template name is required",
				domainerror.ErrTemplateNameRequired,
			)
		}
		template.Name = *input.Name
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidTemplateAmount,
				"template amount must be positive",
				domainerror.ErrInvalidTemplateAmount,
			)
		}
		template.Amount = *input.Amount
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingTemplateFields,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		template.CategoryID = *input.CategoryID
	}

	if input.DayOfMonth != nil {
		template.DayOfMonth = entity.ClampDayOfMonth(*input.DayOfMonth)
	}

	if input.Type != nil {
		if *input.Type != entity.TransactionTypeExpense && *input.Type != entity.TransactionTypeIncome {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingTemplateFields,
				"template type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		template.Type = *input.Type
	}

	template.Touch()

	if err := uc.templateStore.SaveAll(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save recurring templates: %w", err)
	}

	uc.alerts.Reschedule(ctx, template)

	return &UpdateTemplateOutput{Template: ToTemplateOutput(template)}, nil
}

// findTemplate returns the template with the given id, or nil.
func findTemplate(templates []*entity.RecurringTemplate, id uuid.UUID) *entity.RecurringTemplate {
	for _, t := range templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}
