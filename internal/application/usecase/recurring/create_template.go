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

// CreateTemplateInput represents the input for template creation.
type CreateTemplateInput struct {
	Name       string
	Amount     decimal.Decimal
	CategoryID uuid.UUID
	DayOfMonth int
	Type       entity.TransactionType
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *TemplateOutput
}

// CreateTemplateUseCase handles recurring template creation.
type CreateTemplateUseCase struct {
	templateStore adapter.RecurringTemplateStore
	categoryRepo  adapter.CategoryRepository
	alerts        *SubscriptionAlertScheduler
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(
	templateStore adapter.RecurringTemplateStore,
	categoryRepo adapter.CategoryRepository,
	alerts *SubscriptionAlertScheduler,
) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateStore: templateStore,
		categoryRepo:  categoryRepo,
		alerts:        alerts,
	}
}

// Execute performs the template creation. The day of month is clamped into
// [1, 31], never rejected.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeTemplateNameRequired,
			"template name is required",
			domainerror.ErrTemplateNameRequired,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidTemplateAmount,
			"template amount must be positive",
			domainerror.ErrInvalidTemplateAmount,
		)
	}

	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingTemplateFields,
			"template type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingTemplateFields,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	template := entity.NewRecurringTemplate(
		input.Name,
		input.Amount,
		input.CategoryID,
		input.DayOfMonth,
		input.Type,
	)

	templates, err := uc.templateStore.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}

	templates = append(templates, template)
	if err := uc.templateStore.SaveAll(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save recurring templates: %w", err)
	}

	// Best effort; a scheduling failure never fails the creation.
	uc.alerts.Reschedule(ctx, template)

	return &CreateTemplateOutput{Template: ToTemplateOutput(template)}, nil
}
