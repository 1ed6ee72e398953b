package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for budget settings update.
type UpdateSettingsInput struct {
	MonthlyBudget decimal.Decimal
	Threshold     decimal.Decimal
	AlertsEnabled bool
}

// UpdateSettingsUseCase persists budget configuration changes.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	stateRepo    adapter.BudgetStateRepository
	clock        adapter.Clock
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(
	settingsRepo adapter.SettingsRepository,
	stateRepo adapter.BudgetStateRepository,
	clock adapter.Clock,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		stateRepo:    stateRepo,
		clock:        clock,
	}
}

// Execute validates and saves the settings, then clears the current month's
// notification flags so alerts re-evaluate against the new limits. Recorded
// progress is left untouched; the next evaluation recomputes it anyway.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) error {
	if input.MonthlyBudget.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"monthly budget must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	one := decimal.NewFromInt(1)
	if !input.Threshold.IsPositive() || input.Threshold.GreaterThan(one) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetThreshold,
			"threshold must be within (0, 1]",
			domainerror.ErrInvalidBudgetThreshold,
		)
	}

	settings := &entity.BudgetSettings{
		MonthlyBudget: input.MonthlyBudget,
		Threshold:     input.Threshold,
		AlertsEnabled: input.AlertsEnabled,
	}
	if err := uc.settingsRepo.SaveBudgetSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save budget settings: %w", err)
	}

	key := entity.MonthKeyFor(uc.clock.Now())
	state, err := uc.stateRepo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load budget notification state: %w", err)
	}

	state.ThresholdNotified = false
	state.BudgetNotified = false
	if err := uc.stateRepo.Put(ctx, state); err != nil {
		return fmt.Errorf("failed to reset budget notification state: %w", err)
	}

	return nil
}
