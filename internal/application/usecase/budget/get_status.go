package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// GetStatusOutput represents the current month's budget standing.
type GetStatusOutput struct {
	MonthlyBudget     decimal.Decimal
	Threshold         decimal.Decimal
	AlertsEnabled     bool
	Spending          decimal.Decimal
	Progress          decimal.Decimal
	Remaining         decimal.Decimal
	ThresholdNotified bool
	BudgetNotified    bool
}

// GetStatusUseCase reports budget settings alongside current-month spending.
type GetStatusUseCase struct {
	settingsRepo    adapter.SettingsRepository
	stateRepo       adapter.BudgetStateRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(
	settingsRepo adapter.SettingsRepository,
	stateRepo adapter.BudgetStateRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetStatusUseCase {
	return &GetStatusUseCase{
		settingsRepo:    settingsRepo,
		stateRepo:       stateRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute returns the budget status for the current month.
func (uc *GetStatusUseCase) Execute(ctx context.Context) (*GetStatusOutput, error) {
	settings, err := uc.settingsRepo.GetBudgetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget settings: %w", err)
	}

	now := uc.clock.Now()
	spending, err := uc.transactionRepo.MonthlyTotal(ctx, now, entity.TransactionTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly spending: %w", err)
	}

	state, err := uc.stateRepo.Get(ctx, entity.MonthKeyFor(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load budget notification state: %w", err)
	}

	return &GetStatusOutput{
		MonthlyBudget:     settings.MonthlyBudget,
		Threshold:         settings.Threshold,
		AlertsEnabled:     settings.AlertsEnabled,
		Spending:          spending,
		Progress:          Progress(spending, settings.MonthlyBudget),
		Remaining:         settings.MonthlyBudget.Sub(spending),
		ThresholdNotified: state.ThresholdNotified,
		BudgetNotified:    state.BudgetNotified,
	}, nil
}
