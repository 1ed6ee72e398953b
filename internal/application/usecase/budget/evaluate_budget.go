package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// EvaluateBudgetUseCase re-runs the threshold check for the current month.
// It is invoked after every mutation that can change monthly spending.
type EvaluateBudgetUseCase struct {
	settingsRepo    adapter.SettingsRepository
	stateRepo       adapter.BudgetStateRepository
	transactionRepo adapter.TransactionRepository
	scheduler       adapter.NotificationScheduler
	clock           adapter.Clock
}

// NewEvaluateBudgetUseCase creates a new EvaluateBudgetUseCase instance.
func NewEvaluateBudgetUseCase(
	settingsRepo adapter.SettingsRepository,
	stateRepo adapter.BudgetStateRepository,
	transactionRepo adapter.TransactionRepository,
	scheduler adapter.NotificationScheduler,
	clock adapter.Clock,
) *EvaluateBudgetUseCase {
	return &EvaluateBudgetUseCase{
		settingsRepo:    settingsRepo,
		stateRepo:       stateRepo,
		transactionRepo: transactionRepo,
		scheduler:       scheduler,
		clock:           clock,
	}
}

// Execute evaluates the current month's spending against the configured
// budget and raises at most one alert. The de-duplication flags are persisted
// even when notification dispatch fails, so a broken channel never causes a
// repeat alert later.
func (uc *EvaluateBudgetUseCase) Execute(ctx context.Context) (entity.BudgetAlert, error) {
	settings, err := uc.settingsRepo.GetBudgetSettings(ctx)
	if err != nil {
		return entity.NoneAlert(), fmt.Errorf("failed to load budget settings: %w", err)
	}

	if !settings.AlertsEnabled || !settings.MonthlyBudget.IsPositive() {
		return entity.NoneAlert(), nil
	}

	now := uc.clock.Now()
	spending, err := uc.transactionRepo.MonthlyTotal(ctx, now, entity.TransactionTypeExpense)
	if err != nil {
		return entity.NoneAlert(), fmt.Errorf("failed to compute monthly spending: %w", err)
	}

	key := entity.MonthKeyFor(now)
	state, err := uc.stateRepo.Get(ctx, key)
	if err != nil {
		return entity.NoneAlert(), fmt.Errorf("failed to load budget notification state: %w", err)
	}

	alert := Decide(state, Progress(spending, settings.MonthlyBudget), settings.Threshold)

	if err := uc.stateRepo.Put(ctx, state); err != nil {
		return entity.NoneAlert(), fmt.Errorf("failed to persist budget notification state: %w", err)
	}

	if alert.Kind != entity.AlertNone {
		uc.dispatch(ctx, alert, now)
	}

	return alert, nil
}

// dispatch schedules the alert notification for immediate delivery. Failures
// are logged; the decision has already been recorded.
func (uc *EvaluateBudgetUseCase) dispatch(ctx context.Context, alert entity.BudgetAlert, now time.Time) {
	percent := alert.Progress.Mul(decimal.NewFromInt(100)).Round(0)

	var title, body string
	switch alert.Kind {
	case entity.AlertBudgetExceeded:
		title = "Budget Exceeded"
		body = fmt.Sprintf("You have spent %s%% of your monthly budget.", percent.String())
	default:
		title = "Budget Alert"
		body = fmt.Sprintf("You have used %s%% of your monthly budget.", percent.String())
	}

	notification := entity.NewScheduledNotification(entity.NotificationIDBudgetAlert, title, body, now, entity.RepeatNone)
	if err := uc.scheduler.Schedule(ctx, notification); err != nil {
		slog.Warn("Failed to schedule budget alert notification",
			"kind", alert.Kind,
			"error", err,
		)
	}
}
