package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeSettingsRepo struct {
	settings entity.BudgetSettings
}

func (r *fakeSettingsRepo) GetBudgetSettings(ctx context.Context) (*entity.BudgetSettings, error) {
	s := r.settings
	return &s, nil
}

func (r *fakeSettingsRepo) SaveBudgetSettings(ctx context.Context, settings *entity.BudgetSettings) error {
	r.settings = *settings
	return nil
}

func (r *fakeSettingsRepo) GetReminderSettings(ctx context.Context) (*entity.ReminderSettings, error) {
	return entity.DefaultReminderSettings(), nil
}

func (r *fakeSettingsRepo) SaveReminderSettings(ctx context.Context, settings *entity.ReminderSettings) error {
	return nil
}

type fakeStateRepo struct {
	states map[string]*entity.BudgetNotificationState
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{states: map[string]*entity.BudgetNotificationState{}}
}

func (r *fakeStateRepo) Get(ctx context.Context, key entity.MonthKey) (*entity.BudgetNotificationState, error) {
	if state, ok := r.states[key.String()]; ok {
		copied := *state
		return &copied, nil
	}
	return &entity.BudgetNotificationState{MonthKey: key, Progress: decimal.Zero}, nil
}

func (r *fakeStateRepo) Put(ctx context.Context, state *entity.BudgetNotificationState) error {
	copied := *state
	r.states[state.MonthKey.String()] = &copied
	return nil
}

func (r *fakeStateRepo) DeleteAllExcept(ctx context.Context, key entity.MonthKey) error {
	for k := range r.states {
		if k != key.String() {
			delete(r.states, k)
		}
	}
	return nil
}

type fakeSpendingRepo struct {
	spending decimal.Decimal
}

func (r *fakeSpendingRepo) MonthlyTotal(ctx context.Context, ref time.Time, transactionType entity.TransactionType) (decimal.Decimal, error) {
	return r.spending, nil
}

func (r *fakeSpendingRepo) Create(ctx context.Context, txn *entity.Transaction) error { return nil }
func (r *fakeSpendingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeSpendingRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeSpendingRepo) FindByMonth(ctx context.Context, ref time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeSpendingRepo) FindBySourceTemplateInMonth(ctx context.Context, templateID uuid.UUID, ref time.Time) (*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeSpendingRepo) MonthlyTotalsByCategory(ctx context.Context, ref time.Time, transactionType entity.TransactionType) ([]*entity.CategoryTotal, error) {
	return nil, nil
}
func (r *fakeSpendingRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}
func (r *fakeSpendingRepo) Update(ctx context.Context, txn *entity.Transaction) error { return nil }
func (r *fakeSpendingRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type fakeNotificationScheduler struct {
	scheduled   []*entity.ScheduledNotification
	scheduleErr error
}

func (s *fakeNotificationScheduler) Schedule(ctx context.Context, n *entity.ScheduledNotification) error {
	if s.scheduleErr != nil {
		return s.scheduleErr
	}
	s.scheduled = append(s.scheduled, n)
	return nil
}

func (s *fakeNotificationScheduler) Cancel(ctx context.Context, idOrPrefix string) error { return nil }

func (s *fakeNotificationScheduler) Pending(ctx context.Context) ([]*entity.ScheduledNotification, error) {
	return s.scheduled, nil
}

func enabledSettings(budget, threshold string) entity.BudgetSettings {
	return entity.BudgetSettings{
		MonthlyBudget: dec(budget),
		Threshold:     dec(threshold),
		AlertsEnabled: true,
	}
}

func TestEvaluateBudget(t *testing.T) {
	ctx := context.Background()
	march := fixedClock{time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)}

	t.Run("disabled alerts never evaluate", func(t *testing.T) {
		settings := enabledSettings("1000", "0.8")
		settings.AlertsEnabled = false
		scheduler := &fakeNotificationScheduler{}

		uc := NewEvaluateBudgetUseCase(
			&fakeSettingsRepo{settings: settings},
			newFakeStateRepo(),
			&fakeSpendingRepo{spending: dec("900")},
			scheduler,
			march,
		)

		alert, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if alert.Kind != entity.AlertNone {
			t.Errorf("expected no alert, got %q", alert.Kind)
		}
		if len(scheduler.scheduled) != 0 {
			t.Error("expected no notification scheduled")
		}
	})

	t.Run("zero budget never evaluates", func(t *testing.T) {
		uc := NewEvaluateBudgetUseCase(
			&fakeSettingsRepo{settings: enabledSettings("0", "0.8")},
			newFakeStateRepo(),
			&fakeSpendingRepo{spending: dec("900")},
			&fakeNotificationScheduler{},
			march,
		)

		alert, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if alert.Kind != entity.AlertNone {
			t.Errorf("expected no alert, got %q", alert.Kind)
		}
	})

	t.Run("crossing the threshold schedules one notification", func(t *testing.T) {
		scheduler := &fakeNotificationScheduler{}
		stateRepo := newFakeStateRepo()
		uc := NewEvaluateBudgetUseCase(
			&fakeSettingsRepo{settings: enabledSettings("1000", "0.8")},
			stateRepo,
			&fakeSpendingRepo{spending: dec("850")},
			scheduler,
			march,
		)

		alert, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if alert.Kind != entity.AlertThresholdCrossed {
			t.Fatalf("expected threshold alert, got %q", alert.Kind)
		}
		if len(scheduler.scheduled) != 1 {
			t.Fatalf("expected 1 scheduled notification, got %d", len(scheduler.scheduled))
		}
		if scheduler.scheduled[0].ID != entity.NotificationIDBudgetAlert {
			t.Errorf("unexpected notification id %q", scheduler.scheduled[0].ID)
		}

		// A second evaluation of the same month stays quiet.
		alert, err = uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if alert.Kind != entity.AlertNone {
			t.Errorf("expected no repeat alert, got %q", alert.Kind)
		}
		if len(scheduler.scheduled) != 1 {
			t.Errorf("expected still 1 scheduled notification, got %d", len(scheduler.scheduled))
		}
	})

	t.Run("flags persist even when dispatch fails", func(t *testing.T) {
		scheduler := &fakeNotificationScheduler{scheduleErr: errors.New("channel down")}
		stateRepo := newFakeStateRepo()
		uc := NewEvaluateBudgetUseCase(
			&fakeSettingsRepo{settings: enabledSettings("1000", "0.8")},
			stateRepo,
			&fakeSpendingRepo{spending: dec("850")},
			scheduler,
			march,
		)

		alert, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if alert.Kind != entity.AlertThresholdCrossed {
			t.Fatalf("expected threshold alert, got %q", alert.Kind)
		}

		state, _ := stateRepo.Get(ctx, entity.MonthKeyFor(march.Now()))
		if !state.ThresholdNotified {
			t.Error("expected threshold flag recorded despite dispatch failure")
		}
	})

	t.Run("settings change re-arms the current month", func(t *testing.T) {
		scheduler := &fakeNotificationScheduler{}
		stateRepo := newFakeStateRepo()
		settingsRepo := &fakeSettingsRepo{settings: enabledSettings("1000", "0.8")}
		spending := &fakeSpendingRepo{spending: dec("850")}

		evaluate := NewEvaluateBudgetUseCase(settingsRepo, stateRepo, spending, scheduler, march)
		update := NewUpdateSettingsUseCase(settingsRepo, stateRepo, march)

		if alert, _ := evaluate.Execute(ctx); alert.Kind != entity.AlertThresholdCrossed {
			t.Fatalf("expected initial threshold alert, got %q", alert.Kind)
		}

		// Lowering the budget clears the flags, so the next check fires again
		// against the new limits.
		err := update.Execute(ctx, UpdateSettingsInput{
			MonthlyBudget: dec("900"),
			Threshold:     dec("0.8"),
			AlertsEnabled: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if alert, _ := evaluate.Execute(ctx); alert.Kind != entity.AlertThresholdCrossed {
			t.Errorf("expected alert to fire again after settings change, got %q", alert.Kind)
		}
	})
}

func TestUpdateSettingsValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewUpdateSettingsUseCase(
		&fakeSettingsRepo{},
		newFakeStateRepo(),
		fixedClock{time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)},
	)

	t.Run("rejects a negative budget", func(t *testing.T) {
		err := uc.Execute(ctx, UpdateSettingsInput{
			MonthlyBudget: dec("-1"),
			Threshold:     dec("0.8"),
		})
		if err == nil {
			t.Error("expected an error for a negative budget")
		}
	})

	t.Run("rejects a threshold above one", func(t *testing.T) {
		err := uc.Execute(ctx, UpdateSettingsInput{
			MonthlyBudget: dec("1000"),
			Threshold:     dec("1.5"),
		})
		if err == nil {
			t.Error("expected an error for a threshold above 1")
		}
	})

	t.Run("rejects a zero threshold", func(t *testing.T) {
		err := uc.Execute(ctx, UpdateSettingsInput{
			MonthlyBudget: dec("1000"),
			Threshold:     dec("0"),
		})
		if err == nil {
			t.Error("expected an error for a zero threshold")
		}
	})

	t.Run("accepts a zero budget to clear the limit", func(t *testing.T) {
		err := uc.Execute(ctx, UpdateSettingsInput{
			MonthlyBudget: dec("0"),
			Threshold:     dec("0.8"),
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSweepState(t *testing.T) {
	ctx := context.Background()
	stateRepo := newFakeStateRepo()

	february := entity.MonthKey{Year: 2026, Month: time.February}
	march := entity.MonthKey{Year: 2026, Month: time.March}
	_ = stateRepo.Put(ctx, &entity.BudgetNotificationState{MonthKey: february, ThresholdNotified: true})
	_ = stateRepo.Put(ctx, &entity.BudgetNotificationState{MonthKey: march})

	uc := NewSweepStateUseCase(stateRepo, fixedClock{time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)})
	if err := uc.Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := stateRepo.states[february.String()]; ok {
		t.Error("expected stale february state to be swept")
	}
	if _, ok := stateRepo.states[march.String()]; !ok {
		t.Error("expected current month state to survive")
	}
}
