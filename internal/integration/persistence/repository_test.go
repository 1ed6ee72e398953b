package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
	"github.com/pockets-tracker/backend/internal/integration/persistence/model"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetStateModel{},
		&model.ScheduledNotificationModel{},
		&model.SettingModel{},
	))
	return db
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)

	t.Run("create and find by id", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		txn := entity.NewTransaction(march, decimal.NewFromFloat(42.50), entity.TransactionTypeExpense, uuid.New(), "Groceries")
		require.NoError(t, repo.Create(ctx, txn))

		found, err := repo.FindByID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, txn.ID, found.ID)
		assert.True(t, found.Amount.Equal(decimal.NewFromFloat(42.50)))
		assert.Equal(t, "Groceries", found.Note)
	})

	t.Run("find by id returns a domain error when absent", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})

	t.Run("monthly total sums only the given type inside the month", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		categoryID := uuid.New()

		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march, decimal.NewFromInt(100), entity.TransactionTypeExpense, categoryID, "")))
		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march.AddDate(0, 0, 1), decimal.NewFromInt(50), entity.TransactionTypeExpense, categoryID, "")))
		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march, decimal.NewFromInt(999), entity.TransactionTypeIncome, categoryID, "")))
		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march.AddDate(0, -1, 0), decimal.NewFromInt(77), entity.TransactionTypeExpense, categoryID, "")))

		total, err := repo.MonthlyTotal(ctx, march, entity.TransactionTypeExpense)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(150)), "got %s", total)
	})

	t.Run("finds the materialized transaction for a template in a month", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		template := entity.NewRecurringTemplate("Netflix", decimal.NewFromFloat(15.99), uuid.New(), 5, entity.TransactionTypeExpense)

		found, err := repo.FindBySourceTemplateInMonth(ctx, template.ID, march)
		require.NoError(t, err)
		assert.Nil(t, found, "expected no match before materialization")

		materialized := entity.NewMaterializedTransaction(template, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.Create(ctx, materialized))

		found, err = repo.FindBySourceTemplateInMonth(ctx, template.ID, march)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, materialized.ID, found.ID)

		// The previous month stays unmatched.
		found, err = repo.FindBySourceTemplateInMonth(ctx, template.ID, march.AddDate(0, -1, 0))
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("filter matches note substrings case-insensitively", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		categoryID := uuid.New()

		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march, decimal.NewFromInt(10), entity.TransactionTypeExpense, categoryID, "Coffee beans")))
		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march, decimal.NewFromInt(20), entity.TransactionTypeExpense, categoryID, "Rent")))

		results, err := repo.FindByFilter(ctx, adapter.TransactionFilter{Search: "COFFEE"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Coffee beans", results[0].Note)
	})

	t.Run("count by category", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		categoryID := uuid.New()

		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march, decimal.NewFromInt(10), entity.TransactionTypeExpense, categoryID, "")))
		require.NoError(t, repo.Create(ctx, entity.NewTransaction(march, decimal.NewFromInt(10), entity.TransactionTypeExpense, uuid.New(), "")))

		count, err := repo.CountByCategory(ctx, categoryID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func TestBudgetStateRepository(t *testing.T) {
	ctx := context.Background()
	march := entity.MonthKey{Year: 2026, Month: time.March}

	t.Run("missing month yields a zero state", func(t *testing.T) {
		repo := NewBudgetStateRepository(newTestDB(t))

		state, err := repo.Get(ctx, march)
		require.NoError(t, err)
		assert.Equal(t, march, state.MonthKey)
		assert.False(t, state.ThresholdNotified)
		assert.False(t, state.BudgetNotified)
	})

	t.Run("put and get round-trip", func(t *testing.T) {
		repo := NewBudgetStateRepository(newTestDB(t))

		require.NoError(t, repo.Put(ctx, &entity.BudgetNotificationState{
			MonthKey:          march,
			ThresholdNotified: true,
			Progress:          decimal.NewFromFloat(0.85),
		}))

		state, err := repo.Get(ctx, march)
		require.NoError(t, err)
		assert.True(t, state.ThresholdNotified)
		assert.False(t, state.BudgetNotified)
		assert.True(t, state.Progress.Equal(decimal.NewFromFloat(0.85)))
	})

	t.Run("put overwrites the existing month", func(t *testing.T) {
		repo := NewBudgetStateRepository(newTestDB(t))

		require.NoError(t, repo.Put(ctx, &entity.BudgetNotificationState{MonthKey: march, ThresholdNotified: true}))
		require.NoError(t, repo.Put(ctx, &entity.BudgetNotificationState{MonthKey: march}))

		state, err := repo.Get(ctx, march)
		require.NoError(t, err)
		assert.False(t, state.ThresholdNotified)
	})

	t.Run("delete all except keeps only the current month", func(t *testing.T) {
		repo := NewBudgetStateRepository(newTestDB(t))
		february := entity.MonthKey{Year: 2026, Month: time.February}

		require.NoError(t, repo.Put(ctx, &entity.BudgetNotificationState{MonthKey: february, BudgetNotified: true}))
		require.NoError(t, repo.Put(ctx, &entity.BudgetNotificationState{MonthKey: march, ThresholdNotified: true}))

		require.NoError(t, repo.DeleteAllExcept(ctx, march))

		kept, err := repo.Get(ctx, march)
		require.NoError(t, err)
		assert.True(t, kept.ThresholdNotified)

		swept, err := repo.Get(ctx, february)
		require.NoError(t, err)
		assert.False(t, swept.BudgetNotified, "expected the stale month to read as a zero state")
	})
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	fireAt := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)

	t.Run("scheduling the same id replaces the pending notification", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))

		first := entity.NewScheduledNotification("budgetAlert", "Budget Alert", "80%", fireAt, entity.RepeatNone)
		second := entity.NewScheduledNotification("budgetAlert", "Budget Exceeded", "105%", fireAt, entity.RepeatNone)
		require.NoError(t, repo.Schedule(ctx, first))
		require.NoError(t, repo.Schedule(ctx, second))

		pending, err := repo.Pending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Budget Exceeded", pending[0].Title)
	})

	t.Run("cancel removes by prefix", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))
		templateID := uuid.NewString()

		due := entity.NewScheduledNotification("subscription_"+templateID, "Subscription Due Today", "Netflix", fireAt, entity.RepeatMonthly)
		reminder := entity.NewScheduledNotification("subscription_"+templateID+"_reminder", "Subscription Due Tomorrow", "Netflix", fireAt.AddDate(0, 0, -1), entity.RepeatMonthly)
		other := entity.NewScheduledNotification("budgetAlert", "Budget Alert", "80%", fireAt, entity.RepeatNone)
		require.NoError(t, repo.Schedule(ctx, due))
		require.NoError(t, repo.Schedule(ctx, reminder))
		require.NoError(t, repo.Schedule(ctx, other))

		require.NoError(t, repo.Cancel(ctx, "subscription_"+templateID))

		pending, err := repo.Pending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "budgetAlert", pending[0].ID)
	})

	t.Run("due honors fire time and status", func(t *testing.T) {
		repo := NewNotificationRepository(newTestDB(t))

		ready := entity.NewScheduledNotification("budgetAlert", "Budget Alert", "80%", fireAt, entity.RepeatNone)
		future := entity.NewScheduledNotification("subscription_x", "Subscription Due Today", "Netflix", fireAt.AddDate(0, 0, 3), entity.RepeatMonthly)
		require.NoError(t, repo.Schedule(ctx, ready))
		require.NoError(t, repo.Schedule(ctx, future))

		due, err := repo.Due(ctx, fireAt.Add(time.Minute))
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, "budgetAlert", due[0].ID)

		// Once delivered it drops out of the due set.
		ready.MarkSent(fireAt.Add(time.Minute))
		require.NoError(t, repo.Update(ctx, ready))

		due, err = repo.Due(ctx, fireAt.Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("absent settings read as a disabled zero budget", func(t *testing.T) {
		repo := NewSettingsRepository(newTestDB(t))

		settings, err := repo.GetBudgetSettings(ctx)
		require.NoError(t, err)
		assert.True(t, settings.MonthlyBudget.IsZero())
		assert.False(t, settings.AlertsEnabled)
	})

	t.Run("save and reload", func(t *testing.T) {
		repo := NewSettingsRepository(newTestDB(t))

		require.NoError(t, repo.SaveBudgetSettings(ctx, &entity.BudgetSettings{
			MonthlyBudget: decimal.NewFromInt(1500),
			Threshold:     decimal.NewFromFloat(0.75),
			AlertsEnabled: true,
		}))

		settings, err := repo.GetBudgetSettings(ctx)
		require.NoError(t, err)
		assert.True(t, settings.MonthlyBudget.Equal(decimal.NewFromInt(1500)))
		assert.True(t, settings.Threshold.Equal(decimal.NewFromFloat(0.75)))
		assert.True(t, settings.AlertsEnabled)
	})

	t.Run("absent reminder reads as the defaults", func(t *testing.T) {
		repo := NewSettingsRepository(newTestDB(t))

		reminder, err := repo.GetReminderSettings(ctx)
		require.NoError(t, err)
		assert.False(t, reminder.Enabled)
		assert.Equal(t, 20, reminder.Hour)
	})

	t.Run("reminder settings round-trip next to the budget row", func(t *testing.T) {
		repo := NewSettingsRepository(newTestDB(t))

		require.NoError(t, repo.SaveBudgetSettings(ctx, &entity.BudgetSettings{
			MonthlyBudget: decimal.NewFromInt(1000),
			Threshold:     decimal.NewFromFloat(0.8),
			AlertsEnabled: true,
		}))
		require.NoError(t, repo.SaveReminderSettings(ctx, &entity.ReminderSettings{
			Enabled: true,
			Hour:    21,
			Minute:  15,
		}))

		reminder, err := repo.GetReminderSettings(ctx)
		require.NoError(t, err)
		assert.True(t, reminder.Enabled)
		assert.Equal(t, 21, reminder.Hour)
		assert.Equal(t, 15, reminder.Minute)

		budget, err := repo.GetBudgetSettings(ctx)
		require.NoError(t, err)
		assert.True(t, budget.MonthlyBudget.Equal(decimal.NewFromInt(1000)))
	})
}
