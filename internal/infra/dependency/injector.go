// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pockets-tracker/backend/config"
	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/application/usecase/budget"
	"github.com/pockets-tracker/backend/internal/application/usecase/category"
	"github.com/pockets-tracker/backend/internal/application/usecase/dashboard"
	"github.com/pockets-tracker/backend/internal/application/usecase/quickadd"
	"github.com/pockets-tracker/backend/internal/application/usecase/recurring"
	"github.com/pockets-tracker/backend/internal/application/usecase/reminder"
	"github.com/pockets-tracker/backend/internal/application/usecase/sync"
	"github.com/pockets-tracker/backend/internal/application/usecase/transaction"
	"github.com/pockets-tracker/backend/internal/infra/db"
	"github.com/pockets-tracker/backend/internal/infra/server/router"
	"github.com/pockets-tracker/backend/internal/integration/adapters"
	"github.com/pockets-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/pockets-tracker/backend/internal/integration/notify"
	"github.com/pockets-tracker/backend/internal/integration/persistence"
	"github.com/pockets-tracker/backend/internal/integration/persistence/model"
	"github.com/pockets-tracker/backend/internal/integration/templatestore"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *db.Database
	Router *router.Router

	Worker         *notify.Worker
	SeedCategories *category.SeedDefaultCategoriesUseCase
	RunSync        *sync.RunSyncUseCase
}

// newAlertSender picks the delivery channel. Without an API key alerts are
// only logged, which keeps local setups working end to end.
func newAlertSender(cfg *config.Config) adapter.AlertSender {
	if cfg.Alerts.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, alerts will only be logged")
		return notify.NewLogSender()
	}
	return notify.NewResendSender(
		cfg.Alerts.ResendAPIKey,
		cfg.Alerts.FromName,
		cfg.Alerts.FromEmail,
		cfg.Alerts.ToEmail,
	)
}

// NewInjector creates and wires all application dependencies.
func NewInjector(cfg *config.Config) (*Injector, error) {
	// Infrastructure
	database, err := db.NewSQLiteConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetStateModel{},
		&model.ScheduledNotificationModel{},
		&model.SettingModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	clock := adapters.NewSystemClock()

	// Repositories
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	budgetStateRepo := persistence.NewBudgetStateRepository(database.DB())
	settingsRepo := persistence.NewSettingsRepository(database.DB())
	notificationRepo := persistence.NewNotificationRepository(database.DB())
	templateStore := templatestore.NewFileStore(cfg.TemplateStore.Path)

	// Budget use cases
	evaluateBudgetUseCase := budget.NewEvaluateBudgetUseCase(
		settingsRepo,
		budgetStateRepo,
		transactionRepo,
		notificationRepo,
		clock,
	)
	budgetStatusUseCase := budget.NewGetStatusUseCase(settingsRepo, budgetStateRepo, transactionRepo, clock)
	updateBudgetSettingsUseCase := budget.NewUpdateSettingsUseCase(settingsRepo, budgetStateRepo, clock)
	sweepStateUseCase := budget.NewSweepStateUseCase(budgetStateRepo, clock)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)
	seedCategoriesUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo)

	// Transaction use cases (budget evaluation runs after each mutation)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, evaluateBudgetUseCase)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, evaluateBudgetUseCase)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, evaluateBudgetUseCase)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Recurring template use cases
	subscriptionAlerts := recurring.NewSubscriptionAlertScheduler(notificationRepo, clock, cfg.Alerts.Enabled)
	listTemplatesUseCase := recurring.NewListTemplatesUseCase(templateStore)
	createTemplateUseCase := recurring.NewCreateTemplateUseCase(templateStore, categoryRepo, subscriptionAlerts)
	updateTemplateUseCase := recurring.NewUpdateTemplateUseCase(templateStore, categoryRepo, subscriptionAlerts)
	toggleTemplateUseCase := recurring.NewToggleTemplateUseCase(templateStore, subscriptionAlerts)
	deleteTemplateUseCase := recurring.NewDeleteTemplateUseCase(templateStore, subscriptionAlerts)
	processTemplatesUseCase := recurring.NewProcessTemplatesUseCase(templateStore, transactionRepo, clock)

	// Quick add and dashboard use cases
	quickAddUseCase := quickadd.NewAddEntryUseCase(transactionRepo, categoryRepo, evaluateBudgetUseCase, clock)
	monthlySummaryUseCase := dashboard.NewGetMonthlySummaryUseCase(transactionRepo, clock)
	categoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(transactionRepo, categoryRepo, clock)

	// Daily reminder use cases
	getReminderUseCase := reminder.NewGetReminderUseCase(settingsRepo)
	updateReminderUseCase := reminder.NewUpdateReminderUseCase(settingsRepo, notificationRepo, clock)

	// Sync pipeline
	runSyncUseCase := sync.NewRunSyncUseCase(processTemplatesUseCase, evaluateBudgetUseCase, sweepStateUseCase)

	// Notification worker
	worker := notify.NewWorker(notificationRepo, newAlertSender(cfg), clock, notify.WorkerConfig{
		PollInterval: cfg.Alerts.PollInterval,
		MaxAttempts:  cfg.Alerts.MaxAttempts,
	})

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck, func() bool {
		_, err := templateStore.LoadAll(context.Background())
		return err == nil
	})
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)
	recurringController := controller.NewRecurringController(
		listTemplatesUseCase,
		createTemplateUseCase,
		updateTemplateUseCase,
		toggleTemplateUseCase,
		deleteTemplateUseCase,
		processTemplatesUseCase,
	)
	budgetController := controller.NewBudgetController(
		budgetStatusUseCase,
		updateBudgetSettingsUseCase,
		evaluateBudgetUseCase,
	)
	quickAddController := controller.NewQuickAddController(quickAddUseCase)
	dashboardController := controller.NewDashboardController(monthlySummaryUseCase, categoryBreakdownUseCase)
	notificationController := controller.NewNotificationController(notificationRepo, getReminderUseCase, updateReminderUseCase)
	syncController := controller.NewSyncController(runSyncUseCase)

	appRouter := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		recurringController,
		budgetController,
		quickAddController,
		dashboardController,
		notificationController,
		syncController,
	)

	return &Injector{
		Config:         cfg,
		DB:             database,
		Router:         appRouter,
		Worker:         worker,
		SeedCategories: seedCategoriesUseCase,
		RunSync:        runSyncUseCase,
	}, nil
}
