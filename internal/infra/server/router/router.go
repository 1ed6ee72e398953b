// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pockets-tracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	categoryController     *controller.CategoryController
	transactionController  *controller.TransactionController
	recurringController    *controller.RecurringController
	budgetController       *controller.BudgetController
	quickAddController     *controller.QuickAddController
	dashboardController    *controller.DashboardController
	notificationController *controller.NotificationController
	syncController         *controller.SyncController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	budgetController *controller.BudgetController,
	quickAddController *controller.QuickAddController,
	dashboardController *controller.DashboardController,
	notificationController *controller.NotificationController,
	syncController *controller.SyncController,
) *Router {
	return &Router{
		healthController:       healthController,
		categoryController:     categoryController,
		transactionController:  transactionController,
		recurringController:    recurringController,
		budgetController:       budgetController,
		quickAddController:     quickAddController,
		dashboardController:    dashboardController,
		notificationController: notificationController,
		syncController:         syncController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		recurring := v1.Group("/recurring-templates")
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.POST("/process", r.recurringController.Process)
			recurring.PATCH("/:id", r.recurringController.Update)
			recurring.POST("/:id/toggle", r.recurringController.Toggle)
			recurring.DELETE("/:id", r.recurringController.Delete)
		}

		budget := v1.Group("/budget")
		{
			budget.GET("", r.budgetController.Status)
			budget.PUT("", r.budgetController.UpdateSettings)
			budget.POST("/evaluate", r.budgetController.Evaluate)
		}

		v1.POST("/quick-add", r.quickAddController.Add)

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.MonthlySummary)
			dashboard.GET("/breakdown", r.dashboardController.CategoryBreakdown)
		}

		v1.GET("/notifications", r.notificationController.ListPending)

		v1.GET("/reminder", r.notificationController.GetReminder)
		v1.PUT("/reminder", r.notificationController.UpdateReminder)

		v1.POST("/sync", r.syncController.Run)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
