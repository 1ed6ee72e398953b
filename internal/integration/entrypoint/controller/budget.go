package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/usecase/budget"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
	"github.com/pockets-tracker/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	statusUseCase   *budget.GetStatusUseCase
	updateUseCase   *budget.UpdateSettingsUseCase
	evaluateUseCase *budget.EvaluateBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	statusUseCase *budget.GetStatusUseCase,
	updateUseCase *budget.UpdateSettingsUseCase,
	evaluateUseCase *budget.EvaluateBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		statusUseCase:   statusUseCase,
		updateUseCase:   updateUseCase,
		evaluateUseCase: evaluateUseCase,
	}
}

// Status handles GET /budget requests.
func (c *BudgetController) Status(ctx *gin.Context) {
	output, err := c.statusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budget status",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(output))
}

// UpdateSettings handles PUT /budget requests.
func (c *BudgetController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateBudgetSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	monthlyBudget, err := decimal.NewFromString(req.MonthlyBudget)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid monthly budget",
			Code:  string(domainerror.ErrCodeInvalidBudgetAmount),
		})
		return
	}

	threshold, err := decimal.NewFromString(req.Threshold)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid threshold",
			Code:  string(domainerror.ErrCodeInvalidBudgetThreshold),
		})
		return
	}

	err = c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateSettingsInput{
		MonthlyBudget: monthlyBudget,
		Threshold:     threshold,
		AlertsEnabled: req.AlertsEnabled,
	})
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}

	// Settings changed, re-check immediately against the new limits.
	output, err := c.statusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(output))
}

// Evaluate handles POST /budget/evaluate requests.
func (c *BudgetController) Evaluate(ctx *gin.Context) {
	alert, err := c.evaluateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to evaluate budget",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"alert":    string(alert.Kind),
		"progress": alert.Progress.StringFixed(4),
	})
}

// handleBudgetError maps budget errors to HTTP responses.
func handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
