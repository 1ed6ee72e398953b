package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pockets-tracker/backend/internal/application/usecase/dashboard"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	"github.com/pockets-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles aggregation endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetMonthlySummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetMonthlySummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// MonthlySummary handles GET /dashboard/summary requests. An optional month
// query parameter ("2026-03") selects a past month.
func (c *DashboardController) MonthlySummary(ctx *gin.Context) {
	input := dashboard.GetMonthlySummaryInput{
		Ref: parseMonthQuery(ctx),
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// CategoryBreakdown handles GET /dashboard/breakdown requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	input := dashboard.GetCategoryBreakdownInput{
		Ref:  parseMonthQuery(ctx),
		Type: entity.TransactionType(ctx.Query("type")),
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// parseMonthQuery reads the optional "month" query parameter in "2006-01"
// form. A missing or malformed value yields the zero time, meaning the
// current month.
func parseMonthQuery(ctx *gin.Context) time.Time {
	monthStr := ctx.Query("month")
	if monthStr == "" {
		return time.Time{}
	}
	ref, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return time.Time{}
	}
	return ref
}
