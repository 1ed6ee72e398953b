package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/usecase/recurring"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
	"github.com/pockets-tracker/backend/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring template endpoints.
type RecurringController struct {
	listUseCase    *recurring.ListTemplatesUseCase
	createUseCase  *recurring.CreateTemplateUseCase
	updateUseCase  *recurring.UpdateTemplateUseCase
	toggleUseCase  *recurring.ToggleTemplateUseCase
	deleteUseCase  *recurring.DeleteTemplateUseCase
	processUseCase *recurring.ProcessTemplatesUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listUseCase *recurring.ListTemplatesUseCase,
	createUseCase *recurring.CreateTemplateUseCase,
	updateUseCase *recurring.UpdateTemplateUseCase,
	toggleUseCase *recurring.ToggleTemplateUseCase,
	deleteUseCase *recurring.DeleteTemplateUseCase,
	processUseCase *recurring.ProcessTemplatesUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		toggleUseCase:  toggleUseCase,
		deleteUseCase:  deleteUseCase,
		processUseCase: processUseCase,
	}
}

// List handles GET /recurring-templates requests.
func (c *RecurringController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recurring templates",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateListResponse(output.Templates))
}

// Create handles POST /recurring-templates requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTemplateFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidTemplateAmount),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateTemplateInput{
		Name:       req.Name,
		Amount:     amount,
		CategoryID: categoryID,
		DayOfMonth: req.DayOfMonth,
		Type:       entity.TransactionType(req.Type),
	})
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(output.Template))
}

// Update handles PATCH /recurring-templates/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	var req dto.UpdateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := recurring.UpdateTemplateInput{
		ID:         id,
		Name:       req.Name,
		DayOfMonth: req.DayOfMonth,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount",
				Code:  string(domainerror.ErrCodeInvalidTemplateAmount),
			})
			return
		}
		input.Amount = &amount
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(output.Template))
}

// Toggle handles POST /recurring-templates/:id/toggle requests.
func (c *RecurringController) Toggle(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(output.Template))
}

// Delete handles DELETE /recurring-templates/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Process handles POST /recurring-templates/process requests. The pass is
// soft-failing and always reports what it managed to do.
func (c *RecurringController) Process(ctx *gin.Context) {
	output := c.processUseCase.Execute(ctx.Request.Context())

	response := dto.ProcessTemplatesResponse{
		Processed:           output.Processed,
		CreatedTransactions: make([]dto.TransactionResponse, 0, len(output.Created)),
	}
	for _, t := range output.Created {
		response.CreatedTransactions = append(response.CreatedTransactions, dto.TransactionResponse{
			ID:         t.ID.String(),
			Date:       t.Date.Format(dateLayout),
			Amount:     t.Amount.String(),
			Type:       string(t.Type),
			CategoryID: t.CategoryID.String(),
			Note:       t.Note,
			CreatedAt:  t.CreatedAt,
			UpdatedAt:  t.UpdatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// handleRecurringError maps recurring template errors to HTTP responses.
func handleRecurringError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		ctx.JSON(statusCodeForRecurringError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForRecurringError maps recurring error codes to HTTP status codes.
func statusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeTemplateNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTemplateAmount,
		domainerror.ErrCodeTemplateNameRequired,
		domainerror.ErrCodeMissingTemplateFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
