package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/usecase/quickadd"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
	"github.com/pockets-tracker/backend/internal/integration/entrypoint/dto"
)

// QuickAddController handles the one-tap entry endpoint.
type QuickAddController struct {
	addUseCase *quickadd.AddEntryUseCase
}

// NewQuickAddController creates a new quick-add controller instance.
func NewQuickAddController(addUseCase *quickadd.AddEntryUseCase) *QuickAddController {
	return &QuickAddController{
		addUseCase: addUseCase,
	}
}

// Add handles POST /quick-add requests.
func (c *QuickAddController) Add(ctx *gin.Context) {
	var req dto.QuickAddRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return
	}

	input := quickadd.AddEntryInput{
		Amount: amount,
		Type:   entity.TransactionType(req.Type),
	}
	if req.CategoryID != nil {
		if categoryID, err := uuid.Parse(*req.CategoryID); err == nil {
			input.CategoryID = &categoryID
		}
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToQuickAddResponse(output))
}
