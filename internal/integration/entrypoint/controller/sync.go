package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pockets-tracker/backend/internal/application/usecase/sync"
	"github.com/pockets-tracker/backend/internal/integration/entrypoint/dto"
)

// SyncController handles the manual sync endpoint.
type SyncController struct {
	runUseCase *sync.RunSyncUseCase
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(runUseCase *sync.RunSyncUseCase) *SyncController {
	return &SyncController{
		runUseCase: runUseCase,
	}
}

// Run handles POST /sync requests. The pipeline is soft-failing and always
// reports what it managed to do.
func (c *SyncController) Run(ctx *gin.Context) {
	output := c.runUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToSyncResponse(output))
}
