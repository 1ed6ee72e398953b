package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/application/usecase/reminder"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
	"github.com/pockets-tracker/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles notification queue and reminder endpoints.
type NotificationController struct {
	scheduler             adapter.NotificationScheduler
	getReminderUseCase    *reminder.GetReminderUseCase
	updateReminderUseCase *reminder.UpdateReminderUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	scheduler adapter.NotificationScheduler,
	getReminderUseCase *reminder.GetReminderUseCase,
	updateReminderUseCase *reminder.UpdateReminderUseCase,
) *NotificationController {
	return &NotificationController{
		scheduler:             scheduler,
		getReminderUseCase:    getReminderUseCase,
		updateReminderUseCase: updateReminderUseCase,
	}
}

// ListPending handles GET /notifications requests.
func (c *NotificationController) ListPending(ctx *gin.Context) {
	notifications, err := c.scheduler.Pending(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve pending notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}

// GetReminder handles GET /reminder requests.
func (c *NotificationController) GetReminder(ctx *gin.Context) {
	settings, err := c.getReminderUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve reminder settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(settings))
}

// UpdateReminder handles PUT /reminder requests.
func (c *NotificationController) UpdateReminder(ctx *gin.Context) {
	var req dto.UpdateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidReminderTime),
		})
		return
	}

	settings, err := c.updateReminderUseCase.Execute(ctx.Request.Context(), reminder.UpdateReminderInput{
		Enabled: req.Enabled,
		Hour:    req.Hour,
		Minute:  req.Minute,
	})
	if err != nil {
		var notifErr *domainerror.NotificationError
		if errors.As(err, &notifErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: notifErr.Message,
				Code:  string(notifErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update reminder settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(settings))
}
