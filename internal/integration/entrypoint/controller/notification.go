// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/application/usecase/notification"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
	"github.com/docuintelli/backend/internal/integration/entrypoint/dto"
	"github.com/docuintelli/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase     *notification.ListNotificationsUseCase
	markReadUseCase *notification.MarkReadUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkReadUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
	}
}

// List handles GET /notifications requests. The unread_only query parameter
// restricts the listing to unread notifications.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		UserID:     userID,
		UnreadOnly: ctx.Query("unread_only") == "true",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}

// MarkRead handles PATCH /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
			Code:  string(domainerror.ErrCodeNotificationNotFound),
		})
		return
	}

	_, err = c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkReadInput{
		NotificationID: notificationID,
		UserID:         userID,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleNotificationError handles notification errors and returns appropriate
// HTTP responses.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notifErr *domainerror.NotificationError
	if errors.As(err, &notifErr) {
		statusCode := http.StatusInternalServerError
		if notifErr.Code == domainerror.ErrCodeNotificationNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: notifErr.Message,
			Code:  string(notifErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
