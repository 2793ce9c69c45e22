package handler

import (
	"errors"
	"strconv"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/middleware"
	"scoutlete/internal/service"
	"scoutlete/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationHandler handles HTTP requests for notification operations.
type NotificationHandler struct {
	service service.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service service.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications godoc
// @Summary      List notifications
// @Description  Retrieve the authenticated user's notifications, newest first
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        unread_only  query     bool  false  "Only unread notifications"
// @Param        page         query     int   false  "Page number (default: 1)"
// @Param        limit        query     int   false  "Items per page (default: 20, max: 100)"
// @Success      200          {object}  response.Response{data=models.NotificationListResponse}
// @Failure      401          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread_only", "false"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.ListNotifications(c.Request.Context(), userID, unreadOnly, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// MarkRead godoc
// @Summary      Mark notification as read
// @Description  Mark one of the authenticated user's notifications as read
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        notificationId  path      string  true  "Notification ID"
// @Success      200             {object}  response.Response
// @Failure      401             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Failure      500             {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/{notificationId}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.Param("notificationId"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "notification marked as read"})
}
