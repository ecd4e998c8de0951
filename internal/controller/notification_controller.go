package controller

import (
	"encoding/json"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// NotifyRequest creates one notification.
// swagger:model NotifyRequest
type NotifyRequest struct {
	Type    string                 `json:"type" binding:"required"`
	Message string                 `json:"message" binding:"required"`
	Meta    map[string]interface{} `json:"meta"`
}

// Create godoc
// @Summary Store a notification
// @Description Types outside the allowlist are skipped, not stored
// @Tags notifications
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body NotifyRequest true "Notification"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/notifications [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req NotifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var meta datatypes.JSON
	if req.Meta != nil {
		raw, err := json.Marshal(req.Meta)
		if err != nil {
			util.BadRequest(ctx, "meta is not valid JSON")
			return
		}
		meta = datatypes.JSON(raw)
	}

	skipped, err := c.NotificationService.Notify(ctx.Request.Context(), claims.UserID, model.NotificationType(req.Type), req.Message, meta)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"skipped": skipped})
}

// Recent godoc
// @Summary Notifications from the last 24 hours
// @Tags notifications
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Notification}
// @Router /api/notifications [get]
func (c *NotificationController) Recent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	notifications, err := c.NotificationService.Recent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, notifications)
}

// UnreadCount godoc
// @Summary Unread notifications in the 24-hour window
// @Tags notifications
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/notifications/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	count, err := c.NotificationService.UnreadCount(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": count})
}

// MarkAllRead godoc
// @Summary Mark the 24-hour window read
// @Tags notifications
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.MarkAllRead(ctx.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"read": true})
}
