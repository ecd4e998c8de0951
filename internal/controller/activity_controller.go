package controller

import (
	"encoding/json"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// LogActivityRequest is a client-reported activity event.
// swagger:model LogActivityRequest
type LogActivityRequest struct {
	Type  string                 `json:"type" binding:"required"`
	Title string                 `json:"title" binding:"required"`
	Meta  map[string]interface{} `json:"meta"`
}

// Log godoc
// @Summary Record an activity event
// @Description Writes to the activity log table and the profile's activity list; may unlock activity-based achievements
// @Tags activity
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body LogActivityRequest true "Event"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/progress/activity [post]
func (c *ActivityController) Log(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LogActivityRequest
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

	if err := c.ActivityService.Log(claims.UserID, req.Type, req.Title, meta); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if err := c.ActivityService.RecordUserActivity(claims.UserID, req.Type, req.Title); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"logged": true})
}

// All godoc
// @Summary Full activity history, newest first
// @Tags activity
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ActivityLog}
// @Router /api/activity/all [get]
func (c *ActivityController) All(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.ActivityService.AllForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

// Weekly godoc
// @Summary Activity volume per day over the last week
// @Tags activity
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]repository.DayCount}
// @Router /api/activity/weekly [get]
func (c *ActivityController) Weekly(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	counts, err := c.ActivityService.WeeklyCounts(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, counts)
}

// Monthly godoc
// @Summary Monthly activity analytics
// @Tags activity
// @Produce  json
// @Security BearerAuth
// @Param   month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} util.Response{data=service.MonthlyAnalytics}
// @Failure 400 {object} util.Response
// @Router /api/progress/analytics [get]
func (c *ActivityController) Monthly(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	month := ctx.Query("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	} else if _, err := time.Parse("2006-01", month); err != nil {
		util.BadRequest(ctx, "month must be formatted YYYY-MM")
		return
	}

	analytics, err := c.ActivityService.MonthlyAnalytics(claims.UserID, month)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, analytics)
}

// Streak godoc
// @Summary Consecutive active days derived from the activity log
// @Tags activity
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.LoginStreakInfo}
// @Router /api/progress/login-streak [get]
func (c *ActivityController) Streak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	info, err := c.ActivityService.StreakFromLog(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, info)
}
