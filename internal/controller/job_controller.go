package controller

import (
	"encoding/json"
	"strconv"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type JobController struct {
	JobService *service.JobService
}

func NewJobController(jobService *service.JobService) *JobController {
	return &JobController{JobService: jobService}
}

// SaveJobRequest bookmarks an external job posting.
// swagger:model SaveJobRequest
type SaveJobRequest struct {
	JobID    string                 `json:"jobId" binding:"required"`
	Platform string                 `json:"platform"`
	Title    string                 `json:"title" binding:"required"`
	Company  string                 `json:"company"`
	Data     map[string]interface{} `json:"data"`
}

// SavedJobs godoc
// @Summary Bookmarked job postings
// @Tags jobs
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SavedJob}
// @Router /api/jobs/saved [get]
func (c *JobController) SavedJobs(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	jobs, err := c.JobService.SavedJobs(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, jobs)
}

// SaveJob godoc
// @Summary Bookmark a job posting
// @Tags jobs
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SaveJobRequest true "Posting"
// @Success 201 {object} util.Response{data=model.SavedJob}
// @Failure 400 {object} util.Response
// @Router /api/jobs/saved [post]
func (c *JobController) SaveJob(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SaveJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var data datatypes.JSON
	if req.Data != nil {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			util.BadRequest(ctx, "data is not valid JSON")
			return
		}
		data = datatypes.JSON(raw)
	}

	job := &model.SavedJob{
		JobID:    req.JobID,
		Platform: req.Platform,
		Title:    req.Title,
		Company:  req.Company,
		Data:     data,
	}
	if err := c.JobService.SaveJob(claims.UserID, job); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, job)
}

// DeleteSavedJob godoc
// @Summary Remove a bookmark
// @Tags jobs
// @Produce  json
// @Security BearerAuth
// @Param   jobId path string true "External job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/saved/{jobId} [delete]
func (c *JobController) DeleteSavedJob(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.JobService.DeleteSavedJob(claims.UserID, ctx.Param("jobId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// FeedbackRequest stores a mock interview outcome.
// swagger:model FeedbackRequest
type FeedbackRequest struct {
	Company  string                 `json:"company"`
	Role     string                 `json:"role"`
	Score    int                    `json:"score" binding:"min=0,max=100"`
	Feedback map[string]interface{} `json:"feedback"`
}

// Feedbacks godoc
// @Summary Mock interview feedback history
// @Tags jobs
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.InterviewFeedback}
// @Router /api/jobs/feedback [get]
func (c *JobController) Feedbacks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	feedbacks, err := c.JobService.Feedbacks(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, feedbacks)
}

// SaveFeedback godoc
// @Summary Store mock interview feedback
// @Description Also logs a mock activity, which counts toward the mock-interview achievement
// @Tags jobs
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body FeedbackRequest true "Feedback"
// @Success 201 {object} util.Response{data=model.InterviewFeedback}
// @Failure 400 {object} util.Response
// @Router /api/jobs/feedback [post]
func (c *JobController) SaveFeedback(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var feedbackData datatypes.JSON
	if req.Feedback != nil {
		raw, err := json.Marshal(req.Feedback)
		if err != nil {
			util.BadRequest(ctx, "feedback is not valid JSON")
			return
		}
		feedbackData = datatypes.JSON(raw)
	}

	feedback := &model.InterviewFeedback{
		Company:  req.Company,
		Role:     req.Role,
		Score:    req.Score,
		Feedback: feedbackData,
	}
	if err := c.JobService.SaveFeedback(claims.UserID, feedback); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, feedback)
}

// MarkFeedbackRead godoc
// @Summary Mark one feedback read
// @Tags jobs
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Feedback id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/jobs/feedback/{id}/read [post]
func (c *JobController) MarkFeedbackRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	feedbackID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid feedback id")
		return
	}

	if err := c.JobService.MarkFeedbackRead(claims.UserID, uint(feedbackID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"read": true})
}

// JoinLearningRoom godoc
// @Summary Log a learning room join
// @Tags jobs
// @Produce  json
// @Security BearerAuth
// @Param   roomId path string true "Room id"
// @Success 200 {object} util.Response
// @Router /api/jobs/learning-room/{roomId}/join [post]
func (c *JobController) JoinLearningRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	roomID := ctx.Param("roomId")
	if roomID == "" {
		util.BadRequest(ctx, "room id is required")
		return
	}

	if err := c.JobService.JoinLearningRoom(claims.UserID, roomID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"joined": true})
}
