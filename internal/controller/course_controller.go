package controller

import (
	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CompleteCourseRequest marks an external course finished.
// swagger:model CompleteCourseRequest
type CompleteCourseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Title    string `json:"title"`
}

// Complete godoc
// @Summary Mark a course completed
// @Description Idempotent per (user, course); completions count toward course achievements
// @Tags courses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CompleteCourseRequest true "Course"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/course-results/complete [post]
func (c *CourseController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.CompleteCourse(claims.UserID, req.CourseID, req.Title); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"completed": true})
}
