package controller

import (
	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// SubmitQuizRequest is one finished attempt.
// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Topic string `json:"topic" binding:"required"`
	Score int    `json:"score" binding:"min=0"`
	Total int    `json:"total" binding:"required,min=1"`
}

// Submit godoc
// @Summary Record a quiz attempt
// @Description Perfect scores count toward quiz achievements
// @Tags quizzes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SubmitQuizRequest true "Attempt"
// @Success 201 {object} util.Response{data=model.QuizResult}
// @Failure 400 {object} util.Response
// @Router /api/quiz-results/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Score > req.Total {
		util.BadRequest(ctx, "score cannot exceed total")
		return
	}

	result, err := c.QuizService.SubmitResult(claims.UserID, req.Topic, req.Score, req.Total)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// MyResults godoc
// @Summary Quiz attempt history, newest first
// @Tags quizzes
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.QuizResult}
// @Router /api/quiz-results/my-results [get]
func (c *QuizController) MyResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.QuizService.ResultsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
