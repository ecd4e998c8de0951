package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DailyGoalController struct {
	GoalService *service.DailyGoalService
}

func NewDailyGoalController(goalService *service.DailyGoalService) *DailyGoalController {
	return &DailyGoalController{GoalService: goalService}
}

// GetDailyGoals godoc
// @Summary Today's assigned problems
// @Description Generates the set on the first call of the day; later calls return it unchanged
// @Tags daily-goals
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.GoalItem}
// @Failure 401 {object} util.Response
// @Router /api/daily-goals [get]
func (c *DailyGoalController) GetDailyGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	items, err := c.GoalService.GetDailyGoals(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if items == nil {
		items = []service.GoalItem{}
	}
	util.Success(ctx, items)
}

// CompleteGoal godoc
// @Summary Mark one of today's problems solved
// @Description Idempotent; a repeat submission reports alreadyCompleted without touching streaks
// @Tags daily-goals
// @Produce  json
// @Security BearerAuth
// @Param   problemId path int true "Problem id"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 404 {object} util.Response
// @Router /api/daily-goals/{problemId}/complete [post]
func (c *DailyGoalController) CompleteGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	problemID, err := strconv.ParseUint(ctx.Param("problemId"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid problem id")
		return
	}

	result, err := c.GoalService.CompleteGoal(claims.UserID, uint(problemID), time.Now())
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx, "No such goal assigned today")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
