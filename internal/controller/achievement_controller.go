package controller

import (
	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// List godoc
// @Summary Achievement catalog with the caller's unlock status
// @Tags achievements
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]repository.AchievementStatus}
// @Failure 401 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}
