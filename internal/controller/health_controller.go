package controller

import (
	"net/http"

	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, redisClient *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: redisClient}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := gin.H{"database": "up", "redis": "up"}
	healthy := true

	if sqlDB, err := c.DB.DB(); err != nil || sqlDB.Ping() != nil {
		status["database"] = "down"
		healthy = false
	}

	if c.Redis != nil {
		if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
			status["redis"] = "down"
		}
	} else {
		status["redis"] = "disabled"
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "unhealthy",
			Data:    status,
		})
		return
	}

	util.Success(ctx, status)
}
