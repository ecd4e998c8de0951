package app

import (
	"github.com/karthi421/skillmutant-backend/docs"
	"github.com/karthi421/skillmutant-backend/internal/config"
	"github.com/karthi421/skillmutant-backend/internal/middleware"
	"github.com/karthi421/skillmutant-backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/auth/google", c.auth.GoogleLogin)
		public.POST("/auth/complete-account", c.auth.CompleteAccount)
		public.POST("/auth/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.PUT("/users/me", c.user.UpdateProfile)
		authGroup.POST("/users/me/avatar", c.user.UploadAvatar)

		authGroup.GET("/daily-goals", c.dailyGoal.GetDailyGoals)
		authGroup.POST("/daily-goals/:problemId/complete", c.dailyGoal.CompleteGoal)

		authGroup.GET("/achievements", c.achievement.List)

		authGroup.POST("/quiz-results/submit", c.quiz.Submit)
		authGroup.GET("/quiz-results/my-results", c.quiz.MyResults)

		authGroup.POST("/course-results/complete", c.course.Complete)

		authGroup.GET("/activity/weekly", c.activity.Weekly)
		authGroup.GET("/activity/all", c.activity.All)

		authGroup.GET("/progress/login-streak", c.activity.Streak)
		authGroup.POST("/progress/activity", c.activity.Log)
		authGroup.GET("/progress/analytics", c.activity.Monthly)

		authGroup.POST("/notifications", c.notification.Create)
		authGroup.GET("/notifications", c.notification.Recent)
		authGroup.GET("/notifications/unread-count", c.notification.UnreadCount)
		authGroup.POST("/notifications/read-all", c.notification.MarkAllRead)

		authGroup.GET("/jobs/saved", c.job.SavedJobs)
		authGroup.POST("/jobs/saved", c.job.SaveJob)
		authGroup.DELETE("/jobs/saved/:jobId", c.job.DeleteSavedJob)
		authGroup.GET("/jobs/feedback", c.job.Feedbacks)
		authGroup.POST("/jobs/feedback", c.job.SaveFeedback)
		authGroup.POST("/jobs/feedback/:id/read", c.job.MarkFeedbackRead)
		authGroup.POST("/jobs/learning-room/:roomId/join", c.job.JoinLearningRoom)
	}
}
