package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/config"
	"github.com/karthi421/skillmutant-backend/internal/controller"
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/internal/service"
	"github.com/karthi421/skillmutant-backend/pkg/database"
	"github.com/karthi421/skillmutant-backend/pkg/logger"
	"github.com/karthi421/skillmutant-backend/pkg/monitoring"
	"github.com/karthi421/skillmutant-backend/pkg/security"
	"github.com/karthi421/skillmutant-backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user         *repository.UserRepository
	topic        *repository.TopicRepository
	problem      *repository.ProblemRepository
	dailyGoal    *repository.DailyGoalRepository
	achievement  *repository.AchievementRepository
	quiz         *repository.QuizResultRepository
	course       *repository.CourseResultRepository
	activity     *repository.ActivityLogRepository
	notification *repository.NotificationRepository
	job          *repository.JobRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	dailyGoal    *service.DailyGoalService
	achievement  *service.AchievementService
	quiz         *service.QuizService
	course       *service.CourseService
	activity     *service.ActivityService
	notification *service.NotificationService
	job          *service.JobService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	dailyGoal    *controller.DailyGoalController
	achievement  *controller.AchievementController
	quiz         *controller.QuizController
	course       *controller.CourseController
	activity     *controller.ActivityController
	notification *controller.NotificationController
	job          *controller.JobController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		topic:        repository.NewTopicRepository(db),
		problem:      repository.NewProblemRepository(db),
		dailyGoal:    repository.NewDailyGoalRepository(db),
		achievement:  repository.NewAchievementRepository(db),
		quiz:         repository.NewQuizResultRepository(db),
		course:       repository.NewCourseResultRepository(db),
		activity:     repository.NewActivityLogRepository(db),
		notification: repository.NewNotificationRepository(db),
		job:          repository.NewJobRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.dailyGoal = service.NewDailyGoalService(repos.dailyGoal, cfg.Goals.DailyCount)
	s.achievement = service.NewAchievementService(repos.achievement)
	s.quiz = service.NewQuizService(repos.quiz, s.achievement, repos.activity)
	s.course = service.NewCourseService(repos.course, s.achievement, repos.activity)
	s.activity = service.NewActivityService(repos.activity, repos.user)
	s.notification = service.NewNotificationService(repos.notification, rdb)
	s.job = service.NewJobService(repos.job, repos.activity, s.activity)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user),
		user:         controller.NewUserController(s.user, s.storage),
		dailyGoal:    controller.NewDailyGoalController(s.dailyGoal),
		achievement:  controller.NewAchievementController(s.achievement),
		quiz:         controller.NewQuizController(s.quiz),
		course:       controller.NewCourseController(s.course),
		activity:     controller.NewActivityController(s.activity),
		notification: controller.NewNotificationController(s.notification),
		job:          controller.NewJobController(s.job),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Notifications fall back to uncached counts without redis.
		logger.Log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillmutant", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ApplyConfig picks up the reloadable settings from a fresh config. Only
// the goal count is hot today; connection settings need a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.Goals = cfg.Goals
	if a.services != nil && a.services.dailyGoal != nil {
		a.services.dailyGoal.DailyCount = cfg.Goals.DailyCount
	}
	logger.Log.Info("Config reloaded", zap.Int("daily_count", cfg.Goals.DailyCount))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
