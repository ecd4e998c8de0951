package database

import (
	"fmt"
	"log"

	"github.com/karthi421/skillmutant-backend/internal/config"
	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	// loc=UTC keeps the DATE columns (goal_date, last_login) on the same
	// calendar day the streak arithmetic uses.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Problem{},
		&model.SolvedProblem{},
		&model.DailyGoal{},
		&model.QuizResult{},
		&model.CourseResult{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.ActivityLog{},
		&model.Notification{},
		&model.SavedJob{},
		&model.InterviewFeedback{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedTopics(db)
	seedAchievements(db)

	return db, nil
}

// seedTopics fills the topic table on first boot so the goal generator has
// something to sample from.
func seedTopics(db *gorm.DB) {
	var count int64
	db.Model(&model.Topic{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []string{
		"Arrays",
		"Strings",
		"Linked Lists",
		"Trees",
		"Graphs",
		"Dynamic Programming",
		"Sorting",
		"Searching",
		"Recursion",
		"Hashing",
	}
	for _, name := range defaults {
		db.Create(&model.Topic{Name: name})
	}
}

// seedAchievements installs the catalog rows the unlock rules refer to by
// code. Codes must stay in sync with the rule tables.
func seedAchievements(db *gorm.DB) {
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Achievement{
		{Code: "3_day_streak", Title: "3 Day Streak", Description: "Logged in 3 days in a row", Icon: "flame"},
		{Code: "7_day_streak", Title: "7 Day Streak", Description: "Logged in 7 days in a row", Icon: "flame"},
		{Code: "14_day_streak", Title: "14 Day Streak", Description: "Logged in 14 days in a row", Icon: "flame"},
		{Code: "streak_3", Title: "Warming Up", Description: "Solved problems 3 days in a row", Icon: "bolt"},
		{Code: "streak_7", Title: "On Fire", Description: "Solved problems 7 days in a row", Icon: "bolt"},
		{Code: "streak_30", Title: "Unstoppable", Description: "Solved problems 30 days in a row", Icon: "bolt"},
		{Code: "solve_1", Title: "First Blood", Description: "Solved your first problem", Icon: "check"},
		{Code: "solve_10", Title: "Problem Solver", Description: "Solved 10 problems", Icon: "check"},
		{Code: "solve_50", Title: "Code Warrior", Description: "Solved 50 problems", Icon: "check"},
		{Code: "solve_100", Title: "Centurion", Description: "Solved 100 problems", Icon: "check"},
		{Code: "course_1", Title: "Student", Description: "Completed your first course", Icon: "book"},
		{Code: "course_5", Title: "Scholar", Description: "Completed 5 courses", Icon: "book"},
		{Code: "quiz_perfect_1", Title: "Perfectionist", Description: "Scored 100% on a quiz", Icon: "star"},
		{Code: "quiz_perfect_5", Title: "Quiz Master", Description: "Scored 100% on 5 quizzes", Icon: "star"},
		{Code: "first_ai_use", Title: "AI Explorer", Description: "Used an AI tool for the first time", Icon: "robot"},
		{Code: "mock_master", Title: "Mock Master", Description: "Completed 5 mock interviews", Icon: "mic"},
	}
	for _, a := range defaults {
		db.Create(&a)
	}
}
