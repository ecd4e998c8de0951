package repository

import (
	"errors"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyGoalRepository is the gorm implementation of GoalStore. It reuses
// the topic/problem repositories for the shared pool queries so the SQL
// lives in one place.
type DailyGoalRepository struct {
	DB       *gorm.DB
	topics   *TopicRepository
	problems *ProblemRepository
}

func NewDailyGoalRepository(db *gorm.DB) *DailyGoalRepository {
	return &DailyGoalRepository{
		DB:       db,
		topics:   NewTopicRepository(db),
		problems: NewProblemRepository(db),
	}
}

func (r *DailyGoalRepository) GoalsForDate(userID uint, date time.Time) ([]model.DailyGoal, error) {
	var goals []model.DailyGoal
	err := r.DB.Preload("Problem").
		Where("user_id = ? AND goal_date = ?", userID, util.DateOnly(date)).
		Order("id").
		Find(&goals).Error
	return goals, err
}

func (r *DailyGoalRepository) TopicIDs() ([]uint, error) {
	return r.topics.ListIDs()
}

func (r *DailyGoalRepository) UnsolvedByTopic(userID, topicID uint) ([]model.Problem, error) {
	return r.problems.UnsolvedByTopic(userID, topicID)
}

func (r *DailyGoalRepository) Unsolved(userID uint, excludeIDs []uint) ([]model.Problem, error) {
	return r.problems.Unsolved(userID, excludeIDs)
}

// CreateGoal absorbs duplicate-insert races through the
// (user, problem, date) unique index.
func (r *DailyGoalRepository) CreateGoal(goal *model.DailyGoal) error {
	goal.GoalDate = util.DateOnly(goal.GoalDate)
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(goal).Error
}

func (r *DailyGoalRepository) FindGoal(userID, problemID uint, date time.Time) (*model.DailyGoal, error) {
	var goal model.DailyGoal
	err := r.DB.
		Where("user_id = ? AND problem_id = ? AND goal_date = ?", userID, problemID, util.DateOnly(date)).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *DailyGoalRepository) MarkGoalCompleted(goalID uint, at time.Time) error {
	return r.DB.Model(&model.DailyGoal{}).
		Where("id = ?", goalID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
		}).Error
}

func (r *DailyGoalRepository) RecordSolved(userID, problemID uint, day time.Time) error {
	solved := model.SolvedProblem{
		UserID:    userID,
		ProblemID: problemID,
		SolvedAt:  util.DateOnly(day),
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&solved).Error
}

func (r *DailyGoalRepository) CountSolved(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SolvedProblem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *DailyGoalRepository) FindUser(userID uint) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *DailyGoalRepository) SaveSolveStreak(userID uint, streak int, day time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":   streak,
			"last_solved_date": util.DateOnly(day),
		}).Error
}

// UnlockAchievement inserts the (user, achievement) unlock row, resolving
// the code against the catalog. Already-unlocked and unknown codes are
// no-ops, matching insert-if-absent semantics.
func (r *DailyGoalRepository) UnlockAchievement(userID uint, code string) (bool, error) {
	var achievement model.Achievement
	err := r.DB.Where("code = ?", code).First(&achievement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	unlock := model.UserAchievement{
		UserID:        userID,
		AchievementID: achievement.ID,
		UnlockedAt:    time.Now(),
	}
	result := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&unlock)
	return result.Error == nil && result.RowsAffected > 0, result.Error
}

func (r *DailyGoalRepository) ProblemByID(problemID uint) (*model.Problem, error) {
	var problem model.Problem
	if err := r.DB.First(&problem, problemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}
	return &problem, nil
}

func (r *DailyGoalRepository) AppendActivity(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}

func (r *DailyGoalRepository) InTx(fn func(GoalStore) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(NewDailyGoalRepository(tx))
	})
}
