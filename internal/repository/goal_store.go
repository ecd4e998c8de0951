package repository

import (
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
)

// GoalStore names every store operation the daily-goal pipeline performs.
// The generator and the completion flow only talk to this interface; the
// gorm implementation lives in DailyGoalRepository and tests substitute an
// in-memory fake.
type GoalStore interface {
	// Generator reads/writes.
	GoalsForDate(userID uint, date time.Time) ([]model.DailyGoal, error)
	TopicIDs() ([]uint, error)
	UnsolvedByTopic(userID, topicID uint) ([]model.Problem, error)
	Unsolved(userID uint, excludeIDs []uint) ([]model.Problem, error)
	CreateGoal(goal *model.DailyGoal) error

	// Completion reads/writes.
	FindGoal(userID, problemID uint, date time.Time) (*model.DailyGoal, error)
	MarkGoalCompleted(goalID uint, at time.Time) error
	RecordSolved(userID, problemID uint, day time.Time) error
	CountSolved(userID uint) (int64, error)
	FindUser(userID uint) (*model.User, error)
	SaveSolveStreak(userID uint, streak int, day time.Time) error
	// UnlockAchievement reports whether the unlock was newly granted;
	// re-unlocks and unknown codes are no-ops.
	UnlockAchievement(userID uint, code string) (bool, error)
	ProblemByID(problemID uint) (*model.Problem, error)
	AppendActivity(entry *model.ActivityLog) error

	// InTx runs fn against a store bound to one transaction; the completion
	// sequence commits or rolls back as a whole.
	InTx(fn func(GoalStore) error) error
}
