package model

import "time"

// DailyGoal assigns one problem to one user for one calendar day. Rows are
// created once by the generator and flipped to completed exactly once by
// the completion flow; they are never deleted.
type DailyGoal struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_goal_user_problem_date;not null" json:"userId"`
	ProblemID   uint       `gorm:"uniqueIndex:idx_goal_user_problem_date;not null" json:"problemId"`
	GoalDate    time.Time  `gorm:"uniqueIndex:idx_goal_user_problem_date;type:date;not null" json:"goalDate"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`

	Problem Problem `json:"-"`
}

func (DailyGoal) TableName() string {
	return "daily_goals"
}
