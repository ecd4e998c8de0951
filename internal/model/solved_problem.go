package model

import "time"

// SolvedProblem is a write-once fact: at most one row per (user, problem).
type SolvedProblem struct {
	BaseModel
	UserID    uint      `gorm:"uniqueIndex:idx_solved_user_problem;not null" json:"userId"`
	ProblemID uint      `gorm:"uniqueIndex:idx_solved_user_problem;not null" json:"problemId"`
	SolvedAt  time.Time `gorm:"type:date" json:"solvedAt"`
}

func (SolvedProblem) TableName() string {
	return "solved_problems"
}
