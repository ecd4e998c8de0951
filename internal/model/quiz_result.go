package model

import "time"

// QuizResult is an append-only attempt record; attempts are never unique.
type QuizResult struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Topic       string    `gorm:"size:100;not null" json:"topic"`
	Score       int       `gorm:"not null" json:"score"`
	Total       int       `gorm:"not null" json:"total"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
