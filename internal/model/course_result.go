package model

import "time"

// CourseResult marks a course completed; idempotent per (user, course).
type CourseResult struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex:idx_course_user_course;not null" json:"userId"`
	CourseID    string    `gorm:"size:100;uniqueIndex:idx_course_user_course;not null" json:"courseId"`
	CompletedAt time.Time `json:"completedAt"`
}

func (CourseResult) TableName() string {
	return "course_results"
}
