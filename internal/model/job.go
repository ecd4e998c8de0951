package model

import "gorm.io/datatypes"

// SavedJob is a bookmark of an external job posting.
type SavedJob struct {
	BaseModel
	UserID   uint           `gorm:"index;not null" json:"userId"`
	JobID    string         `gorm:"size:100;not null" json:"jobId"`
	Platform string         `gorm:"size:50" json:"platform"`
	Title    string         `gorm:"size:255" json:"title"`
	Company  string         `gorm:"size:100" json:"company"`
	Data     datatypes.JSON `json:"data"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}

// InterviewFeedback stores the result of a mock interview session.
type InterviewFeedback struct {
	BaseModel
	UserID   uint           `gorm:"index;not null" json:"userId"`
	Company  string         `gorm:"size:100" json:"company"`
	Role     string         `gorm:"size:100" json:"role"`
	Score    int            `json:"score"`
	Feedback datatypes.JSON `json:"feedback"`
	IsRead   bool           `gorm:"default:false" json:"isRead"`
}

func (InterviewFeedback) TableName() string {
	return "interview_feedbacks"
}
