package model

import "gorm.io/datatypes"

type NotificationType string

const (
	NotifyDailyGoalReminder  NotificationType = "daily_goal_reminder"
	NotifyDailyGoalCompleted NotificationType = "daily_goal_completed"
	NotifyAchievementUnlock  NotificationType = "achievement_unlocked"
	NotifyStreakMilestone    NotificationType = "streak_milestone"
)

type Notification struct {
	BaseModel
	UserID  uint             `gorm:"index;not null" json:"userId"`
	Type    NotificationType `gorm:"size:50;not null" json:"type"`
	Message string           `gorm:"type:text" json:"message"`
	Meta    datatypes.JSON   `json:"meta"`
	IsRead  bool             `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
