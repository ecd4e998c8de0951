package model

import "time"

// Achievement is static catalog data seeded at startup.
type Achievement struct {
	BaseModel
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	Icon        string `gorm:"size:255" json:"icon"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement is a permanent unlock; at most one per (user, achievement).
type UserAchievement struct {
	BaseModel
	UserID        uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"userId"`
	AchievementID uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
