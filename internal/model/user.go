package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// User carries identity plus the streak state mutated by logins and goal
// completions. The max streak invariant (MaxStreak >= LoginStreak) is
// maintained by the streak calculator, never written directly.
// swagger:model User
type User struct {
	BaseModel
	Name         string   `gorm:"size:100" json:"name"`
	Username     string   `gorm:"size:50;uniqueIndex" json:"username"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:100" json:"-"`
	GoogleID     string   `gorm:"size:100" json:"-"`
	Role         UserRole `gorm:"size:20;default:'student'" json:"role"`
	College      string   `gorm:"size:100" json:"college"`
	Bio          string   `gorm:"type:text" json:"bio"`
	ProfilePic   string   `gorm:"size:255" json:"profilePic"`

	LoginStreak    int          `gorm:"default:0" json:"loginStreak"`
	MaxStreak      int          `gorm:"default:0" json:"maxStreak"`
	LastLogin      *time.Time   `gorm:"type:date" json:"lastLogin"`
	SolveStreak    int          `gorm:"column:current_streak;default:0" json:"currentStreak"`
	LastSolvedDate *time.Time   `gorm:"type:date" json:"lastSolvedDate"`
	LoginData      ActivityData `gorm:"column:login_dates;type:json" json:"loginData"`

	LastSeen time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
