package repository

import (
	"errors"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

// AchievementStatus is one catalog entry joined with the caller's unlock.
type AchievementStatus struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// ListWithStatus returns the whole catalog with an unlocked flag for the
// given user, catalog order.
func (r *AchievementRepository) ListWithStatus(userID uint) ([]AchievementStatus, error) {
	var rows []AchievementStatus
	err := r.DB.Model(&model.Achievement{}).
		Select("achievements.id, achievements.code, achievements.title, achievements.description, achievements.icon, ua.id IS NOT NULL AS unlocked").
		Joins("LEFT JOIN user_achievements ua ON ua.achievement_id = achievements.id AND ua.user_id = ? AND ua.deleted_at IS NULL", userID).
		Order("achievements.id").
		Scan(&rows).Error
	return rows, err
}

// Unlock grants the coded achievement, once. Unknown codes are ignored so
// catalog and rule table can evolve independently. Reports whether the
// unlock was newly granted.
func (r *AchievementRepository) Unlock(userID uint, code string) (bool, error) {
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
