package repository

import (
	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

func (r *QuizResultRepository) FindByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Find(&results).Error
	return results, err
}

// CountPerfect counts attempts where every question was answered correctly.
func (r *QuizResultRepository) CountPerfect(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizResult{}).
		Where("user_id = ? AND score = total", userID).
		Count(&count).Error
	return count, err
}
