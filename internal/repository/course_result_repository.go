package repository

import (
	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseResultRepository struct {
	DB *gorm.DB
}

func NewCourseResultRepository(db *gorm.DB) *CourseResultRepository {
	return &CourseResultRepository{DB: db}
}

// CreateIfAbsent makes course completion idempotent per (user, course).
func (r *CourseResultRepository) CreateIfAbsent(result *model.CourseResult) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(result).Error
}

func (r *CourseResultRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseResult{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
