package repository

import (
	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
)

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) FindSavedByUser(userID uint) ([]model.SavedJob, error) {
	var jobs []model.SavedJob
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) SaveJob(job *model.SavedJob) error {
	return r.DB.Create(job).Error
}

func (r *JobRepository) DeleteSaved(userID uint, jobID string) error {
	return r.DB.Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&model.SavedJob{}).Error
}

func (r *JobRepository) FindFeedbacksByUser(userID uint) ([]model.InterviewFeedback, error) {
	var feedbacks []model.InterviewFeedback
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *JobRepository) SaveFeedback(feedback *model.InterviewFeedback) error {
	return r.DB.Create(feedback).Error
}

func (r *JobRepository) MarkFeedbackRead(userID, feedbackID uint) error {
	return r.DB.Model(&model.InterviewFeedback{}).
		Where("id = ? AND user_id = ?", feedbackID, userID).
		Update("is_read", true).Error
}
