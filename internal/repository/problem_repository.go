package repository

import (
	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

func (r *ProblemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.First(&problem, id).Error
	return &problem, err
}

// CreateIfAbsent relies on the (title, topic) unique index so re-imports
// are no-ops.
func (r *ProblemRepository) CreateIfAbsent(problem *model.Problem) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(problem).Error
}

// UnsolvedByTopic returns the topic's problems the user has not solved yet.
func (r *ProblemRepository) UnsolvedByTopic(userID, topicID uint) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Model(&model.Problem{}).
		Joins("LEFT JOIN solved_problems sp ON sp.problem_id = problem_bank.id AND sp.user_id = ? AND sp.deleted_at IS NULL", userID).
		Where("problem_bank.topic_id = ? AND sp.id IS NULL", topicID).
		Find(&problems).Error
	return problems, err
}

// Unsolved returns every problem the user has not solved, minus an explicit
// exclusion list (problems already assigned today).
func (r *ProblemRepository) Unsolved(userID uint, excludeIDs []uint) ([]model.Problem, error) {
	query := r.DB.Model(&model.Problem{}).
		Joins("LEFT JOIN solved_problems sp ON sp.problem_id = problem_bank.id AND sp.user_id = ? AND sp.deleted_at IS NULL", userID).
		Where("sp.id IS NULL")

	if len(excludeIDs) > 0 {
		query = query.Where("problem_bank.id NOT IN ?", excludeIDs)
	}

	var problems []model.Problem
	err := query.Find(&problems).Error
	return problems, err
}
