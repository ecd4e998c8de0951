package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"

	"gorm.io/datatypes"
)

type QuizService struct {
	QuizRepo     *repository.QuizResultRepository
	Achievements *AchievementService
	ActivityRepo *repository.ActivityLogRepository
}

func NewQuizService(quizRepo *repository.QuizResultRepository, achievements *AchievementService, activityRepo *repository.ActivityLogRepository) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		Achievements: achievements,
		ActivityRepo: activityRepo,
	}
}

// SubmitResult records a quiz attempt. Perfect scores are re-counted across
// all attempts and fed to the achievement evaluator.
func (s *QuizService) SubmitResult(userID uint, topic string, score, total int) (*model.QuizResult, error) {
	result := &model.QuizResult{
		UserID:      userID,
		Topic:       topic,
		Score:       score,
		Total:       total,
		AttemptedAt: time.Now(),
	}
	if err := s.QuizRepo.Create(result); err != nil {
		return nil, err
	}

	if score == total && total > 0 {
		perfect, err := s.QuizRepo.CountPerfect(userID)
		if err != nil {
			return nil, err
		}
		codes := EvaluateAchievements(Signals{PerfectQuizzes: int(perfect)})
		if err := s.Achievements.Grant(userID, codes); err != nil {
			return nil, err
		}
	}

	meta, _ := json.Marshal(map[string]interface{}{"skill": topic, "score": score, "total": total})
	if err := s.ActivityRepo.Append(&model.ActivityLog{
		UserID: userID,
		Type:   "quiz",
		Title:  fmt.Sprintf("Attempted quiz: %s", topic),
		Meta:   datatypes.JSON(meta),
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *QuizService) ResultsForUser(userID uint) ([]model.QuizResult, error) {
	return s.QuizRepo.FindByUser(userID)
}
