package service

import (
	"encoding/json"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"

	"gorm.io/datatypes"
)

type CourseService struct {
	CourseRepo   *repository.CourseResultRepository
	Achievements *AchievementService
	ActivityRepo *repository.ActivityLogRepository
}

func NewCourseService(courseRepo *repository.CourseResultRepository, achievements *AchievementService, activityRepo *repository.ActivityLogRepository) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		Achievements: achievements,
		ActivityRepo: activityRepo,
	}
}

// CompleteCourse records the completion once per (user, course), re-counts
// completed courses and runs the evaluator over the new total.
func (s *CourseService) CompleteCourse(userID uint, courseID, title string) error {
	result := &model.CourseResult{
		UserID:      userID,
		CourseID:    courseID,
		CompletedAt: time.Now(),
	}
	if err := s.CourseRepo.CreateIfAbsent(result); err != nil {
		return err
	}

	completed, err := s.CourseRepo.CountByUser(userID)
	if err != nil {
		return err
	}
	codes := EvaluateAchievements(Signals{CompletedCourses: int(completed)})
	if err := s.Achievements.Grant(userID, codes); err != nil {
		return err
	}

	if title == "" {
		title = courseID
	}
	meta, _ := json.Marshal(map[string]interface{}{"courseId": courseID})
	return s.ActivityRepo.Append(&model.ActivityLog{
		UserID: userID,
		Type:   "course",
		Title:  "Completed course: " + title,
		Meta:   datatypes.JSON(meta),
	})
}
