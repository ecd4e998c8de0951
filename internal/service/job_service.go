package service

import (
	"encoding/json"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"

	"gorm.io/datatypes"
)

// JobService covers the career-prep surface: saved job postings, mock
// interview feedback and the activity entries those produce.
type JobService struct {
	JobRepo      *repository.JobRepository
	ActivityRepo *repository.ActivityLogRepository
	UserActivity *ActivityService
}

func NewJobService(jobRepo *repository.JobRepository, activityRepo *repository.ActivityLogRepository, userActivity *ActivityService) *JobService {
	return &JobService{
		JobRepo:      jobRepo,
		ActivityRepo: activityRepo,
		UserActivity: userActivity,
	}
}

func (s *JobService) SavedJobs(userID uint) ([]model.SavedJob, error) {
	return s.JobRepo.FindSavedByUser(userID)
}

func (s *JobService) SaveJob(userID uint, job *model.SavedJob) error {
	job.UserID = userID
	if err := s.JobRepo.SaveJob(job); err != nil {
		return err
	}

	meta, _ := json.Marshal(map[string]interface{}{"jobId": job.JobID, "company": job.Company})
	return s.ActivityRepo.Append(&model.ActivityLog{
		UserID: userID,
		Type:   "job",
		Title:  "Saved job: " + job.Title,
		Meta:   datatypes.JSON(meta),
	})
}

func (s *JobService) DeleteSavedJob(userID uint, jobID string) error {
	return s.JobRepo.DeleteSaved(userID, jobID)
}

func (s *JobService) Feedbacks(userID uint) ([]model.InterviewFeedback, error) {
	return s.JobRepo.FindFeedbacksByUser(userID)
}

// SaveFeedback stores a mock interview's outcome and logs it both to the
// activity table and the user's activity blob, which is what eventually
// satisfies the mock-interview achievement.
func (s *JobService) SaveFeedback(userID uint, feedback *model.InterviewFeedback) error {
	feedback.UserID = userID
	if err := s.JobRepo.SaveFeedback(feedback); err != nil {
		return err
	}

	title := "Completed mock interview"
	if feedback.Role != "" {
		title = "Completed mock interview: " + feedback.Role
	}

	meta, _ := json.Marshal(map[string]interface{}{"role": feedback.Role, "score": feedback.Score})
	if err := s.ActivityRepo.Append(&model.ActivityLog{
		UserID: userID,
		Type:   "mock",
		Title:  title,
		Meta:   datatypes.JSON(meta),
	}); err != nil {
		return err
	}

	return s.UserActivity.RecordUserActivity(userID, "mock", title)
}

func (s *JobService) MarkFeedbackRead(userID, feedbackID uint) error {
	return s.JobRepo.MarkFeedbackRead(userID, feedbackID)
}

// JoinLearningRoom only leaves an activity trail; room membership itself
// lives in the realtime service.
func (s *JobService) JoinLearningRoom(userID uint, roomID string) error {
	meta, _ := json.Marshal(map[string]interface{}{"roomId": roomID})
	return s.ActivityRepo.Append(&model.ActivityLog{
		UserID: userID,
		Type:   "learning",
		Title:  "Joined learning room: " + roomID,
		Meta:   datatypes.JSON(meta),
	})
}
