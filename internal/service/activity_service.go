package service

import (
	"fmt"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"gorm.io/datatypes"
)

// ActivityService answers the analytics routes from the activity log table
// and maintains the per-user activity blob for the progress routes.
type ActivityService struct {
	ActivityRepo *repository.ActivityLogRepository
	UserRepo     *repository.UserRepository
}

func NewActivityService(activityRepo *repository.ActivityLogRepository, userRepo *repository.UserRepository) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		UserRepo:     userRepo,
	}
}

func (s *ActivityService) Log(userID uint, typ, title string, meta datatypes.JSON) error {
	return s.ActivityRepo.Append(&model.ActivityLog{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Meta:   meta,
	})
}

func (s *ActivityService) AllForUser(userID uint) ([]model.ActivityLog, error) {
	return s.ActivityRepo.FindByUser(userID)
}

// WeeklyCounts is the last seven days of activity volume, oldest first.
func (s *ActivityService) WeeklyCounts(userID uint) ([]repository.DayCount, error) {
	since := util.DateOnly(time.Now()).AddDate(0, 0, -6)
	return s.ActivityRepo.DailyCountsSince(userID, since)
}

// MonthlyAnalytics summarizes one calendar month ("YYYY-MM"): total entries
// and the busiest week, weeks being 7-day buckets by day of month.
type MonthlyAnalytics struct {
	Month          string `json:"month"`
	TotalActivity  int    `json:"totalActivity"`
	MostActiveWeek string `json:"mostActiveWeek"`
}

func (s *ActivityService) MonthlyAnalytics(userID uint, month string) (*MonthlyAnalytics, error) {
	entries, err := s.ActivityRepo.FindByUserMonth(userID, month)
	if err != nil {
		return nil, err
	}

	weeks := map[int]int{}
	for _, entry := range entries {
		day := entry.CreatedAt.Day()
		week := (day + 6) / 7
		weeks[week]++
	}

	mostActive := "N/A"
	best := 0
	for week, count := range weeks {
		if count > best || (count == best && mostActive == "N/A") {
			best = count
			mostActive = fmt.Sprintf("Week %d", week)
		}
	}

	return &MonthlyAnalytics{
		Month:          month,
		TotalActivity:  len(entries),
		MostActiveWeek: mostActive,
	}, nil
}

// LoginStreakInfo is the activity-log view of consecutive active days.
type LoginStreakInfo struct {
	CurrentStreak int      `json:"currentStreak"`
	ActiveDates   []string `json:"activeDates"`
}

// StreakFromLog walks the distinct activity days backwards from today; the
// streak breaks on the first gap. A streak that ended yesterday still
// counts until midnight passes it by two days.
func (s *ActivityService) StreakFromLog(userID uint, today time.Time) (*LoginStreakInfo, error) {
	days, err := s.ActivityRepo.DistinctDays(userID)
	if err != nil {
		return nil, err
	}

	info := &LoginStreakInfo{ActiveDates: make([]string, 0, len(days))}
	for _, day := range days {
		info.ActiveDates = append(info.ActiveDates, util.FormatDate(day))
	}

	if len(days) == 0 {
		return info, nil
	}

	cursor := util.DateOnly(today)
	if util.DaysBetween(days[0], cursor) > 1 {
		return info, nil
	}
	cursor = util.DateOnly(days[0])
	info.CurrentStreak = 1

	for _, day := range days[1:] {
		if util.DaysBetween(day, cursor) != 1 {
			break
		}
		info.CurrentStreak++
		cursor = util.DateOnly(day)
	}
	return info, nil
}

// RecordUserActivity appends the entry to the user's activity blob and
// re-runs the evaluator so activity-based achievements (first AI use, mock
// mastery) unlock without waiting for the next login.
func (s *ActivityService) RecordUserActivity(userID uint, typ, title string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	data := user.LoginData
	data.AddActivity(model.ActivityEntry{
		Type:  typ,
		Title: title,
		Date:  time.Now(),
	})

	unlocked := EvaluateAchievements(Signals{
		LoginStreak: user.LoginStreak,
		Activities:  data.Activities,
	})
	data.Achievements = MergeAchievements(data.Achievements, unlocked)

	return s.UserRepo.UpdateLoginData(userID, data)
}
