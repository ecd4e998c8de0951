package repository

import (
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
)

type ActivityLogRepository struct {
	DB *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{DB: db}
}

func (r *ActivityLogRepository) Append(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}

func (r *ActivityLogRepository) FindByUser(userID uint) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// DayCount is one day's activity volume.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

// DailyCountsSince groups activity rows per calendar day from the given
// moment onward.
func (r *ActivityLogRepository) DailyCountsSince(userID uint, since time.Time) ([]DayCount, error) {
	var rows []DayCount
	err := r.DB.Model(&model.ActivityLog{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("DATE(created_at)").
		Order("day").
		Scan(&rows).Error
	return rows, err
}

// DistinctDays lists every calendar day with at least one activity entry,
// newest first. Feeds the activity-log login streak.
func (r *ActivityLogRepository) DistinctDays(userID uint) ([]time.Time, error) {
	var rows []struct {
		Day time.Time
	}
	err := r.DB.Model(&model.ActivityLog{}).
		Select("DISTINCT DATE(created_at) AS day").
		Where("user_id = ?", userID).
		Order("day DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, len(rows))
	for i, row := range rows {
		days[i] = row.Day
	}
	return days, nil
}

// FindByUserMonth returns the month's entries; month is "YYYY-MM".
func (r *ActivityLogRepository) FindByUserMonth(userID uint, month string) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.DB.Where("user_id = ? AND DATE_FORMAT(created_at, '%Y-%m') = ?", userID, month).
		Find(&entries).Error
	return entries, err
}
