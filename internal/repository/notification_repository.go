package repository

import (
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(notification *model.Notification) error {
	return r.DB.Create(notification).Error
}

func (r *NotificationRepository) FindSince(userID uint, since time.Time) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.DB.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) CountUnreadSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ? AND created_at >= ?", userID, false, since).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkAllReadSince(userID uint, since time.Time) error {
	return r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Update("is_read", true).Error
}
