package service

import (
	"context"
	"fmt"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"gorm.io/datatypes"
)

// notificationWindow bounds every read and the mark-all-read sweep; older
// rows stay in the table but never surface.
const notificationWindow = 24 * time.Hour

const unreadCountTTL = 30 * time.Second

var allowedNotificationTypes = map[model.NotificationType]bool{
	model.NotifyDailyGoalReminder:  true,
	model.NotifyDailyGoalCompleted: true,
	model.NotifyAchievementUnlock:  true,
	model.NotifyStreakMilestone:    true,
}

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
	Redis            *redis.Client
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, redisClient *redis.Client) *NotificationService {
	return &NotificationService{
		NotificationRepo: notificationRepo,
		Redis:            redisClient,
	}
}

// Notify stores a notification if its type is on the allowlist; anything
// else reports skipped=true without writing.
func (s *NotificationService) Notify(ctx context.Context, userID uint, typ model.NotificationType, message string, meta datatypes.JSON) (skipped bool, err error) {
	if !allowedNotificationTypes[typ] {
		return true, nil
	}

	notification := &model.Notification{
		UserID:  userID,
		Type:    typ,
		Message: message,
		Meta:    meta,
	}
	if err := s.NotificationRepo.Create(notification); err != nil {
		return false, err
	}

	s.invalidateUnread(ctx, userID)
	return false, nil
}

// Recent returns the last 24 hours, newest first.
func (s *NotificationService) Recent(userID uint) ([]model.Notification, error) {
	return s.NotificationRepo.FindSince(userID, time.Now().Add(-notificationWindow))
}

// UnreadCount serves from redis when the cached value is fresh; cache
// misses fall through to the table and repopulate the key.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	key := unreadKey(userID)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, key).Int64(); err == nil {
			return cached, nil
		}
	}

	count, err := s.NotificationRepo.CountUnreadSince(userID, time.Now().Add(-notificationWindow))
	if err != nil {
		return 0, err
	}

	if s.Redis != nil {
		s.Redis.Set(ctx, key, count, unreadCountTTL)
	}
	return count, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	err := s.NotificationRepo.MarkAllReadSince(userID, time.Now().Add(-notificationWindow))
	if err != nil {
		return err
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

func (s *NotificationService) invalidateUnread(ctx context.Context, userID uint) {
	if s.Redis != nil {
		s.Redis.Del(ctx, unreadKey(userID))
	}
}

func unreadKey(userID uint) string {
	return fmt.Sprintf("notify:unread:%d", userID)
}
