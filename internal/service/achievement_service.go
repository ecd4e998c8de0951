package service

import (
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/pkg/monitoring"
)

// AchievementService exposes the catalog joined with the caller's unlocks.
type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{AchievementRepo: achievementRepo}
}

func (s *AchievementService) ListForUser(userID uint) ([]repository.AchievementStatus, error) {
	return s.AchievementRepo.ListWithStatus(userID)
}

// Grant unlocks the given codes, counting only unlocks that were new.
func (s *AchievementService) Grant(userID uint, codes []string) error {
	for _, code := range codes {
		fresh, err := s.AchievementRepo.Unlock(userID, code)
		if err != nil {
			return err
		}
		if fresh {
			monitoring.AchievementsUnlocked.Inc()
		}
	}
	return nil
}
