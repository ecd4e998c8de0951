package service

import (
	"errors"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// Profile is the user row flattened with the activity blob's three lists,
// the shape the dashboard consumes.
type Profile struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Username     string                `json:"username"`
	Email        string                `json:"email"`
	Role         model.UserRole        `json:"role"`
	College      string                `json:"college"`
	Bio          string                `json:"bio"`
	ProfilePic   string                `json:"profilePic"`
	LoginStreak  int                   `json:"loginStreak"`
	MaxStreak    int                   `json:"maxStreak"`
	SolveStreak  int                   `json:"currentStreak"`
	LoginDates   []string              `json:"loginDates"`
	Activities   []model.ActivityEntry `json:"activities"`
	Achievements []string              `json:"achievements"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return buildProfile(user), nil
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	College *string `json:"college"`
	Bio     *string `json:"bio"`
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.College != nil {
		user.College = *update.College
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return buildProfile(user), nil
}

// SetAvatar records the uploaded avatar's public URL.
func (s *UserService) SetAvatar(userID uint, url string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	user.ProfilePic = url
	return s.UserRepo.Update(user)
}

func buildProfile(user *model.User) *Profile {
	data := user.LoginData

	logins := data.Logins
	if logins == nil {
		logins = []string{}
	}
	activities := data.Activities
	if activities == nil {
		activities = []model.ActivityEntry{}
	}
	achievements := data.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	return &Profile{
		ID:           user.ID,
		Name:         user.Name,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
		College:      user.College,
		Bio:          user.Bio,
		ProfilePic:   user.ProfilePic,
		LoginStreak:  user.LoginStreak,
		MaxStreak:    user.MaxStreak,
		SolveStreak:  user.SolveStreak,
		LoginDates:   logins,
		Activities:   activities,
		Achievements: achievements,
	}
}
