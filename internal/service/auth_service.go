package service

import (
	"errors"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/config"
	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles Google and password logins. Every successful login
// advances the login streak, records the day in the activity blob and
// re-runs the achievement evaluator over it.
type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// GoogleLoginResult reports whether the account already finished signup
// (picked a username) alongside the issued token.
type GoogleLoginResult struct {
	Token    string `json:"token"`
	Existing bool   `json:"existing"`
}

// GoogleLogin upserts the user by email. First-time logins create the row
// with a streak of 1; returning users advance their streak.
func (s *AuthService) GoogleLogin(email, googleID string) (*GoogleLoginResult, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user = &model.User{
			Email:    email,
			GoogleID: googleID,
			Role:     model.Student,
		}
		if err := s.UserRepo.Create(user); err != nil {
			return nil, err
		}
	}

	// New accounts go through the same calculator; a zero streak with no
	// last login comes out as day 1.
	streak, err := s.advanceLoginStreak(user)
	if err != nil {
		return nil, err
	}
	if err := s.recordLogin(user.ID, streak); err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &GoogleLoginResult{Token: token, Existing: user.Username != ""}, nil
}

// CompleteAccount sets the username and password on a Google-created row.
func (s *AuthService) CompleteAccount(email, username, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrUserNotFound
		}
		return "", err
	}

	if user.PasswordHash != "" {
		return "", util.ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user.Username = username
	user.PasswordHash = string(hash)
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// Login is the password flow; Google-only accounts are told to use Google.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if user.PasswordHash == "" {
		return "", util.ErrGoogleAccountOnly
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	streak, err := s.advanceLoginStreak(user)
	if err != nil {
		return "", err
	}
	if err := s.recordLogin(user.ID, streak); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// advanceLoginStreak runs the streak calculator against the user row and
// persists the result. Returns the new streak count.
func (s *AuthService) advanceLoginStreak(user *model.User) (int, error) {
	today := time.Now()

	streak := AdvanceStreak(Streak{
		Current:  user.LoginStreak,
		Max:      user.MaxStreak,
		LastDate: user.LastLogin,
	}, today)

	if err := s.UserRepo.UpdateLoginStreak(user.ID, streak.Current, streak.Max, today); err != nil {
		return 0, err
	}
	return streak.Current, nil
}

// recordLogin appends today to the activity blob, logs a login entry, and
// unions freshly qualified achievements into the blob's unlocked set. The
// blob is re-read here so legacy-shaped rows normalize before the write.
func (s *AuthService) recordLogin(userID uint, loginStreak int) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	data := user.LoginData
	now := time.Now()

	data.AddLogin(util.FormatDate(now))
	data.AddActivity(model.ActivityEntry{
		Type:  "login",
		Title: "Logged in to platform",
		Date:  now,
	})

	unlocked := EvaluateAchievements(Signals{
		LoginStreak: loginStreak,
		Activities:  data.Activities,
	})
	data.Achievements = MergeAchievements(data.Achievements, unlocked)

	return s.UserRepo.UpdateLoginData(userID, data)
}
