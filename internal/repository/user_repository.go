package repository

import (
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UpdateLoginStreak persists the fields the login-streak calculator owns.
func (r *UserRepository) UpdateLoginStreak(userID uint, streak, max int, lastLogin time.Time) error {
	day := util.DateOnly(lastLogin)
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"login_streak": streak,
			"max_streak":   max,
			"last_login":   day,
		}).Error
}

// UpdateLoginData overwrites the activity blob after a read-modify-write.
func (r *UserRepository) UpdateLoginData(userID uint, data model.ActivityData) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("login_dates", data).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).Error
}
