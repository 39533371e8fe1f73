package db

import (
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// EnsureByID provisions the profile row for an upstream-authenticated user
// id on first sight.
func (repo *UserRepository) EnsureByID(userID uint) (models.User, error) {
	user := models.User{ID: userID, CreatedAt: time.Now().UTC()}
	if err := repo.database.Where("id = ?", userID).FirstOrCreate(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) UpdateLastStreakCheck(userID uint, day time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("last_streak_check", day).Error
}

func (repo *UserRepository) UpdateDisplayName(userID uint, displayName string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("display_name", displayName).Error
}
