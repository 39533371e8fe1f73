package db

import (
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

func (repo *MoodRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodLog, bool, error) {
	entry := models.MoodLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *MoodRepository) ListByUser(userID uint) ([]models.MoodLog, error) {
	entries := make([]models.MoodLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodRepository) Create(entry *models.MoodLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodRepository) Save(entry *models.MoodLog) error {
	return repo.database.Save(entry).Error
}
