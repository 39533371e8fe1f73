package db

import (
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type JournalRepository struct {
	database *gorm.DB
}

func NewJournalRepository(database *gorm.DB) *JournalRepository {
	return &JournalRepository{database: database}
}

func (repo *JournalRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.JournalEntry, bool, error) {
	entry := models.JournalEntry{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.JournalEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.JournalEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *JournalRepository) Create(entry *models.JournalEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *JournalRepository) Save(entry *models.JournalEntry) error {
	return repo.database.Save(entry).Error
}
