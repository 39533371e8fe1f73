package db

import (
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type HabitLogRepository struct {
	database *gorm.DB
}

func NewHabitLogRepository(database *gorm.DB) *HabitLogRepository {
	return &HabitLogRepository{database: database}
}

func (repo *HabitLogRepository) ListByHabit(habitID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.Where("habit_id = ?", habitID).Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByUser(userID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByHabitRange(habitID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
