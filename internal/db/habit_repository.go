package db

import (
	"errors"
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

var errStaleHabitVersion = errors.New("stale habit version")

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) ListDailyWithStreak(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ? AND cadence = ? AND streak > 0", userID, models.CadenceDaily).
		Order("id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

// ExistsByName matches exactly: habit names are case-sensitive per user.
func (repo *HabitRepository) ExistsByName(userID uint, name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Habit{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) UpdateDetails(habit *models.Habit) error {
	return repo.database.Model(&models.Habit{}).Where("id = ?", habit.ID).Updates(map[string]any{
		"name":           habit.Name,
		"category":       habit.Category,
		"reminder_type":  habit.ReminderType,
		"reminder_value": habit.ReminderValue,
	}).Error
}

func (repo *HabitRepository) DeleteWithLogs(habitID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitLog{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{}).Error
	})
}

// CommitStatusChange persists one status-change transition atomically:
// today's old log row goes away, the replacement row (if any) is inserted,
// and the streak lands on the habit row guarded by its version counter.
// Returns false without error when a concurrent writer bumped the version
// first; the caller re-reads and retries.
func (repo *HabitRepository) CommitStatusChange(habit *models.Habit, dayStart time.Time, dayEnd time.Time, todayLog *models.HabitLog, streak int) (bool, error) {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("habit_id = ? AND date >= ? AND date < ?", habit.ID, dayStart, dayEnd).
			Delete(&models.HabitLog{}).Error; err != nil {
			return err
		}

		if todayLog != nil {
			if err := tx.Create(todayLog).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&models.Habit{}).
			Where("id = ? AND version = ?", habit.ID, habit.Version).
			Updates(map[string]any{
				"streak":  streak,
				"version": habit.Version + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errStaleHabitVersion
		}
		return nil
	})
	if errors.Is(err, errStaleHabitVersion) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ResetStreaks zeroes the given habits in one transaction. Versions are
// bumped so an in-flight status change racing the sweep is forced to retry.
func (repo *HabitRepository) ResetStreaks(habitIDs []uint) error {
	if len(habitIDs) == 0 {
		return nil
	}
	return repo.database.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Habit{}).
			Where("id IN ?", habitIDs).
			Updates(map[string]any{
				"streak":  0,
				"version": gorm.Expr("version + 1"),
			}).Error
	})
}
