package services

import (
	"errors"
	"time"

	"github.com/strideapp/stride/internal/models"
)

var ErrInvalidMoodValue = errors.New("mood must be between 1 and 5")

type MoodRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodLog, bool, error)
	ListByUser(userID uint) ([]models.MoodLog, error)
	Create(entry *models.MoodLog) error
	Save(entry *models.MoodLog) error
}

type MoodService struct {
	moods MoodRepository
}

func NewMoodService(moods MoodRepository) *MoodService {
	return &MoodService{moods: moods}
}

func (service *MoodService) Today(userID uint, now time.Time, location *time.Location) (models.MoodLog, bool, error) {
	dayStart, dayEnd := DayRange(now, location)
	return service.moods.FindByUserAndDayRange(userID, dayStart, dayEnd)
}

func (service *MoodService) History(userID uint) ([]models.MoodLog, error) {
	return service.moods.ListByUser(userID)
}

// SaveToday upserts the single mood entry for today's date.
func (service *MoodService) SaveToday(userID uint, mood int, notes string, now time.Time, location *time.Location) (models.MoodLog, error) {
	if !models.IsValidMood(mood) {
		return models.MoodLog{}, ErrInvalidMoodValue
	}

	dayStart, dayEnd := DayRange(now, location)
	entry, found, err := service.moods.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodLog{}, err
	}

	if found {
		entry.Mood = mood
		entry.Notes = notes
		if err := service.moods.Save(&entry); err != nil {
			return models.MoodLog{}, err
		}
		return entry, nil
	}

	entry = models.MoodLog{
		UserID: userID,
		Date:   dayStart,
		Mood:   mood,
		Notes:  notes,
	}
	if err := service.moods.Create(&entry); err != nil {
		return models.MoodLog{}, err
	}
	return entry, nil
}
