package services

import (
	"time"

	"github.com/strideapp/stride/internal/models"
)

type JournalRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.JournalEntry, bool, error)
	Create(entry *models.JournalEntry) error
	Save(entry *models.JournalEntry) error
}

type JournalService struct {
	journal JournalRepository
}

func NewJournalService(journal JournalRepository) *JournalService {
	return &JournalService{journal: journal}
}

func (service *JournalService) Entry(userID uint, day time.Time, location *time.Location) (models.JournalEntry, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.journal.FindByUserAndDayRange(userID, dayStart, dayEnd)
}

// SaveEntry upserts the reflection and gratitude text for the given day.
func (service *JournalService) SaveEntry(userID uint, day time.Time, reflection string, gratitude string, location *time.Location) (models.JournalEntry, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.journal.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.JournalEntry{}, err
	}

	if found {
		entry.Reflection = reflection
		entry.Gratitude = gratitude
		if err := service.journal.Save(&entry); err != nil {
			return models.JournalEntry{}, err
		}
		return entry, nil
	}

	entry = models.JournalEntry{
		UserID:     userID,
		Date:       dayStart,
		Reflection: reflection,
		Gratitude:  gratitude,
	}
	if err := service.journal.Create(&entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}
