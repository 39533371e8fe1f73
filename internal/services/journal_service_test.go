package services

import (
	"errors"
	"testing"
	"time"

	"github.com/strideapp/stride/internal/models"
)

type stubJournalRepo struct {
	entries []models.JournalEntry
	nextID  uint
}

func (repo *stubJournalRepo) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.JournalEntry, bool, error) {
	for _, entry := range repo.entries {
		if entry.UserID == userID && !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			return entry, true, nil
		}
	}
	return models.JournalEntry{}, false, nil
}

func (repo *stubJournalRepo) Create(entry *models.JournalEntry) error {
	repo.nextID++
	entry.ID = repo.nextID
	repo.entries = append(repo.entries, *entry)
	return nil
}

func (repo *stubJournalRepo) Save(entry *models.JournalEntry) error {
	for index, stored := range repo.entries {
		if stored.ID == entry.ID {
			repo.entries[index] = *entry
			return nil
		}
	}
	return errors.New("journal entry not found")
}

func TestSaveEntryCreatesThenUpdatesPerDay(t *testing.T) {
	repo := &stubJournalRepo{}
	service := NewJournalService(repo)
	day := mustDay(t, "2026-03-10")

	created, err := service.SaveEntry(1, day, "long day at work", "coffee", time.UTC)
	if err != nil {
		t.Fatalf("first SaveEntry: %v", err)
	}

	updated, err := service.SaveEntry(1, day, "long day at work", "coffee and a quiet evening", time.UTC)
	if err != nil {
		t.Fatalf("second SaveEntry: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("same day must update in place, got ids %d and %d", created.ID, updated.ID)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected a single row, got %d", len(repo.entries))
	}

	other, err := service.SaveEntry(1, mustDay(t, "2026-03-11"), "fresh start", "", time.UTC)
	if err != nil {
		t.Fatalf("next day SaveEntry: %v", err)
	}
	if other.ID == created.ID {
		t.Fatal("a new day gets its own row")
	}
}

func TestEntryReportsMissingDay(t *testing.T) {
	service := NewJournalService(&stubJournalRepo{})

	_, found, err := service.Entry(1, mustDay(t, "2026-03-10"), time.UTC)
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if found {
		t.Fatal("expected no entry")
	}
}
