package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Habits    *HabitRepository
	HabitLogs *HabitLogRepository
	Moods     *MoodRepository
	Journal   *JournalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Habits:    NewHabitRepository(database),
		HabitLogs: NewHabitLogRepository(database),
		Moods:     NewMoodRepository(database),
		Journal:   NewJournalRepository(database),
	}
}
