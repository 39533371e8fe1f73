package api

import (
	"time"

	"github.com/strideapp/stride/internal/db"
	"github.com/strideapp/stride/internal/services"
	"gorm.io/gorm"
)

// Handler wires the engine's services to the JSON surface. The clock is a
// field so "today" always comes from the server side; tests pin it.
type Handler struct {
	habits   *services.HabitService
	stats    *services.StatsService
	moods    *services.MoodService
	journal  *services.JournalService
	users    *db.UserRepository
	location *time.Location
	now      func() time.Time
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	repos := db.NewRepositories(database)
	resets := services.NewDailyResetService(repos.Habits, repos.HabitLogs, repos.Users)

	return &Handler{
		habits:   services.NewHabitService(repos.Habits, repos.HabitLogs, resets),
		stats:    services.NewStatsService(repos.Habits, repos.HabitLogs, resets),
		moods:    services.NewMoodService(repos.Moods),
		journal:  services.NewJournalService(repos.Journal),
		users:    repos.Users,
		location: location,
		now:      time.Now,
	}
}
