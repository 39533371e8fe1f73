package services

import (
	"time"

	"github.com/strideapp/stride/internal/models"
)

// HabitView is the read model handed to presentation layers: the stored
// habit plus today's derived status and the cadence-window progress. Neither
// derived field is ever trusted from storage.
type HabitView struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Cadence       string    `json:"cadence"`
	Streak        int       `json:"streak"`
	Status        string    `json:"status"`
	Progress      int       `json:"progress"`
	ReminderType  string    `json:"reminder_type,omitempty"`
	ReminderValue string    `json:"reminder_value,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TodayStatus resolves today's status from the log set; no entry means
// pending.
func TodayStatus(logs []models.HabitLog, now time.Time, location *time.Location) string {
	todayKey := DayKey(now, location)
	for _, logEntry := range logs {
		if DayKey(logEntry.Date, location) == todayKey {
			return logEntry.Status
		}
	}
	return models.StatusPending
}

func DecorateHabit(habit models.Habit, logs []models.HabitLog, now time.Time, location *time.Location) HabitView {
	return HabitView{
		ID:            habit.ID,
		Name:          habit.Name,
		Category:      habit.Category,
		Cadence:       habit.Cadence,
		Streak:        habit.Streak,
		Status:        TodayStatus(logs, now, location),
		Progress:      ComputeProgress(habit, logs, now, location),
		ReminderType:  habit.ReminderType,
		ReminderValue: habit.ReminderValue,
		CreatedAt:     habit.CreatedAt,
	}
}
