package services

import (
	"time"

	"github.com/strideapp/stride/internal/models"
)

// StatusTransition is the computed outcome of one status change: the habit's
// log set with today's entry replaced, the row to insert for today (nil when
// the new status is pending), and the streak value to persist.
type StatusTransition struct {
	Logs     []models.HabitLog
	TodayLog *models.HabitLog
	Streak   int
}

// TransitionStatus applies one status change for "today" to an in-memory
// habit snapshot. Pure: persistence and retries live with the caller.
//
// Streak rules, daily cadence only:
//   - entering completed: streak becomes streak+1 when yesterday was
//     completed, otherwise 1.
//   - leaving completed: streak becomes streak-1 when yesterday was
//     completed, otherwise 0.
//   - any other transition leaves the streak alone.
//
// The result never goes below zero. Weekly and monthly habits keep their
// streak untouched; their signal is windowed progress.
func TransitionStatus(habit models.Habit, logs []models.HabitLog, newStatus string, now time.Time, location *time.Location) StatusTransition {
	todayKey := DayKey(now, location)
	yesterdayKey := DayKey(now.AddDate(0, 0, -1), location)

	wasCompletedToday := false
	wasCompletedYesterday := false
	kept := make([]models.HabitLog, 0, len(logs)+1)
	for _, logEntry := range logs {
		key := DayKey(logEntry.Date, location)
		if key == todayKey {
			if logEntry.Status == models.StatusCompleted {
				wasCompletedToday = true
			}
			continue
		}
		if key == yesterdayKey && logEntry.Status == models.StatusCompleted {
			wasCompletedYesterday = true
		}
		kept = append(kept, logEntry)
	}

	var todayLog *models.HabitLog
	if models.IsPersistedStatus(newStatus) {
		entry := models.HabitLog{
			HabitID: habit.ID,
			UserID:  habit.UserID,
			Date:    DateAtLocation(now, location),
			Status:  newStatus,
		}
		kept = append(kept, entry)
		todayLog = &entry
	}

	streak := habit.Streak
	if habit.Cadence == models.CadenceDaily {
		isNowCompleted := newStatus == models.StatusCompleted
		switch {
		case isNowCompleted && !wasCompletedToday:
			if wasCompletedYesterday {
				streak = habit.Streak + 1
			} else {
				streak = 1
			}
		case !isNowCompleted && wasCompletedToday:
			if wasCompletedYesterday {
				streak = habit.Streak - 1
			} else {
				streak = 0
			}
		}
	}
	if streak < 0 {
		streak = 0
	}

	return StatusTransition{Logs: kept, TodayLog: todayLog, Streak: streak}
}
