package services

import (
	"time"

	"github.com/strideapp/stride/internal/models"
)

// Weekly and monthly habits carry a single-completion goal per window, so
// progress saturates at 100 after the first completion and exceeds 100 for
// further ones. Callers that need a bounded value clamp on their side; the
// raw figure is kept deliberately.
const windowCompletionGoal = 1

// ComputeProgress derives the 0-100 progress signal for the habit's current
// cadence window. Daily habits reflect only today's status; weekly and
// monthly habits count completions inside the ISO week (Monday start) or
// calendar month containing now.
func ComputeProgress(habit models.Habit, logs []models.HabitLog, now time.Time, location *time.Location) int {
	switch habit.Cadence {
	case models.CadenceWeekly:
		start := WeekStart(now, location)
		return completedInRange(logs, start, start.AddDate(0, 0, 7), location) * 100 / windowCompletionGoal
	case models.CadenceMonthly:
		start := MonthStart(now, location)
		return completedInRange(logs, start, start.AddDate(0, 1, 0), location) * 100 / windowCompletionGoal
	default:
		switch TodayStatus(logs, now, location) {
		case models.StatusCompleted:
			return 100
		case models.StatusPartiallyDone:
			return 50
		default:
			return 0
		}
	}
}

func completedInRange(logs []models.HabitLog, start time.Time, end time.Time, location *time.Location) int {
	count := 0
	for _, logEntry := range logs {
		if logEntry.Status != models.StatusCompleted {
			continue
		}
		day := DateAtLocation(logEntry.Date, location)
		if !day.Before(start) && day.Before(end) {
			count++
		}
	}
	return count
}
