package services

import (
	"time"

	"github.com/strideapp/stride/internal/models"
)

type ResetHabitRepository interface {
	ListDailyWithStreak(userID uint) ([]models.Habit, error)
	ResetStreaks(habitIDs []uint) error
}

type ResetLogRepository interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error)
}

type ResetUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateLastStreakCheck(userID uint, day time.Time) error
}

// DailyResetService zeroes streaks whose chain was broken by inaction. It is
// invoked at the start of every read path and no-ops after the first run of
// the day, gated by the user's LastStreakCheck date.
type DailyResetService struct {
	habits ResetHabitRepository
	logs   ResetLogRepository
	users  ResetUserRepository
}

func NewDailyResetService(habits ResetHabitRepository, logs ResetLogRepository, users ResetUserRepository) *DailyResetService {
	return &DailyResetService{
		habits: habits,
		logs:   logs,
		users:  users,
	}
}

// RunIfNeeded resets every daily habit whose yesterday was not completed and
// whose today holds no completion yet. The per-habit resets are committed
// before LastStreakCheck moves, so a crash mid-sweep re-runs the whole pass
// instead of skipping habits. Only yesterday relative to now is inspected;
// after a multi-day absence the first sweep still lands every broken streak
// on zero, it just cannot say which day broke the chain.
func (service *DailyResetService) RunIfNeeded(userID uint, now time.Time, location *time.Location) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user.LastStreakCheck != nil && SameDay(*user.LastStreakCheck, now, location) {
		return nil
	}

	habits, err := service.habits.ListDailyWithStreak(userID)
	if err != nil {
		return err
	}

	if len(habits) > 0 {
		yesterdayStart, _ := DayRange(now.AddDate(0, 0, -1), location)
		_, todayEnd := DayRange(now, location)
		logs, err := service.logs.ListByUserRange(userID, yesterdayStart, todayEnd)
		if err != nil {
			return err
		}

		yesterdayKey := DayKey(now.AddDate(0, 0, -1), location)
		todayKey := DayKey(now, location)
		completedYesterday := make(map[uint]bool)
		completedToday := make(map[uint]bool)
		for _, logEntry := range logs {
			if logEntry.Status != models.StatusCompleted {
				continue
			}
			switch DayKey(logEntry.Date, location) {
			case yesterdayKey:
				completedYesterday[logEntry.HabitID] = true
			case todayKey:
				completedToday[logEntry.HabitID] = true
			}
		}

		broken := make([]uint, 0, len(habits))
		for _, habit := range habits {
			if completedToday[habit.ID] {
				// Already re-engaged today; the streak's fate belongs to
				// the transition engine, not the sweep.
				continue
			}
			if !completedYesterday[habit.ID] {
				broken = append(broken, habit.ID)
			}
		}
		if len(broken) > 0 {
			if err := service.habits.ResetStreaks(broken); err != nil {
				return err
			}
		}
	}

	return service.users.UpdateLastStreakCheck(userID, DateAtLocation(now, location))
}
