package services

import (
	"testing"
	"time"

	"github.com/strideapp/stride/internal/models"
)

// In-memory repositories backing the service tests. One shared state with
// thin per-interface wrappers, mirroring the shape of the real db package.
type memoryState struct {
	habits      map[uint]models.Habit
	logs        map[uint]models.HabitLog
	users       map[uint]models.User
	nextHabitID uint
	nextLogID   uint

	// knobs and call recording
	commitConflicts int
	resetCalls      [][]uint
	events          []string
}

func newMemoryState() *memoryState {
	return &memoryState{
		habits:      make(map[uint]models.Habit),
		logs:        make(map[uint]models.HabitLog),
		users:       make(map[uint]models.User),
		nextHabitID: 1,
		nextLogID:   1,
	}
}

func (state *memoryState) addHabit(habit models.Habit) models.Habit {
	if habit.ID == 0 {
		habit.ID = state.nextHabitID
		state.nextHabitID++
	} else if habit.ID >= state.nextHabitID {
		state.nextHabitID = habit.ID + 1
	}
	state.habits[habit.ID] = habit
	return habit
}

func (state *memoryState) addLog(logEntry models.HabitLog) models.HabitLog {
	if logEntry.ID == 0 {
		logEntry.ID = state.nextLogID
		state.nextLogID++
	} else if logEntry.ID >= state.nextLogID {
		state.nextLogID = logEntry.ID + 1
	}
	state.logs[logEntry.ID] = logEntry
	return logEntry
}

type memoryHabitRepo struct {
	state *memoryState
}

func (repo *memoryHabitRepo) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for id := uint(1); id < repo.state.nextHabitID; id++ {
		if habit, exists := repo.state.habits[id]; exists && habit.UserID == userID {
			habits = append(habits, habit)
		}
	}
	return habits, nil
}

func (repo *memoryHabitRepo) ListDailyWithStreak(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for id := uint(1); id < repo.state.nextHabitID; id++ {
		habit, exists := repo.state.habits[id]
		if exists && habit.UserID == userID && habit.Cadence == models.CadenceDaily && habit.Streak > 0 {
			habits = append(habits, habit)
		}
	}
	return habits, nil
}

func (repo *memoryHabitRepo) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit, exists := repo.state.habits[habitID]
	if !exists || habit.UserID != userID {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *memoryHabitRepo) ExistsByName(userID uint, name string) (bool, error) {
	for _, habit := range repo.state.habits {
		if habit.UserID == userID && habit.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (repo *memoryHabitRepo) Create(habit *models.Habit) error {
	*habit = repo.state.addHabit(*habit)
	return nil
}

func (repo *memoryHabitRepo) UpdateDetails(habit *models.Habit) error {
	stored := repo.state.habits[habit.ID]
	stored.Name = habit.Name
	stored.Category = habit.Category
	stored.ReminderType = habit.ReminderType
	stored.ReminderValue = habit.ReminderValue
	repo.state.habits[habit.ID] = stored
	return nil
}

func (repo *memoryHabitRepo) DeleteWithLogs(habitID uint, userID uint) error {
	for id, logEntry := range repo.state.logs {
		if logEntry.HabitID == habitID {
			delete(repo.state.logs, id)
		}
	}
	delete(repo.state.habits, habitID)
	return nil
}

func (repo *memoryHabitRepo) CommitStatusChange(habit *models.Habit, dayStart time.Time, dayEnd time.Time, todayLog *models.HabitLog, streak int) (bool, error) {
	if repo.state.commitConflicts > 0 {
		repo.state.commitConflicts--
		stored := repo.state.habits[habit.ID]
		stored.Version++
		repo.state.habits[habit.ID] = stored
		return false, nil
	}

	for id, logEntry := range repo.state.logs {
		if logEntry.HabitID == habit.ID && !logEntry.Date.Before(dayStart) && logEntry.Date.Before(dayEnd) {
			delete(repo.state.logs, id)
		}
	}
	if todayLog != nil {
		*todayLog = repo.state.addLog(*todayLog)
	}

	stored := repo.state.habits[habit.ID]
	stored.Streak = streak
	stored.Version++
	repo.state.habits[habit.ID] = stored
	return true, nil
}

func (repo *memoryHabitRepo) ResetStreaks(habitIDs []uint) error {
	recorded := make([]uint, len(habitIDs))
	copy(recorded, habitIDs)
	repo.state.resetCalls = append(repo.state.resetCalls, recorded)
	repo.state.events = append(repo.state.events, "reset")
	for _, habitID := range habitIDs {
		habit := repo.state.habits[habitID]
		habit.Streak = 0
		habit.Version++
		repo.state.habits[habitID] = habit
	}
	return nil
}

type memoryLogRepo struct {
	state *memoryState
}

func (repo *memoryLogRepo) ListByHabit(habitID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	for id := uint(1); id < repo.state.nextLogID; id++ {
		if logEntry, exists := repo.state.logs[id]; exists && logEntry.HabitID == habitID {
			logs = append(logs, logEntry)
		}
	}
	return logs, nil
}

func (repo *memoryLogRepo) ListByUser(userID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	for id := uint(1); id < repo.state.nextLogID; id++ {
		if logEntry, exists := repo.state.logs[id]; exists && logEntry.UserID == userID {
			logs = append(logs, logEntry)
		}
	}
	return logs, nil
}

func (repo *memoryLogRepo) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	for id := uint(1); id < repo.state.nextLogID; id++ {
		logEntry, exists := repo.state.logs[id]
		if exists && logEntry.UserID == userID && !logEntry.Date.Before(fromStart) && logEntry.Date.Before(toEnd) {
			logs = append(logs, logEntry)
		}
	}
	return logs, nil
}

type memoryUserRepo struct {
	state *memoryState
}

func (repo *memoryUserRepo) FindByID(userID uint) (models.User, error) {
	return repo.state.users[userID], nil
}

func (repo *memoryUserRepo) UpdateLastStreakCheck(userID uint, day time.Time) error {
	user := repo.state.users[userID]
	user.LastStreakCheck = &day
	repo.state.users[userID] = user
	repo.state.events = append(repo.state.events, "lastcheck")
	return nil
}

func newTestEngine(state *memoryState) (*HabitService, *DailyResetService) {
	habits := &memoryHabitRepo{state: state}
	logs := &memoryLogRepo{state: state}
	users := &memoryUserRepo{state: state}
	resets := NewDailyResetService(habits, logs, users)
	return NewHabitService(habits, logs, resets), resets
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}
