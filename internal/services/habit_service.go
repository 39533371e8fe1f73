package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/strideapp/stride/internal/models"
)

var (
	ErrHabitNotFound       = errors.New("habit not found")
	ErrDuplicateHabitName  = errors.New("habit name already in use")
	ErrTransactionConflict = errors.New("habit was modified concurrently")
	ErrInvalidHabitName    = errors.New("habit name is required")
	ErrInvalidCategory     = errors.New("unknown habit category")
	ErrInvalidCadence      = errors.New("unknown habit cadence")
	ErrInvalidStatus       = errors.New("unknown habit status")
	ErrInvalidReminder     = errors.New("invalid reminder descriptor")
)

const (
	statusChangeMaxAttempts = 5
	statusChangeRetryDelay  = 25 * time.Millisecond
)

var (
	reminderTimePattern     = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	reminderIntervalPattern = regexp.MustCompile(`^[1-9]\d*h$`)
)

type HabitRepository interface {
	ListByUser(userID uint) ([]models.Habit, error)
	ListDailyWithStreak(userID uint) ([]models.Habit, error)
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
	ExistsByName(userID uint, name string) (bool, error)
	Create(habit *models.Habit) error
	UpdateDetails(habit *models.Habit) error
	DeleteWithLogs(habitID uint, userID uint) error
	CommitStatusChange(habit *models.Habit, dayStart time.Time, dayEnd time.Time, todayLog *models.HabitLog, streak int) (bool, error)
}

type HabitLogRepository interface {
	ListByHabit(habitID uint) ([]models.HabitLog, error)
	ListByUser(userID uint) ([]models.HabitLog, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error)
}

type HabitInput struct {
	Name          string
	Category      string
	Cadence       string
	ReminderType  string
	ReminderValue string
}

// StatusChangeResult pairs the refreshed view with the LeveledUp flag. The
// flag is reserved for gamification and stays false for now.
type StatusChangeResult struct {
	Habit     HabitView `json:"habit"`
	LeveledUp bool      `json:"leveled_up"`
}

type HabitService struct {
	habits HabitRepository
	logs   HabitLogRepository
	resets *DailyResetService
}

func NewHabitService(habits HabitRepository, logs HabitLogRepository, resets *DailyResetService) *HabitService {
	return &HabitService{
		habits: habits,
		logs:   logs,
		resets: resets,
	}
}

func (service *HabitService) CreateHabit(userID uint, input HabitInput) (models.Habit, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateHabitInput(input); err != nil {
		return models.Habit{}, err
	}

	taken, err := service.habits.ExistsByName(userID, input.Name)
	if err != nil {
		return models.Habit{}, err
	}
	if taken {
		return models.Habit{}, ErrDuplicateHabitName
	}

	habit := models.Habit{
		UserID:        userID,
		Name:          input.Name,
		Category:      input.Category,
		Cadence:       input.Cadence,
		ReminderType:  input.ReminderType,
		ReminderValue: input.ReminderValue,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// ListHabits runs the daily reset sweep first, then decorates every habit
// with today's derived status and progress.
func (service *HabitService) ListHabits(userID uint, now time.Time, location *time.Location) ([]HabitView, error) {
	if err := service.resets.RunIfNeeded(userID, now, location); err != nil {
		return nil, err
	}

	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	allLogs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	logsByHabit := make(map[uint][]models.HabitLog, len(habits))
	for _, logEntry := range allLogs {
		logsByHabit[logEntry.HabitID] = append(logsByHabit[logEntry.HabitID], logEntry)
	}

	views := make([]HabitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, DecorateHabit(habit, logsByHabit[habit.ID], now, location))
	}
	return views, nil
}

// GetHabit runs the daily reset sweep before reading, like every other read
// path, so a broken streak never leaks through the single-habit route.
func (service *HabitService) GetHabit(userID uint, habitID uint, now time.Time, location *time.Location) (HabitView, error) {
	if err := service.resets.RunIfNeeded(userID, now, location); err != nil {
		return HabitView{}, err
	}

	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return HabitView{}, err
	}
	if !found {
		return HabitView{}, ErrHabitNotFound
	}

	logs, err := service.logs.ListByHabit(habitID)
	if err != nil {
		return HabitView{}, err
	}
	return DecorateHabit(habit, logs, now, location), nil
}

func (service *HabitService) UpdateHabit(userID uint, habitID uint, input HabitInput) (models.Habit, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateHabitInput(HabitInput{
		Name:          input.Name,
		Category:      input.Category,
		Cadence:       models.CadenceDaily, // cadence is immutable after creation
		ReminderType:  input.ReminderType,
		ReminderValue: input.ReminderValue,
	}); err != nil {
		return models.Habit{}, err
	}

	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}

	if input.Name != habit.Name {
		taken, err := service.habits.ExistsByName(userID, input.Name)
		if err != nil {
			return models.Habit{}, err
		}
		if taken {
			return models.Habit{}, ErrDuplicateHabitName
		}
	}

	habit.Name = input.Name
	habit.Category = input.Category
	habit.ReminderType = input.ReminderType
	habit.ReminderValue = input.ReminderValue
	if err := service.habits.UpdateDetails(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) DeleteHabit(userID uint, habitID uint) error {
	_, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrHabitNotFound
	}
	return service.habits.DeleteWithLogs(habitID, userID)
}

// ChangeStatus runs the whole read-modify-write under optimistic retries:
// the habit is re-read on every attempt, the pure transition recomputed, and
// the commit rejected when a concurrent writer bumped the version first.
// After the bounded attempts run out the typed conflict error surfaces and
// no partial state is visible anywhere.
func (service *HabitService) ChangeStatus(userID uint, habitID uint, newStatus string, now time.Time, location *time.Location) (StatusChangeResult, error) {
	if !models.IsValidStatus(newStatus) {
		return StatusChangeResult{}, ErrInvalidStatus
	}

	for attempt := 0; attempt < statusChangeMaxAttempts; attempt++ {
		habit, found, err := service.habits.FindByIDForUser(habitID, userID)
		if err != nil {
			return StatusChangeResult{}, err
		}
		if !found {
			return StatusChangeResult{}, ErrHabitNotFound
		}

		logs, err := service.logs.ListByHabit(habitID)
		if err != nil {
			return StatusChangeResult{}, err
		}

		transition := TransitionStatus(habit, logs, newStatus, now, location)
		dayStart, dayEnd := DayRange(now, location)

		committed, err := service.habits.CommitStatusChange(&habit, dayStart, dayEnd, transition.TodayLog, transition.Streak)
		if err != nil {
			return StatusChangeResult{}, err
		}
		if committed {
			habit.Streak = transition.Streak
			habit.Version++
			return StatusChangeResult{
				Habit:     DecorateHabit(habit, transition.Logs, now, location),
				LeveledUp: false,
			}, nil
		}

		time.Sleep(statusChangeRetryDelay * time.Duration(attempt+1))
	}
	return StatusChangeResult{}, ErrTransactionConflict
}

func validateHabitInput(input HabitInput) error {
	if input.Name == "" {
		return ErrInvalidHabitName
	}
	if !models.IsValidCategory(input.Category) {
		return ErrInvalidCategory
	}
	if !models.IsValidCadence(input.Cadence) {
		return ErrInvalidCadence
	}
	return validateReminder(input.ReminderType, input.ReminderValue)
}

func validateReminder(reminderType string, reminderValue string) error {
	switch reminderType {
	case "":
		if reminderValue != "" {
			return ErrInvalidReminder
		}
		return nil
	case models.ReminderSpecificTime:
		if !reminderTimePattern.MatchString(reminderValue) {
			return ErrInvalidReminder
		}
		return nil
	case models.ReminderInterval:
		if !reminderIntervalPattern.MatchString(reminderValue) {
			return ErrInvalidReminder
		}
		return nil
	default:
		return ErrInvalidReminder
	}
}
