package services

import (
	"time"

	"github.com/strideapp/stride/internal/models"
)

type StatsHabitReader interface {
	ListByUser(userID uint) ([]models.Habit, error)
}

type StatsLogReader interface {
	ListByUser(userID uint) ([]models.HabitLog, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error)
}

// StatsService derives analytics from habit records and their logs. Every
// builder runs the daily reset sweep first so stale streaks never surface;
// beyond that nothing here mutates state, and rendering belongs to the
// callers.
type StatsService struct {
	habits StatsHabitReader
	logs   StatsLogReader
	resets *DailyResetService
}

func NewStatsService(habits StatsHabitReader, logs StatsLogReader, resets *DailyResetService) *StatsService {
	return &StatsService{
		habits: habits,
		logs:   logs,
		resets: resets,
	}
}

type StatsOverview struct {
	TotalHabits    int `json:"total_habits"`
	DailyHabits    int `json:"daily_habits"`
	LongestStreak  int `json:"longest_streak"`
	CompletedToday int `json:"completed_today"`
	PartialToday   int `json:"partial_today"`
	SkippedToday   int `json:"skipped_today"`
	PendingToday   int `json:"pending_today"`
}

func (service *StatsService) BuildOverview(userID uint, now time.Time, location *time.Location) (StatsOverview, error) {
	if err := service.resets.RunIfNeeded(userID, now, location); err != nil {
		return StatsOverview{}, err
	}

	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return StatsOverview{}, err
	}

	dayStart, dayEnd := DayRange(now, location)
	todayLogs, err := service.logs.ListByUserRange(userID, dayStart, dayEnd)
	if err != nil {
		return StatsOverview{}, err
	}

	statusByHabit := make(map[uint]string, len(todayLogs))
	for _, logEntry := range todayLogs {
		statusByHabit[logEntry.HabitID] = logEntry.Status
	}

	overview := StatsOverview{TotalHabits: len(habits)}
	for _, habit := range habits {
		if habit.Cadence == models.CadenceDaily {
			overview.DailyHabits++
		}
		if habit.Streak > overview.LongestStreak {
			overview.LongestStreak = habit.Streak
		}
		switch statusByHabit[habit.ID] {
		case models.StatusCompleted:
			overview.CompletedToday++
		case models.StatusPartiallyDone:
			overview.PartialToday++
		case models.StatusSkipped:
			overview.SkippedToday++
		default:
			overview.PendingToday++
		}
	}
	return overview, nil
}

const (
	HeatmapStateCompleted = "completed"
	HeatmapStatePartial   = "partial"
	HeatmapStateSkipped   = "skipped"
	HeatmapStateMixed     = "mixed"
	HeatmapStateNone      = "none"
)

type HeatmapDay struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Partial   int    `json:"partial"`
	Skipped   int    `json:"skipped"`
	State     string `json:"state"`
}

// BuildMonthHeatmap aggregates daily-cadence logs per day over the calendar
// month containing the reference day. A day's state collapses to the single
// status present, or "mixed" once statuses disagree.
func (service *StatsService) BuildMonthHeatmap(userID uint, reference time.Time, now time.Time, location *time.Location) ([]HeatmapDay, error) {
	if err := service.resets.RunIfNeeded(userID, now, location); err != nil {
		return nil, err
	}

	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	dailyHabits := make(map[uint]bool, len(habits))
	for _, habit := range habits {
		if habit.Cadence == models.CadenceDaily {
			dailyHabits[habit.ID] = true
		}
	}

	monthStart := MonthStart(reference, location)
	monthEnd := monthStart.AddDate(0, 1, 0)
	logs, err := service.logs.ListByUserRange(userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*HeatmapDay)
	for _, logEntry := range logs {
		if !dailyHabits[logEntry.HabitID] {
			continue
		}
		key := DayKey(logEntry.Date, location)
		cell, exists := byDay[key]
		if !exists {
			cell = &HeatmapDay{Date: key}
			byDay[key] = cell
		}
		switch logEntry.Status {
		case models.StatusCompleted:
			cell.Completed++
		case models.StatusPartiallyDone:
			cell.Partial++
		case models.StatusSkipped:
			cell.Skipped++
		}
	}

	days := make([]HeatmapDay, 0, 31)
	for cursor := monthStart; cursor.Before(monthEnd); cursor = cursor.AddDate(0, 0, 1) {
		key := cursor.Format("2006-01-02")
		cell := HeatmapDay{Date: key, State: HeatmapStateNone}
		if found, exists := byDay[key]; exists {
			cell = *found
			cell.State = heatmapState(cell)
		}
		days = append(days, cell)
	}
	return days, nil
}

func heatmapState(cell HeatmapDay) string {
	switch {
	case cell.Completed > 0 && cell.Partial == 0 && cell.Skipped == 0:
		return HeatmapStateCompleted
	case cell.Partial > 0 && cell.Completed == 0 && cell.Skipped == 0:
		return HeatmapStatePartial
	case cell.Skipped > 0 && cell.Completed == 0 && cell.Partial == 0:
		return HeatmapStateSkipped
	case cell.Completed+cell.Partial+cell.Skipped > 0:
		return HeatmapStateMixed
	default:
		return HeatmapStateNone
	}
}

type ConsistencyPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// BuildConsistency reports, for each of the trailing days, the share of the
// user's habits with a completed log that day. The current habit set stands
// in for the historical one, so habits created mid-window slightly deflate
// older points.
func (service *StatsService) BuildConsistency(userID uint, days int, now time.Time, location *time.Location) ([]ConsistencyPoint, error) {
	if days <= 0 {
		days = 7
	}
	if err := service.resets.RunIfNeeded(userID, now, location); err != nil {
		return nil, err
	}

	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	windowStart, _ := DayRange(now.AddDate(0, 0, -(days-1)), location)
	_, windowEnd := DayRange(now, location)
	logs, err := service.logs.ListByUserRange(userID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	completedByDay := make(map[string]map[uint]bool)
	for _, logEntry := range logs {
		if logEntry.Status != models.StatusCompleted {
			continue
		}
		key := DayKey(logEntry.Date, location)
		if completedByDay[key] == nil {
			completedByDay[key] = make(map[uint]bool)
		}
		completedByDay[key][logEntry.HabitID] = true
	}

	points := make([]ConsistencyPoint, 0, days)
	for cursor := windowStart; cursor.Before(windowEnd); cursor = cursor.AddDate(0, 0, 1) {
		key := cursor.Format("2006-01-02")
		point := ConsistencyPoint{Date: key, Total: len(habits), Completed: len(completedByDay[key])}
		if point.Total > 0 {
			point.Percent = point.Completed * 100 / point.Total
		}
		points = append(points, point)
	}
	return points, nil
}

type Milestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// BuildMilestones evaluates the fixed achievement catalog against the
// user's habits and logs.
func (service *StatsService) BuildMilestones(userID uint, now time.Time, location *time.Location) ([]Milestone, error) {
	if err := service.resets.RunIfNeeded(userID, now, location); err != nil {
		return nil, err
	}

	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	anyCompleted := false
	for _, logEntry := range logs {
		if logEntry.Status == models.StatusCompleted {
			anyCompleted = true
			break
		}
	}

	bestStreak := 0
	dailyCount := 0
	dailyAtLeastSeven := 0
	activeCategories := make(map[string]bool)
	for _, habit := range habits {
		if habit.Streak > bestStreak {
			bestStreak = habit.Streak
		}
		if habit.Cadence == models.CadenceDaily {
			dailyCount++
			if habit.Streak >= 7 {
				dailyAtLeastSeven++
			}
		}
		if habit.Streak > 0 {
			activeCategories[habit.Category] = true
		}
	}

	return []Milestone{
		{
			ID:          "first-step",
			Name:        "First Step",
			Description: "Complete a habit for the first time.",
			Unlocked:    anyCompleted,
		},
		{
			ID:          "streak-7",
			Name:        "One Week Strong",
			Description: "Maintain a 7-day streak on any habit.",
			Unlocked:    bestStreak >= 7,
		},
		{
			ID:          "streak-30",
			Name:        "Monthly Master",
			Description: "Maintain a 30-day streak on any habit.",
			Unlocked:    bestStreak >= 30,
		},
		{
			ID:          "streak-60",
			Name:        "Diamond Discipline",
			Description: "Achieve a 60-day streak.",
			Unlocked:    bestStreak >= 60,
		},
		{
			ID:          "full-house",
			Name:        "Full House",
			Description: "Hold a 7-day streak on every daily habit at once.",
			Unlocked:    dailyCount > 0 && dailyAtLeastSeven == dailyCount,
		},
		{
			ID:          "explorer",
			Name:        "Explorer",
			Description: "Keep active streaks across three different categories.",
			Unlocked:    len(activeCategories) >= 3,
		},
	}, nil
}
