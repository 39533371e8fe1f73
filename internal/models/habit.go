package models

import "time"

const (
	StatusCompleted     = "completed"
	StatusSkipped       = "skipped"
	StatusPending       = "pending"
	StatusPartiallyDone = "partially-done"
)

const (
	CadenceDaily   = "daily"
	CadenceWeekly  = "weekly"
	CadenceMonthly = "monthly"
)

const (
	CategoryHealth       = "Health"
	CategoryStudy        = "Study"
	CategoryWork         = "Work"
	CategoryPersonal     = "Personal"
	CategoryFitness      = "Fitness"
	CategoryProductivity = "Productivity"
	CategoryOther        = "Other"
)

const (
	ReminderSpecificTime = "specific_time"
	ReminderInterval     = "interval"
)

// Habit is one recurring practice owned by a user. Streak only carries
// meaning for daily habits; weekly and monthly habits are measured through
// the windowed progress signal instead. Version is the optimistic
// concurrency token bumped on every status-change commit.
type Habit struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_habits_user_name"`
	Name          string    `gorm:"not null;uniqueIndex:uidx_habits_user_name"`
	Category      string    `gorm:"not null;default:Other"`
	Cadence       string    `gorm:"not null;default:daily"`
	Streak        int       `gorm:"not null;default:0"`
	Version       uint      `gorm:"not null;default:0"`
	ReminderType  string    `gorm:"not null;default:''"`
	ReminderValue string    `gorm:"not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func HabitCategories() []string {
	return []string{
		CategoryHealth,
		CategoryStudy,
		CategoryWork,
		CategoryPersonal,
		CategoryFitness,
		CategoryProductivity,
		CategoryOther,
	}
}

func IsValidCategory(category string) bool {
	for _, known := range HabitCategories() {
		if category == known {
			return true
		}
	}
	return false
}

func IsValidCadence(cadence string) bool {
	return cadence == CadenceDaily || cadence == CadenceWeekly || cadence == CadenceMonthly
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusSkipped, StatusPending, StatusPartiallyDone:
		return true
	}
	return false
}

// IsPersistedStatus reports whether the status is stored as a log row.
// Pending is expressed by the absence of a row for that date.
func IsPersistedStatus(status string) bool {
	return IsValidStatus(status) && status != StatusPending
}
