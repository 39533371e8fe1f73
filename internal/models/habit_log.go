package models

import "time"

// HabitLog is one persisted (date, status) pair for a habit. Date carries
// day precision; the unique index keeps at most one entry per habit per day.
type HabitLog struct {
	ID        uint      `gorm:"primaryKey"`
	HabitID   uint      `gorm:"not null;uniqueIndex:uidx_habit_logs_habit_date"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_logs_habit_date"`
	Status    string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
