package models

import "time"

const (
	MoodMin = 1
	MoodMax = 5
)

// MoodLog stores one mood rating per user per day.
type MoodLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_mood_logs_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_mood_logs_user_date"`
	Mood      int       `gorm:"not null"`
	Notes     string    `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidMood(mood int) bool {
	return mood >= MoodMin && mood <= MoodMax
}
