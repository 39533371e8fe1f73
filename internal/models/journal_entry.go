package models

import "time"

// JournalEntry holds the daily reflection and gratitude notes, one entry
// per user per day. Text is stored as written.
type JournalEntry struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_journal_entries_user_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_journal_entries_user_date"`
	Reflection string    `gorm:"not null;default:''"`
	Gratitude  string    `gorm:"not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
