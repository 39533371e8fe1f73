package models

import "time"

// User is the profile slice the engine needs: identity plus the
// LastStreakCheck gate that keeps the daily reset sweep idempotent.
// Authentication lives upstream; rows are provisioned on first sight
// of an authenticated user id.
type User struct {
	ID              uint       `gorm:"primaryKey"`
	DisplayName     string     `gorm:"not null;default:''"`
	LastStreakCheck *time.Time `gorm:"type:date"`
	CreatedAt       time.Time  `gorm:"not null"`
}
