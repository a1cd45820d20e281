package models

import "time"

// LoginOTP stores one pending login code per email. Keeping these in the
// database instead of a process-local map lets codes survive restarts and
// work across multiple server instances.
type LoginOTP struct {
	Email     string    `gorm:"primaryKey" json:"email"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
