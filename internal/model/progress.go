package model

import "time"

// Progress points at the current question of a session. One row per
// session, written with upsert semantics. CurrentQuestion never decreases.
type Progress struct {
	SessionID       string    `gorm:"primarykey" json:"session_id"`
	UserID          string    `json:"user_id" gorm:"not null;index"`
	CurrentQuestion int       `json:"current_question" gorm:"not null;default:0"`
	UpdatedAt       time.Time `json:"updated_at"`
}
