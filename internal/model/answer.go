package model

import "time"

// Answer is one submitted answer. IsCorrect is nil between the initial
// insert and the grading update (two-phase write), then set exactly once.
type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SessionID  string    `json:"session_id" gorm:"not null;index"`
	QuestionID int       `json:"question_id" gorm:"not null"`
	OptionID   int       `json:"option_id" gorm:"not null"`
	IsCorrect  *bool     `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}
