package model

import "time"

// Session is one user's run through the quiz. Rows are never updated or
// deleted; a user simply gets a fresh session on every /start.
type Session struct {
	ID        string    `gorm:"primarykey" json:"id"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
