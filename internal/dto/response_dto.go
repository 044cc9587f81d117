package dto

import "time"

// OptionResponse deliberately omits the correctness flag; clients must
// never learn the right answer from the question payload.
type OptionResponse struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type QuestionResponse struct {
	ID      int              `json:"id"`
	Text    string           `json:"text"`
	Options []OptionResponse `json:"options"`
}

// Counter mirrors the pagination-ish envelope of the questions API:
// total catalog size plus, for single-question lookups, the position.
type Counter struct {
	Total         int  `json:"total"`
	CurrentNumber *int `json:"current_number,omitempty"`
}

type QuestionsListResponse struct {
	Items   []QuestionResponse `json:"items"`
	Counter Counter            `json:"counter"`
}

// AnswerAckResponse acknowledges a submitted answer.
type AnswerAckResponse struct {
	Status  string `json:"status"`
	Correct *bool  `json:"correct,omitempty"`
}

// ScoreReportResponse is the final placement report for a session.
type ScoreReportResponse struct {
	TotalAnswers     int     `json:"total_answers"`
	CorrectAnswers   int     `json:"correct_answers"`
	AverageScore     float64 `json:"average_score"`
	Grade            string  `json:"grade"`
	ProficiencyLevel string  `json:"proficiency_level"`
}

type AnswerHistoryItem struct {
	ID         uint      `json:"id"`
	SessionID  string    `json:"session_id"`
	QuestionID int       `json:"question_id"`
	OptionID   int       `json:"option_id"`
	IsCorrect  *bool     `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}

type AnswerHistoryResponse struct {
	Items   []AnswerHistoryItem `json:"items"`
	Counter Counter             `json:"counter"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
