package dto

// SubmitAnswerRequest is the body of POST /answers.
// QuestionID and OptionID are pointers because 0 is a valid id for both
// (the catalog is zero-indexed) and "required" would reject it otherwise.
type SubmitAnswerRequest struct {
	Token      string `json:"token" binding:"required"`
	UserID     string `json:"user_id" binding:"required"`
	SessionID  string `json:"session_id" binding:"required"`
	QuestionID *int   `json:"question_id" binding:"required"`
	OptionID   *int   `json:"option_id" binding:"required"`
}

// StatsRequest is the body of POST /answers/stats.
type StatsRequest struct {
	Token     string `json:"token" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}
