package controller

import (
	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/model"
	"github.com/gmorandi/parlaquiz/internal/service"
)

// Function-field stubs for the service interfaces; each test fills in
// only the calls it expects.

type stubQuizService struct {
	startSession    func(userID string) (*model.Session, error)
	latestSessionID func(userID string) (string, error)
	currentQuestion func(sessionID string) (*dto.QuestionResponse, int, int, error)
	submitAnswer    func(sessionID, userID string, questionID, optionID int) (*service.AnswerOutcome, error)
	sessionReport   func(sessionID, userID string) (*dto.ScoreReportResponse, error)
	history         func(userID string) ([]dto.AnswerHistoryItem, error)
}

func (s *stubQuizService) StartSession(userID string) (*model.Session, error) {
	return s.startSession(userID)
}

func (s *stubQuizService) LatestSessionID(userID string) (string, error) {
	return s.latestSessionID(userID)
}

func (s *stubQuizService) CurrentQuestion(sessionID string) (*dto.QuestionResponse, int, int, error) {
	return s.currentQuestion(sessionID)
}

func (s *stubQuizService) SubmitAnswer(sessionID, userID string, questionID, optionID int) (*service.AnswerOutcome, error) {
	return s.submitAnswer(sessionID, userID, questionID, optionID)
}

func (s *stubQuizService) SessionReport(sessionID, userID string) (*dto.ScoreReportResponse, error) {
	return s.sessionReport(sessionID, userID)
}

func (s *stubQuizService) History(userID string) ([]dto.AnswerHistoryItem, error) {
	return s.history(userID)
}

type stubQuestionService struct {
	getAllQuestions func() (*dto.QuestionsListResponse, error)
	getQuestion     func(id int) (*dto.QuestionsListResponse, error)
	count           func() (int, error)
}

func (s *stubQuestionService) GetAllQuestions() (*dto.QuestionsListResponse, error) {
	return s.getAllQuestions()
}

func (s *stubQuestionService) GetQuestion(id int) (*dto.QuestionsListResponse, error) {
	return s.getQuestion(id)
}

func (s *stubQuestionService) Count() (int, error) {
	return s.count()
}

type stubAuthService struct {
	valid bool
}

func (s *stubAuthService) ValidateToken(token string) bool {
	return s.valid
}
