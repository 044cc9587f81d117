package bot

import (
	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/model"
	"github.com/gmorandi/parlaquiz/internal/service"
)

// fakeQuiz is an in-memory stand-in for the quiz driver: a fixed
// two-option catalog, one session per user, linear progress.
type fakeQuiz struct {
	total     int
	sessions  map[string]string // userID -> sessionID
	progress  map[string]int    // sessionID -> index
	submitted [][2]int          // (questionID, optionID) pairs
	report    dto.ScoreReportResponse
}

func newFakeQuiz(total int) *fakeQuiz {
	return &fakeQuiz{
		total:    total,
		sessions: make(map[string]string),
		progress: make(map[string]int),
		report: dto.ScoreReportResponse{
			TotalAnswers:     total,
			CorrectAnswers:   total,
			AverageScore:     100,
			Grade:            "A",
			ProficiencyLevel: "C2",
		},
	}
}

func (f *fakeQuiz) StartSession(userID string) (*model.Session, error) {
	id := "session-" + userID
	f.sessions[userID] = id
	f.progress[id] = 0
	return &model.Session{ID: id, UserID: userID}, nil
}

func (f *fakeQuiz) LatestSessionID(userID string) (string, error) {
	id, ok := f.sessions[userID]
	if !ok {
		return "", service.ErrNotFound
	}
	return id, nil
}

func (f *fakeQuiz) CurrentQuestion(sessionID string) (*dto.QuestionResponse, int, int, error) {
	if f.total == 0 {
		return nil, 0, 0, service.ErrNotFound
	}
	index := f.progress[sessionID]
	if index >= f.total {
		return nil, index, f.total, nil
	}
	return questionAt(index), index, f.total, nil
}

func (f *fakeQuiz) SubmitAnswer(sessionID, userID string, questionID, optionID int) (*service.AnswerOutcome, error) {
	if optionID != 0 && optionID != 1 {
		return nil, service.ErrValidation
	}
	f.submitted = append(f.submitted, [2]int{questionID, optionID})
	next := f.progress[sessionID] + 1
	f.progress[sessionID] = next
	correct := optionID == 1
	outcome := &service.AnswerOutcome{Correct: &correct, NextQuestion: next}
	if next >= f.total {
		outcome.Finished = true
		report := f.report
		outcome.Report = &report
	}
	return outcome, nil
}

func (f *fakeQuiz) SessionReport(sessionID, userID string) (*dto.ScoreReportResponse, error) {
	report := f.report
	return &report, nil
}

func (f *fakeQuiz) History(userID string) ([]dto.AnswerHistoryItem, error) {
	return nil, nil
}

func questionAt(index int) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		ID:   index,
		Text: "domanda",
		Options: []dto.OptionResponse{
			{ID: 0, Text: "sbagliata"},
			{ID: 1, Text: "giusta"},
		},
	}
}

type fakeQuestions struct {
	total int
}

func (f *fakeQuestions) GetAllQuestions() (*dto.QuestionsListResponse, error) {
	return &dto.QuestionsListResponse{Counter: dto.Counter{Total: f.total}}, nil
}

func (f *fakeQuestions) GetQuestion(id int) (*dto.QuestionsListResponse, error) {
	return &dto.QuestionsListResponse{
		Items:   []dto.QuestionResponse{*questionAt(id)},
		Counter: dto.Counter{Total: f.total, CurrentNumber: &id},
	}, nil
}

func (f *fakeQuestions) Count() (int, error) {
	return f.total, nil
}
