package service

import (
	"sort"

	"github.com/gmorandi/parlaquiz/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests. They mimic
// the gorm-backed implementations closely enough to exercise the
// drivers, including gorm.ErrRecordNotFound on misses.

type fakeQuestionRepo struct {
	questions []model.Question
	findErr   error
	countErr  error
}

func (f *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.Question, len(f.questions))
	copy(out, f.questions)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionRepo) FindByID(id int) (*model.Question, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.questions {
		if f.questions[i].ID == id {
			q := f.questions[i]
			return &q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuestionRepo) Count() (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.questions)), nil
}

func (f *fakeQuestionRepo) ReplaceAll(questions []model.Question) error {
	f.questions = questions
	return nil
}

type fakeSessionRepo struct {
	sessions  []model.Session
	createErr error
}

func (f *fakeSessionRepo) Create(session *model.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, s := range f.sessions {
		if s.ID == session.ID {
			return nil // idempotent
		}
	}
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionRepo) FindByID(id string) (*model.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSessionRepo) FindLatestByUser(userID string) (*model.Session, error) {
	// Creation order stands in for created_at ordering.
	for i := len(f.sessions) - 1; i >= 0; i-- {
		if f.sessions[i].UserID == userID {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProgressRepo struct {
	rows      map[string]model.Progress
	findErr   error
	upsertErr error
	upserts   int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]model.Progress)}
}

func (f *fakeProgressRepo) Find(sessionID string) (*model.Progress, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	row, ok := f.rows[sessionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (f *fakeProgressRepo) Upsert(progress *model.Progress) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.rows[progress.SessionID] = *progress
	return nil
}

type fakeAnswerRepo struct {
	answers   []model.Answer
	nextID    uint
	createErr error
	updateErr error
}

func (f *fakeAnswerRepo) Create(answer *model.Answer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	answer.ID = f.nextID
	f.answers = append(f.answers, *answer)
	return nil
}

func (f *fakeAnswerRepo) UpdateCorrectness(answerID uint, isCorrect bool) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.answers {
		if f.answers[i].ID == answerID {
			v := isCorrect
			f.answers[i].IsCorrect = &v
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAnswerRepo) FindBySession(sessionID string) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range f.answers {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) FindByUser(userID string) ([]model.Answer, error) {
	return f.answers, nil
}

// twoOptionCatalog builds n questions with option 0 wrong and option 1
// correct, mirroring the seeded catalog's shape.
func twoOptionCatalog(n int) []model.Question {
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			ID:   i,
			Text: "domanda",
			Options: []model.Option{
				{ID: 0, QuestionID: i, Text: "sbagliata", IsCorrect: false},
				{ID: 1, QuestionID: i, Text: "giusta", IsCorrect: true},
			},
		})
	}
	return questions
}
