package service

import (
	"errors"
	"fmt"

	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/model"
	"github.com/gmorandi/parlaquiz/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerOutcome is what a single quiz turn produced. When Finished is
// set, Report carries the final placement results; otherwise
// NextQuestion is the index the session advanced to. Correct is nil
// when nothing was recorded (a resubmit after the session finished).
type AnswerOutcome struct {
	Correct      *bool
	Finished     bool
	NextQuestion int
	Report       *dto.ScoreReportResponse
}

// QuizService drives a session through the placement test:
// start -> serve question -> record answer -> advance or finish.
type QuizService interface {
	StartSession(userID string) (*model.Session, error)
	// LatestSessionID resolves ambiguous chat state to the user's most
	// recent session. Returns ErrNotFound when the user never started.
	LatestSessionID(userID string) (string, error)
	// CurrentQuestion returns the question the session is on, its index
	// and the catalog size. The question is nil when the session has
	// already answered everything.
	CurrentQuestion(sessionID string) (*dto.QuestionResponse, int, int, error)
	SubmitAnswer(sessionID, userID string, questionID, optionID int) (*AnswerOutcome, error)
	SessionReport(sessionID, userID string) (*dto.ScoreReportResponse, error)
	History(userID string) ([]dto.AnswerHistoryItem, error)
}

type quizService struct {
	questionRepo repository.QuestionRepository
	sessionRepo  repository.SessionRepository
	progressRepo repository.ProgressRepository
	answerRepo   repository.AnswerRepository
	scoring      ScoringService
}

func NewQuizService(
	questionRepo repository.QuestionRepository,
	sessionRepo repository.SessionRepository,
	progressRepo repository.ProgressRepository,
	answerRepo repository.AnswerRepository,
	scoring ScoringService,
) QuizService {
	return &quizService{
		questionRepo: questionRepo,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
		answerRepo:   answerRepo,
		scoring:      scoring,
	}
}

func (s *quizService) StartSession(userID string) (*model.Session, error) {
	session := &model.Session{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to create session")
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	progress := &model.Progress{
		SessionID:       session.ID,
		UserID:          userID,
		CurrentQuestion: 0,
	}
	if err := s.progressRepo.Upsert(progress); err != nil {
		log.Error().Err(err).Str("sessionID", session.ID).Msg("Failed to init progress")
		return nil, fmt.Errorf("error initializing progress: %w", err)
	}

	log.Info().Str("sessionID", session.ID).Str("userID", userID).Msg("Session started")
	return session, nil
}

func (s *quizService) LatestSessionID(userID string) (string, error) {
	session, err := s.sessionRepo.FindLatestByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("no session for user %s: %w", userID, ErrNotFound)
		}
		return "", fmt.Errorf("error resolving session for user %s: %w", userID, err)
	}
	return session.ID, nil
}

func (s *quizService) CurrentQuestion(sessionID string) (*dto.QuestionResponse, int, int, error) {
	index, err := s.progressIndex(sessionID)
	if err != nil {
		return nil, 0, 0, err
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("error counting questions: %w", err)
	}
	if total == 0 {
		return nil, 0, 0, fmt.Errorf("question catalog is empty: %w", ErrNotFound)
	}
	if index >= int(total) {
		return nil, index, int(total), nil
	}

	// The catalog is seeded with consecutive zero-based ids, so the
	// progress index doubles as the question id.
	question, err := s.questionRepo.FindByID(index)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, 0, fmt.Errorf("question %d: %w", index, ErrNotFound)
		}
		return nil, 0, 0, fmt.Errorf("error fetching question %d: %w", index, err)
	}

	resp := toQuestionResponse(*question)
	return &resp, index, int(total), nil
}

func (s *quizService) SubmitAnswer(sessionID, userID string, questionID, optionID int) (*AnswerOutcome, error) {
	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown session %s: %w", sessionID, ErrUnauthorized)
		}
		return nil, fmt.Errorf("error loading session %s: %w", sessionID, err)
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown question %d: %w", questionID, ErrValidation)
		}
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}

	var option *model.Option
	for i := range question.Options {
		if question.Options[i].ID == optionID {
			option = &question.Options[i]
			break
		}
	}
	if option == nil {
		return nil, fmt.Errorf("unknown option %d for question %d: %w", optionID, questionID, ErrValidation)
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("error counting questions: %w", err)
	}

	index, err := s.progressIndex(sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to read progress")
		return nil, err
	}
	if index >= int(total) {
		// Session already finished; re-deliver the report, change nothing
		// and claim nothing about the unrecorded answer.
		report, err := s.reportFor(sessionID)
		if err != nil {
			return nil, err
		}
		return &AnswerOutcome{Finished: true, NextQuestion: index, Report: report}, nil
	}

	// Two-phase write: insert with a pending verdict, then grade. The
	// verdict is always final before any score report can observe it.
	answer := model.Answer{
		SessionID:  sessionID,
		QuestionID: questionID,
		OptionID:   optionID,
	}
	if err := s.answerRepo.Create(&answer); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Int("questionID", questionID).Msg("Failed to record answer")
		return nil, fmt.Errorf("error recording answer: %w", err)
	}
	if err := s.answerRepo.UpdateCorrectness(answer.ID, option.IsCorrect); err != nil {
		log.Error().Err(err).Uint("answerID", answer.ID).Msg("Failed to grade answer")
		return nil, fmt.Errorf("error grading answer: %w", err)
	}

	// Advance only after the answer is durably recorded and graded; a
	// failure above must leave the progress pointer where it was.
	next := index + 1
	progress := &model.Progress{
		SessionID:       sessionID,
		UserID:          userID,
		CurrentQuestion: next,
	}
	if err := s.progressRepo.Upsert(progress); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Int("next", next).Msg("Failed to advance progress")
		return nil, fmt.Errorf("error advancing progress: %w", err)
	}

	correct := option.IsCorrect
	outcome := &AnswerOutcome{Correct: &correct, NextQuestion: next}
	if next >= int(total) {
		outcome.Finished = true
		report, err := s.reportFor(sessionID)
		if err != nil {
			return nil, err
		}
		outcome.Report = report
		log.Info().Str("sessionID", sessionID).Int("total", report.TotalAnswers).Msg("Session finished")
	}
	return outcome, nil
}

func (s *quizService) SessionReport(sessionID, userID string) (*dto.ScoreReportResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("error loading session %s: %w", sessionID, err)
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("session %s does not belong to user %s: %w", sessionID, userID, ErrNotFound)
	}
	return s.reportFor(sessionID)
}

func (s *quizService) History(userID string) ([]dto.AnswerHistoryItem, error) {
	answers, err := s.answerRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching history for user %s: %w", userID, err)
	}
	items := make([]dto.AnswerHistoryItem, 0, len(answers))
	for _, a := range answers {
		var item dto.AnswerHistoryItem
		copier.Copy(&item, &a)
		items = append(items, item)
	}
	return items, nil
}

func (s *quizService) reportFor(sessionID string) (*dto.ScoreReportResponse, error) {
	answers, err := s.answerRepo.FindBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("error fetching answers for session %s: %w", sessionID, err)
	}
	report := s.scoring.Score(answers)
	return &report, nil
}

// progressIndex treats a missing progress row as index 0 (users may
// lose client-side state). Any other read failure propagates: falling
// back to 0 there would rewind a live session on the next upsert.
func (s *quizService) progressIndex(sessionID string) (int, error) {
	progress, err := s.progressRepo.Find(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("error reading progress for session %s: %w", sessionID, err)
	}
	return progress.CurrentQuestion, nil
}
