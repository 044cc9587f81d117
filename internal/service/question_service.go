package service

import (
	"errors"
	"fmt"

	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/model"
	"github.com/gmorandi/parlaquiz/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService exposes the read-only question catalog.
type QuestionService interface {
	GetAllQuestions() (*dto.QuestionsListResponse, error)
	GetQuestion(id int) (*dto.QuestionsListResponse, error)
	Count() (int, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) GetAllQuestions() (*dto.QuestionsListResponse, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch question catalog")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	items := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		items = append(items, toQuestionResponse(q))
	}

	return &dto.QuestionsListResponse{
		Items:   items,
		Counter: dto.Counter{Total: len(items)},
	}, nil
}

func (s *questionService) GetQuestion(id int) (*dto.QuestionsListResponse, error) {
	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("error counting questions: %w", err)
	}

	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		log.Error().Err(err).Int("questionID", id).Msg("Failed to fetch question")
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}

	current := id
	return &dto.QuestionsListResponse{
		Items:   []dto.QuestionResponse{toQuestionResponse(*question)},
		Counter: dto.Counter{Total: int(total), CurrentNumber: &current},
	}, nil
}

func (s *questionService) Count() (int, error) {
	total, err := s.questionRepo.Count()
	if err != nil {
		return 0, fmt.Errorf("error counting questions: %w", err)
	}
	return int(total), nil
}

// toQuestionResponse strips the correctness flags; copier copies the
// matching ID/Text fields and we rebuild options by hand to be sure
// is_correct never leaks.
func toQuestionResponse(q model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, &q)
	resp.Options = make([]dto.OptionResponse, 0, len(q.Options))
	for _, o := range q.Options {
		resp.Options = append(resp.Options, dto.OptionResponse{ID: o.ID, Text: o.Text})
	}
	return resp
}
