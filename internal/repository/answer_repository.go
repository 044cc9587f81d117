package repository

import (
	"github.com/gmorandi/parlaquiz/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	// UpdateCorrectness completes the two-phase write: the pending verdict
	// set at insert time is replaced exactly once.
	UpdateCorrectness(answerID uint, isCorrect bool) error
	FindBySession(sessionID string) ([]model.Answer, error)
	FindByUser(userID string) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) UpdateCorrectness(answerID uint, isCorrect bool) error {
	return r.db.Model(&model.Answer{}).
		Where("id = ?", answerID).
		Update("is_correct", isCorrect).Error
}

func (r *answerRepository) FindBySession(sessionID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindByUser(userID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Joins("JOIN sessions ON sessions.id = answers.session_id").
		Where("sessions.user_id = ?", userID).
		Order("answers.created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
