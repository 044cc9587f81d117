package repository

import (
	"github.com/gmorandi/parlaquiz/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindAll() ([]model.Question, error)
	FindByID(id int) (*model.Question, error)
	Count() (int64, error)
	// ReplaceAll wipes the catalog and inserts the given questions in one
	// transaction. Only the startup seeder calls this.
	ReplaceAll(questions []model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("options.id ASC")
	}).Order("questions.id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(id int) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("options.id ASC")
	}).First(&question, "questions.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *questionRepository) ReplaceAll(questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		// Options ride along via the association.
		return tx.Create(&questions).Error
	})
}
