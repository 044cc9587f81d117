package repository

import (
	"github.com/gmorandi/parlaquiz/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	// Create is idempotent: inserting an existing session id is a no-op.
	Create(session *model.Session) error
	FindByID(id string) (*model.Session, error)
	// FindLatestByUser returns the most recently created session for a user.
	FindLatestByUser(userID string) (*model.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(session).Error
}

func (r *sessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindLatestByUser(userID string) (*model.Session, error) {
	var session model.Session
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
