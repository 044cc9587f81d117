package repository

import (
	"github.com/gmorandi/parlaquiz/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Find(sessionID string) (*model.Progress, error)
	// Upsert keeps the one-row-per-session invariant: an existing row is
	// updated in place, never duplicated.
	Upsert(progress *model.Progress) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Find(sessionID string) (*model.Progress, error) {
	var progress model.Progress
	if err := r.db.First(&progress, "session_id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Upsert(progress *model.Progress) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "current_question", "updated_at"}),
	}).Create(progress).Error
}
