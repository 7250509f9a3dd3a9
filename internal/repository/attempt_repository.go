package repository

import (
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository stores completed practice attempts. The history is
// append-only; attempts are never edited after the fact.
type AttemptRepository interface {
	Create(attempt *model.PracticeAttempt) error
	FindByID(id uint) (*model.PracticeAttempt, error)
	FindAll() ([]model.PracticeAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.PracticeAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.PracticeAttempt, error) {
	var attempt model.PracticeAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAll() ([]model.PracticeAttempt, error) {
	var attempts []model.PracticeAttempt
	if err := r.db.Order("taken_at desc").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
