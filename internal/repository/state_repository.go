package repository

import (
	"errors"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"gorm.io/gorm"
)

// StateRepository stores the single app shell state row (active view and
// active tutor session).
type StateRepository interface {
	Get() (*model.AppState, error)
	Save(state *model.AppState) error
}

type stateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

// Get returns the stored state, or (nil, nil) when none exists yet.
func (r *stateRepository) Get() (*model.AppState, error) {
	var state model.AppState
	err := r.db.First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) Save(state *model.AppState) error {
	return r.db.Save(state).Error
}
