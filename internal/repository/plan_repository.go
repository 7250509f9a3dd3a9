package repository

import (
	"errors"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"gorm.io/gorm"
)

// PlanRepository stores the single current weekly plan row.
type PlanRepository interface {
	Get() (*model.WeeklyPlanRecord, error)
	Save(record *model.WeeklyPlanRecord) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Get returns the stored plan, or (nil, nil) when no plan exists yet.
func (r *planRepository) Get() (*model.WeeklyPlanRecord, error) {
	var record model.WeeklyPlanRecord
	err := r.db.First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *planRepository) Save(record *model.WeeklyPlanRecord) error {
	return r.db.Save(record).Error
}
