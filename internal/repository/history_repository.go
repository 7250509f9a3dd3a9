package repository

import (
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"gorm.io/gorm"
)

// historyCap bounds the solution and AI tool histories to the most recent
// entries. Older rows are pruned on every write.
const historyCap = 50

type SolutionHistoryRepository interface {
	Create(item *model.SolutionHistoryItem) error
	FindRecent() ([]model.SolutionHistoryItem, error)
}

type solutionHistoryRepository struct {
	db *gorm.DB
}

func NewSolutionHistoryRepository(db *gorm.DB) SolutionHistoryRepository {
	return &solutionHistoryRepository{db: db}
}

func (r *solutionHistoryRepository) Create(item *model.SolutionHistoryItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return err
	}
	keep := r.db.Model(&model.SolutionHistoryItem{}).
		Select("id").Order("created_at desc").Limit(historyCap)
	return r.db.Where("id NOT IN (?)", keep).Delete(&model.SolutionHistoryItem{}).Error
}

func (r *solutionHistoryRepository) FindRecent() ([]model.SolutionHistoryItem, error) {
	var items []model.SolutionHistoryItem
	if err := r.db.Order("created_at desc").Limit(historyCap).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type AIToolHistoryRepository interface {
	Create(item *model.AIToolHistoryItem) error
	FindRecent() ([]model.AIToolHistoryItem, error)
}

type aiToolHistoryRepository struct {
	db *gorm.DB
}

func NewAIToolHistoryRepository(db *gorm.DB) AIToolHistoryRepository {
	return &aiToolHistoryRepository{db: db}
}

func (r *aiToolHistoryRepository) Create(item *model.AIToolHistoryItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return err
	}
	keep := r.db.Model(&model.AIToolHistoryItem{}).
		Select("id").Order("created_at desc").Limit(historyCap)
	return r.db.Where("id NOT IN (?)", keep).Delete(&model.AIToolHistoryItem{}).Error
}

func (r *aiToolHistoryRepository) FindRecent() ([]model.AIToolHistoryItem, error) {
	var items []model.AIToolHistoryItem
	if err := r.db.Order("created_at desc").Limit(historyCap).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
