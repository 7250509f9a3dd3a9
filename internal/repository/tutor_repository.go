package repository

import (
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"gorm.io/gorm"
)

type TutorSessionRepository interface {
	Create(session *model.TutorSession) error
	FindByID(id string) (*model.TutorSession, error)
	FindAll() ([]model.TutorSession, error)
	MostRecent() (*model.TutorSession, error)
	UpdateTitle(id, title string) error
	Delete(id string) error
	AppendMessage(message *model.TutorMessage) error
	Count() (int64, error)
}

type tutorSessionRepository struct {
	db *gorm.DB
}

func NewTutorSessionRepository(db *gorm.DB) TutorSessionRepository {
	return &tutorSessionRepository{db: db}
}

func (r *tutorSessionRepository) Create(session *model.TutorSession) error {
	return r.db.Create(session).Error
}

func (r *tutorSessionRepository) FindByID(id string) (*model.TutorSession, error) {
	var session model.TutorSession
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("tutor_messages.created_at asc")
	}).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *tutorSessionRepository) FindAll() ([]model.TutorSession, error) {
	var sessions []model.TutorSession
	if err := r.db.Order("updated_at desc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *tutorSessionRepository) MostRecent() (*model.TutorSession, error) {
	var session model.TutorSession
	if err := r.db.Order("updated_at desc").First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *tutorSessionRepository) UpdateTitle(id, title string) error {
	return r.db.Model(&model.TutorSession{}).Where("id = ?", id).Update("title", title).Error
}

func (r *tutorSessionRepository) Delete(id string) error {
	return r.db.Select("Messages").Delete(&model.TutorSession{ID: id}).Error
}

func (r *tutorSessionRepository) AppendMessage(message *model.TutorMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return err
	}
	// Touch the parent so the session list keeps recency order.
	return r.db.Model(&model.TutorSession{}).Where("id = ?", message.SessionID).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

func (r *tutorSessionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.TutorSession{}).Count(&count).Error
	return count, err
}
