package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	TutorRoleUser  = "user"
	TutorRoleModel = "model"
)

// TutorSession is one chat thread with the AI tutor. Messages are append-only.
type TutorSession struct {
	ID        string         `gorm:"primarykey" json:"id"` // uuid
	Title     string         `json:"title" gorm:"not null"`
	Messages  []TutorMessage `json:"messages,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type TutorMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID string    `json:"session_id" gorm:"not null;index"`
	Role      string    `json:"role" gorm:"not null"` // "user", "model"
	Text      string    `json:"text" gorm:"type:text;not null"`
	HTML      string    `json:"html,omitempty" gorm:"type:text"` // rendered model replies
	FileName  string    `json:"file_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
