package model

import "time"

// AppState is the single row of cross-cutting UI state the client restores on
// startup: which view was open and which tutor thread was active.
type AppState struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	ActiveView           string    `json:"active_view" gorm:"default:'dashboard'"`
	ActiveTutorSessionID string    `json:"active_tutor_session_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
