package model

import (
	"time"

	"gorm.io/gorm"
)

// History item kinds. Every item carries an explicit kind tag; nothing is
// inferred from which fields happen to be set.
const (
	SolutionKindText  = "text"
	SolutionKindPDF   = "pdf"
	SolutionKindImage = "image"

	ToolKindExtract    = "extract_text"
	ToolKindAnalyze    = "analyze"
	ToolKindFlashcards = "flashcards"
	ToolKindSummary    = "summary"
)

// SolutionHistoryItem records one solved homework problem.
type SolutionHistoryItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Kind         string         `json:"kind" gorm:"not null"` // "text", "pdf", "image"
	Subject      string         `json:"subject"`
	Grade        int            `json:"grade"`
	Problem      string         `json:"problem" gorm:"type:text"`
	Solution     string         `json:"solution" gorm:"type:text;not null"`
	SolutionHTML string         `json:"solution_html,omitempty" gorm:"type:text"`
	FileName     string         `json:"file_name,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// AIToolHistoryItem records one study-tool run (extraction, flashcards,
// summary). Output holds JSON for flashcards and plain text otherwise.
type AIToolHistoryItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Kind      string         `json:"kind" gorm:"not null"` // "extract_text", "analyze", "flashcards", "summary"
	Input     string         `json:"input" gorm:"type:text"`
	Output    string         `json:"output" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
