package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PracticeAttempt is an append-only record of one completed quiz. The question
// list is a snapshot; answers and explanations are keyed by question index.
type PracticeAttempt struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null"`
	Subject         string         `json:"subject" gorm:"not null;index"`
	Questions       datatypes.JSON `json:"questions" gorm:"not null"`
	Answers         datatypes.JSON `json:"answers"`
	Explanations    datatypes.JSON `json:"explanations"`
	Recommendations string         `json:"recommendations" gorm:"type:text"`
	Score           int            `json:"score" gorm:"not null"`
	Total           int            `json:"total" gorm:"not null"`
	TakenAt         time.Time      `json:"taken_at" gorm:"autoCreateTime"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *PracticeAttempt) SetQuestions(qs []PracticeQuestion) error {
	b, err := json.Marshal(qs)
	if err != nil {
		return err
	}
	a.Questions = datatypes.JSON(b)
	return nil
}

func (a *PracticeAttempt) GetQuestions() ([]PracticeQuestion, error) {
	var qs []PracticeQuestion
	if len(a.Questions) == 0 {
		return qs, nil
	}
	err := json.Unmarshal(a.Questions, &qs)
	return qs, err
}

func (a *PracticeAttempt) SetAnswers(answers map[int]string) error {
	b, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	a.Answers = datatypes.JSON(b)
	return nil
}

func (a *PracticeAttempt) GetAnswers() (map[int]string, error) {
	answers := make(map[int]string)
	if len(a.Answers) == 0 {
		return answers, nil
	}
	err := json.Unmarshal(a.Answers, &answers)
	return answers, err
}

func (a *PracticeAttempt) SetExplanations(expl map[int]string) error {
	b, err := json.Marshal(expl)
	if err != nil {
		return err
	}
	a.Explanations = datatypes.JSON(b)
	return nil
}

func (a *PracticeAttempt) GetExplanations() (map[int]string, error) {
	expl := make(map[int]string)
	if len(a.Explanations) == 0 {
		return expl, nil
	}
	err := json.Unmarshal(a.Explanations, &expl)
	return expl, err
}
