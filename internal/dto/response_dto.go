package dto

import (
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/exam"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/session"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionResponse carries a practice session's ID alongside its state.
type SessionResponse struct {
	SessionID string           `json:"sessionId"`
	State     session.Snapshot `json:"state"`
}

// ExamListResponse is returned by period selection: the bundled exams for the
// chosen slot (possibly empty) plus the updated session state.
type ExamListResponse struct {
	Exams []exam.MockExam  `json:"exams"`
	State session.Snapshot `json:"state"`
}

type FollowUpResponse struct {
	Answer string `json:"answer"`
}

type FlashcardsResponse struct {
	Cards []model.Flashcard `json:"cards"`
}
