package session

import "github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"

// Snapshot is a read-only copy of the session for the HTTP layer.
type Snapshot struct {
	Mode            Mode                             `json:"mode"`
	Subject         string                           `json:"subject,omitempty"`
	Period          string                           `json:"period,omitempty"`
	Title           string                           `json:"title,omitempty"`
	Questions       []model.PracticeQuestion         `json:"questions,omitempty"`
	Index           int                              `json:"index"`
	Answers         map[int]string                   `json:"answers,omitempty"`
	Score           int                              `json:"score"`
	Total           int                              `json:"total"`
	Percentage      int                              `json:"percentage"`
	Explanations    map[int]string                   `json:"explanations,omitempty"`
	Recommendations string                           `json:"recommendations,omitempty"`
	HasOpenEnded    bool                             `json:"hasOpenEnded"`
	OpenEnded       []model.OpenEndedQuestion        `json:"openEnded,omitempty"`
	OpenEndedIndex  int                              `json:"openEndedIndex"`
	OpenEndedAnswer string                           `json:"openEndedAnswer,omitempty"`
	Feedback        *model.OpenEndedFeedback         `json:"feedback,omitempty"`
	FollowUps       []model.PracticeQuestion         `json:"followUps,omitempty"`
	ExamAnswers     map[int]string                   `json:"examAnswers,omitempty"`
	ExamFeedback    map[int]*model.OpenEndedFeedback `json:"examFeedback,omitempty"`
	InFlight        bool                             `json:"inFlight"`
}

// Snapshot copies the current state under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Mode:            s.mode,
		Subject:         s.subject,
		Period:          s.period,
		Title:           s.title,
		Questions:       append([]model.PracticeQuestion(nil), s.questions...),
		Index:           s.index,
		Answers:         copyStringMap(s.answers),
		Score:           s.score,
		Total:           s.total,
		Explanations:    copyStringMap(s.explanations),
		Recommendations: s.recommendations,
		HasOpenEnded:    s.fromMixed && len(s.openEnded) > 0,
		OpenEnded:       append([]model.OpenEndedQuestion(nil), s.openEnded...),
		OpenEndedIndex:  s.oeIndex,
		OpenEndedAnswer: s.oeAnswer,
		Feedback:        s.oeResult,
		FollowUps:       append([]model.PracticeQuestion(nil), s.followUps...),
		ExamAnswers:     copyStringMap(s.examAnswers),
		InFlight:        s.inFlight,
	}
	if s.total > 0 {
		snap.Percentage = Percentage(s.score, s.total)
	}
	if len(s.examFeedback) > 0 {
		snap.ExamFeedback = make(map[int]*model.OpenEndedFeedback, len(s.examFeedback))
		for i, fb := range s.examFeedback {
			snap.ExamFeedback[i] = fb
		}
	}
	return snap
}

func copyStringMap(in map[int]string) map[int]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[int]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
