package model

// PracticeQuestion is a multiple-choice question. Options always holds exactly
// four entries and CorrectAnswer equals one of them; the gateway parser drops
// anything the model returns that violates this.
type PracticeQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Topic         string   `json:"topic"`
	Subject       string   `json:"subject,omitempty"`
	Grade         int      `json:"grade,omitempty"`
}

// IsCorrect reports whether the given answer matches exactly.
func (q PracticeQuestion) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// OpenEndedQuestion carries a reference answer that is hidden from the student
// until their own answer has been graded.
type OpenEndedQuestion struct {
	Question        string `json:"question"`
	SuggestedAnswer string `json:"suggestedAnswer"`
	Topic           string `json:"topic"`
}

// OpenEndedFeedback is the grading result for one open-ended answer.
// Score is on a 0-10 scale.
type OpenEndedFeedback struct {
	Score                 float64  `json:"score"`
	Feedback              string   `json:"feedback"`
	Strengths             string   `json:"strengths"`
	Weaknesses            []string `json:"weaknesses"`
	SuggestedImprovements string   `json:"suggestedImprovements"`
}

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
