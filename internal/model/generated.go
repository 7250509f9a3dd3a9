package model

// MaxUploadBytes caps uploaded documents and photos everywhere they enter the
// system, before any gateway call.
const MaxUploadBytes = 15 * 1024 * 1024

// GeneratedQuiz is a quiz derived from an uploaded document.
type GeneratedQuiz struct {
	Subject   string             `json:"subject"`
	Questions []PracticeQuestion `json:"questions"`
}

// GeneratedOpenEnded is a set of open-ended questions derived from a document.
type GeneratedOpenEnded struct {
	Subject   string              `json:"subject"`
	Questions []OpenEndedQuestion `json:"questions"`
}

// MixedTest pairs multiple-choice and open-ended questions for one topic.
type MixedTest struct {
	Mcq       []PracticeQuestion  `json:"mcq"`
	OpenEnded []OpenEndedQuestion `json:"openEnded"`
}

// PlanUpdate is the result of a conversational edit of the weekly plan.
type PlanUpdate struct {
	UpdatedPlan  WeeklyPlan `json:"updatedPlan"`
	ResponseText string     `json:"responseText"`
}
