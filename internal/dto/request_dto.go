package dto

type SelectSubjectRequest struct {
	Subject string `json:"subject" binding:"required"`
}

type SelectPeriodRequest struct {
	Period string `json:"period" binding:"required,oneof=midterm1 final1 midterm2 final2"`
}

type SelectExamRequest struct {
	ExamID string `json:"examId" binding:"required"`
}

type StartUploadRequest struct {
	Mode string `json:"mode" binding:"required,oneof=pdf_upload image_upload"`
}

type GenerateQuizRequest struct {
	QuestionType string `json:"questionType" binding:"required,oneof=mcq open_ended"`
	NumQuestions int    `json:"numQuestions"` // 1-20, MCQ only
}

type TopicQuizRequest struct {
	Subject      string `json:"subject" binding:"required"`
	Topic        string `json:"topic" binding:"required"`
	NumQuestions int    `json:"numQuestions" binding:"required,min=1,max=20"`
}

type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type OpenEndedAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type ExamAnswerTextRequest struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type ExamQuestionRequest struct {
	Index int `json:"index"`
}

// PlanSlotRequest addresses one half-day slot of the weekly plan.
type PlanSlotRequest struct {
	DayIndex int    `json:"dayIndex"`
	Period   string `json:"period" binding:"required,oneof=morning evening"`
}

type StudySessionRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
	Activity string `json:"activity" binding:"required"`
}

// PlanEditRequest replaces one slot. A nil session clears it.
type PlanEditRequest struct {
	DayIndex int                  `json:"dayIndex"`
	Period   string               `json:"period" binding:"required,oneof=morning evening"`
	Session  *StudySessionRequest `json:"session"`
}

type PlanChatRequest struct {
	Request string `json:"request" binding:"required"`
}

type SolveTextRequest struct {
	Grade   int    `json:"grade"`
	Subject string `json:"subject" binding:"required"`
	Problem string `json:"problem" binding:"required"`
	Quick   bool   `json:"quick"`
}

type FollowUpRequest struct {
	Problem  string `json:"problem" binding:"required"`
	Solution string `json:"solution" binding:"required"`
	Question string `json:"question" binding:"required"`
}

type TextToolRequest struct {
	Text string `json:"text" binding:"required"`
}

type SetViewRequest struct {
	View string `json:"view" binding:"required"`
}
