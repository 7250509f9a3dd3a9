// Package session drives a student through selecting or generating a quiz,
// taking it and reviewing results, for multiple-choice, open-ended and mixed
// formats. One Session is one practice run; the Manager owns live sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/exam"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/rs/zerolog/log"
)

// MaxUploadSize caps uploaded documents and photos. Checked before any
// gateway call.
const MaxUploadSize = model.MaxUploadBytes

const (
	minQuestionCount = 1
	maxQuestionCount = 20
)

type Mode string

const (
	ModeSelection           Mode = "selection"
	ModeExamPeriodSelection Mode = "exam_period_selection"
	ModeSampleExamSelection Mode = "sample_exam_selection"
	ModePdfUpload           Mode = "pdf_upload"
	ModeImageUpload         Mode = "image_upload"
	ModeConfigureQuiz       Mode = "configure_quiz"
	ModeReady               Mode = "ready"
	ModeQuiz                Mode = "quiz"
	ModeResults             Mode = "results"
	ModeQuizOpenEnded       Mode = "quiz_open_ended"
	ModeResultsOpenEnded    Mode = "results_open_ended"
	ModeSolveOpenEndedExam  Mode = "solve_open_ended_exam"
	ModeGeneratingFromPlan  Mode = "generating_from_plan"
)

var (
	ErrBusy              = errors.New("session: another operation is in flight")
	ErrInvalidTransition = errors.New("session: action not allowed in current mode")
	ErrFileTooLarge      = errors.New("session: file exceeds the 15MB limit")
	ErrInvalidInput      = errors.New("session: invalid input")
	ErrEmptyGeneration   = errors.New("session: no questions were generated")
	ErrEmptyAnswer       = errors.New("session: answer is empty")
)

const explanationPlaceholder = "Không thể tạo giải thích cho câu hỏi này."

// Gateway is the slice of the AI gateway the practice flow needs.
type Gateway interface {
	ExplainIncorrectAnswer(ctx context.Context, question, userAnswer, correctAnswer string) (string, error)
	PracticeRecommendations(ctx context.Context, weakTopics []string) (string, error)
	PracticeQuestionsFromFile(ctx context.Context, data []byte, mimeType string, numQuestions int) (*model.GeneratedQuiz, error)
	OpenEndedQuestionsFromFile(ctx context.Context, data []byte, mimeType string) (*model.GeneratedOpenEnded, error)
	GradeOpenEndedAnswer(ctx context.Context, question model.OpenEndedQuestion, answer string) (*model.OpenEndedFeedback, error)
	GradeOpenEndedImageAnswer(ctx context.Context, question model.OpenEndedQuestion, image []byte, mimeType string) (*model.OpenEndedFeedback, error)
	FollowUpExercises(ctx context.Context, subject, topic string, weaknesses []string) ([]model.PracticeQuestion, error)
	MixedPracticeTest(ctx context.Context, subject, topic string, numMcq, numOpenEnded int) (*model.MixedTest, error)
}

// OnComplete receives the fully formed attempt exactly once per results entry.
type OnComplete func(attempt *model.PracticeAttempt) error

type examImage struct {
	data     []byte
	mimeType string
}

// Session is a mutex-guarded practice run. Operations that talk to the
// gateway release the lock for the round-trip; a generation counter captured
// beforehand makes completions that raced a Reset a no-op.
type Session struct {
	mu       sync.Mutex
	gateway  Gateway
	complete OnComplete

	mode     Mode
	gen      uint64
	inFlight bool

	grade   int
	subject string
	period  string
	title   string

	uploadData []byte
	uploadMime string

	questions []model.PracticeQuestion
	answers   map[int]string
	index     int

	score           int
	total           int
	explanations    map[int]string
	recommendations string

	fromMixed bool
	openEnded []model.OpenEndedQuestion
	oeIndex   int
	oeAnswer  string
	oeResult  *model.OpenEndedFeedback
	followUps []model.PracticeQuestion

	examAnswers  map[int]string
	examImages   map[int]examImage
	examFeedback map[int]*model.OpenEndedFeedback
}

func New(gateway Gateway, complete OnComplete) *Session {
	s := &Session{gateway: gateway, complete: complete}
	s.clearLocked()
	return s
}

// clearLocked wipes all per-run state and returns to selection.
func (s *Session) clearLocked() {
	s.mode = ModeSelection
	s.inFlight = false
	s.grade = 9
	s.subject = ""
	s.period = ""
	s.title = ""
	s.uploadData = nil
	s.uploadMime = ""
	s.questions = nil
	s.answers = map[int]string{}
	s.index = 0
	s.score = 0
	s.total = 0
	s.explanations = map[int]string{}
	s.recommendations = ""
	s.fromMixed = false
	s.openEnded = nil
	s.oeIndex = 0
	s.oeAnswer = ""
	s.oeResult = nil
	s.followUps = nil
	s.examAnswers = map[int]string{}
	s.examImages = map[int]examImage{}
	s.examFeedback = map[int]*model.OpenEndedFeedback{}
}

// Reset discards the whole run and returns to selection. Idempotent, safe
// from any mode. Responses of operations still in flight are dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.clearLocked()
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SelectSubject records the subject and moves on to period selection.
func (s *Session) SelectSubject(subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeSelection {
		return ErrInvalidTransition
	}
	if !exam.ValidSubject(subject) {
		return fmt.Errorf("%w: unknown subject %q", ErrInvalidInput, subject)
	}
	s.subject = subject
	s.mode = ModeExamPeriodSelection
	return nil
}

// SelectPeriod looks up the bundled exams for the chosen period. An empty
// result is a normal outcome.
func (s *Session) SelectPeriod(period string) ([]exam.MockExam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeExamPeriodSelection {
		return nil, ErrInvalidTransition
	}
	if !exam.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}
	s.period = period
	s.mode = ModeSampleExamSelection
	return exam.Lookup(s.grade, s.subject, period), nil
}

// SelectExam loads a bundled exam. MCQ exams become ready immediately;
// open-ended exams start the per-question solve flow with empty maps.
func (s *Session) SelectExam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeSampleExamSelection {
		return ErrInvalidTransition
	}
	e, ok := exam.ByID(id)
	if !ok {
		return fmt.Errorf("%w: unknown exam %q", ErrInvalidInput, id)
	}
	s.title = e.Title
	switch e.Type {
	case exam.TypeMCQ:
		s.questions = e.Questions
		s.answers = map[int]string{}
		s.index = 0
		s.mode = ModeReady
	case exam.TypeOpenEnded:
		s.openEnded = e.OpenEnded
		s.oeIndex = 0
		s.examAnswers = map[int]string{}
		s.examImages = map[int]examImage{}
		s.examFeedback = map[int]*model.OpenEndedFeedback{}
		s.mode = ModeSolveOpenEndedExam
	default:
		return fmt.Errorf("%w: exam %q has no type", ErrInvalidInput, id)
	}
	return nil
}

// StartUpload enters one of the upload modes.
func (s *Session) StartUpload(mode Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != ModePdfUpload && mode != ModeImageUpload {
		return fmt.Errorf("%w: %q is not an upload mode", ErrInvalidInput, mode)
	}
	if s.mode != ModeSelection && s.mode != ModeSampleExamSelection {
		return ErrInvalidTransition
	}
	s.mode = mode
	return nil
}

// AttachFile stores the upload payload and moves to quiz configuration.
// Oversized files are rejected here, before anything reaches the gateway.
func (s *Session) AttachFile(data []byte, mimeType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModePdfUpload && s.mode != ModeImageUpload {
		return ErrInvalidTransition
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if len(data) > MaxUploadSize {
		return ErrFileTooLarge
	}
	s.uploadData = data
	s.uploadMime = mimeType
	s.mode = ModeConfigureQuiz
	return nil
}

// Generate turns the attached file into questions. On success with at least
// one question the session becomes ready (MCQ) or enters the open-ended quiz.
// On failure or an empty set nothing is committed and the session stays here.
func (s *Session) Generate(ctx context.Context, questionType exam.Type, numQuestions int) error {
	s.mu.Lock()
	if s.mode != ModeConfigureQuiz {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrBusy
	}
	if questionType == exam.TypeMCQ && (numQuestions < minQuestionCount || numQuestions > maxQuestionCount) {
		s.mu.Unlock()
		return fmt.Errorf("%w: question count must be between %d and %d", ErrInvalidInput, minQuestionCount, maxQuestionCount)
	}
	s.inFlight = true
	gen := s.gen
	data, mime := s.uploadData, s.uploadMime
	s.mu.Unlock()

	var (
		subject   string
		questions []model.PracticeQuestion
		openEnded []model.OpenEndedQuestion
		err       error
	)
	switch questionType {
	case exam.TypeMCQ:
		var quiz *model.GeneratedQuiz
		quiz, err = s.gateway.PracticeQuestionsFromFile(ctx, data, mime, numQuestions)
		if err == nil {
			subject, questions = quiz.Subject, quiz.Questions
		}
	case exam.TypeOpenEnded:
		var set *model.GeneratedOpenEnded
		set, err = s.gateway.OpenEndedQuestionsFromFile(ctx, data, mime)
		if err == nil {
			subject, openEnded = set.Subject, set.Questions
		}
	default:
		err = fmt.Errorf("%w: unknown question type %q", ErrInvalidInput, questionType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.inFlight = false
	if err != nil {
		return err
	}
	if len(questions) == 0 && len(openEnded) == 0 {
		return ErrEmptyGeneration
	}
	s.subject = subject
	s.title = fmt.Sprintf("Bài tập %s", subject)
	if len(questions) > 0 {
		s.questions = questions
		s.answers = map[int]string{}
		s.index = 0
		s.mode = ModeReady
	} else {
		s.openEnded = openEnded
		s.oeIndex = 0
		s.mode = ModeQuizOpenEnded
	}
	return nil
}

// Start begins the quiz.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeReady {
		return ErrInvalidTransition
	}
	s.index = 0
	s.mode = ModeQuiz
	return nil
}

// Answer records the answer for the current question and advances. Answering
// the last question enters results: explanations for every wrong answer are
// requested strictly one after another, then one recommendation call, then
// the attempt is appended to history exactly once.
func (s *Session) Answer(ctx context.Context, answer string) error {
	s.mu.Lock()
	if s.mode != ModeQuiz {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrBusy
	}
	if _, done := s.answers[s.index]; done {
		s.mu.Unlock()
		return fmt.Errorf("%w: question %d already answered", ErrInvalidInput, s.index)
	}
	s.answers[s.index] = answer
	if s.index < len(s.questions)-1 {
		s.index++
		s.mu.Unlock()
		return nil
	}

	s.inFlight = true
	gen := s.gen
	questions := append([]model.PracticeQuestion(nil), s.questions...)
	answers := make(map[int]string, len(s.answers))
	for i, a := range s.answers {
		answers[i] = a
	}
	subject, title := s.subject, s.title
	s.mu.Unlock()

	score := 0
	var wrong []int
	seen := map[string]bool{}
	var weakTopics []string
	for i, q := range questions {
		if q.IsCorrect(answers[i]) {
			score++
			continue
		}
		wrong = append(wrong, i)
		if q.Topic != "" && !seen[q.Topic] {
			seen[q.Topic] = true
			weakTopics = append(weakTopics, q.Topic)
		}
	}

	explanations := map[int]string{}
	for _, i := range wrong {
		q := questions[i]
		expl, err := s.gateway.ExplainIncorrectAnswer(ctx, q.Question, answers[i], q.CorrectAnswer)
		if err != nil {
			log.Warn().Err(err).Int("question", i).Msg("Explanation failed, substituting placeholder")
			expl = explanationPlaceholder
		}
		explanations[i] = expl
	}
	recommendations, err := s.gateway.PracticeRecommendations(ctx, weakTopics)
	if err != nil {
		log.Warn().Err(err).Msg("Recommendation call failed")
		recommendations = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.inFlight = false
	s.score = score
	s.total = len(questions)
	s.explanations = explanations
	s.recommendations = recommendations
	s.mode = ModeResults

	attempt := &model.PracticeAttempt{
		Title:           title,
		Subject:         subject,
		Recommendations: recommendations,
		Score:           score,
		Total:           len(questions),
	}
	if err := attempt.SetQuestions(questions); err != nil {
		return err
	}
	if err := attempt.SetAnswers(answers); err != nil {
		return err
	}
	if err := attempt.SetExplanations(explanations); err != nil {
		return err
	}
	if s.complete != nil {
		if err := s.complete(attempt); err != nil {
			log.Error().Err(err).Msg("Failed to record practice attempt")
		}
	}
	return nil
}

// Percentage is the display value for the results screen, rounded half up.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return (score*100 + total/2) / total
}

// ContinueOpenEnded moves from mixed-set results into the retained open-ended
// questions.
func (s *Session) ContinueOpenEnded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeResults || !s.fromMixed || len(s.openEnded) == 0 {
		return ErrInvalidTransition
	}
	s.oeIndex = 0
	s.oeAnswer = ""
	s.oeResult = nil
	s.followUps = nil
	s.mode = ModeQuizOpenEnded
	return nil
}

// Retry reuses the current question set with a fresh answer map.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeResults || len(s.questions) == 0 {
		return ErrInvalidTransition
	}
	s.answers = map[int]string{}
	s.index = 0
	s.score = 0
	s.total = 0
	s.explanations = map[int]string{}
	s.recommendations = ""
	s.mode = ModeQuiz
	return nil
}

// LoadAttempt reconstructs a quiz-ready state from a stored attempt: the same
// questions in the same order, with an empty answer map.
func (s *Session) LoadAttempt(attempt *model.PracticeAttempt) error {
	questions, err := attempt.GetQuestions()
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("%w: attempt has no questions", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeSelection {
		return ErrInvalidTransition
	}
	s.subject = attempt.Subject
	s.title = attempt.Title
	s.questions = questions
	s.answers = map[int]string{}
	s.index = 0
	s.mode = ModeReady
	return nil
}

// SubmitOpenEndedAnswer grades the current open-ended question. When the
// feedback names weaknesses, one follow-up call asks for two reinforcement
// MCQs; a failed follow-up call just means no follow-ups. A failed grading
// call keeps the student here with their answer preserved.
func (s *Session) SubmitOpenEndedAnswer(ctx context.Context, answer string) error {
	s.mu.Lock()
	if s.mode != ModeQuizOpenEnded {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrBusy
	}
	if answer == "" {
		s.mu.Unlock()
		return ErrEmptyAnswer
	}
	s.inFlight = true
	s.oeAnswer = answer
	gen := s.gen
	question := s.openEnded[s.oeIndex]
	subject := s.subject
	s.mu.Unlock()

	feedback, err := s.gateway.GradeOpenEndedAnswer(ctx, question, answer)
	var followUps []model.PracticeQuestion
	if err == nil && len(feedback.Weaknesses) > 0 {
		fu, fuErr := s.gateway.FollowUpExercises(ctx, subject, question.Topic, feedback.Weaknesses)
		if fuErr != nil {
			log.Warn().Err(fuErr).Msg("Follow-up exercise call failed")
		} else {
			followUps = fu
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.inFlight = false
	if err != nil {
		return err
	}
	s.oeResult = feedback
	s.followUps = followUps
	s.mode = ModeResultsOpenEnded
	return nil
}

// NextOpenEnded clears the per-question transient state and advances, or
// resets the whole run after the last question.
func (s *Session) NextOpenEnded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeResultsOpenEnded {
		return ErrInvalidTransition
	}
	s.oeAnswer = ""
	s.oeResult = nil
	s.followUps = nil
	if s.oeIndex >= len(s.openEnded)-1 {
		s.gen++
		s.clearLocked()
		return nil
	}
	s.oeIndex++
	s.mode = ModeQuizOpenEnded
	return nil
}

// SelectExamQuestion navigates within a bundled open-ended exam. Feedback
// already obtained for other questions is retained.
func (s *Session) SelectExamQuestion(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeSolveOpenEndedExam {
		return ErrInvalidTransition
	}
	if index < 0 || index >= len(s.openEnded) {
		return fmt.Errorf("%w: question index %d out of range", ErrInvalidInput, index)
	}
	s.oeIndex = index
	return nil
}

// SetExamAnswerText stores a typed answer, clearing any captured photo for
// the same question.
func (s *Session) SetExamAnswerText(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeSolveOpenEndedExam {
		return ErrInvalidTransition
	}
	if index < 0 || index >= len(s.openEnded) {
		return fmt.Errorf("%w: question index %d out of range", ErrInvalidInput, index)
	}
	s.examAnswers[index] = text
	delete(s.examImages, index)
	return nil
}

// SetExamAnswerImage stores a photographed answer, clearing any typed text
// for the same question.
func (s *Session) SetExamAnswerImage(index int, data []byte, mimeType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeSolveOpenEndedExam {
		return ErrInvalidTransition
	}
	if index < 0 || index >= len(s.openEnded) {
		return fmt.Errorf("%w: question index %d out of range", ErrInvalidInput, index)
	}
	if len(data) > MaxUploadSize {
		return ErrFileTooLarge
	}
	s.examImages[index] = examImage{data: data, mimeType: mimeType}
	delete(s.examAnswers, index)
	return nil
}

// GradeExamAnswer grades one exam question from whichever answer form is
// present. Neither form present is rejected before any gateway call. The
// feedback is retained for the rest of the exam.
func (s *Session) GradeExamAnswer(ctx context.Context, index int) error {
	s.mu.Lock()
	if s.mode != ModeSolveOpenEndedExam {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrBusy
	}
	if index < 0 || index >= len(s.openEnded) {
		s.mu.Unlock()
		return fmt.Errorf("%w: question index %d out of range", ErrInvalidInput, index)
	}
	text, hasText := s.examAnswers[index]
	img, hasImage := s.examImages[index]
	if (!hasText || text == "") && !hasImage {
		s.mu.Unlock()
		return ErrEmptyAnswer
	}
	s.inFlight = true
	gen := s.gen
	question := s.openEnded[index]
	s.mu.Unlock()

	var (
		feedback *model.OpenEndedFeedback
		err      error
	)
	if hasImage {
		feedback, err = s.gateway.GradeOpenEndedImageAnswer(ctx, question, img.data, img.mimeType)
	} else {
		feedback, err = s.gateway.GradeOpenEndedAnswer(ctx, question, text)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.inFlight = false
	if err != nil {
		return err
	}
	s.examFeedback[index] = feedback
	return nil
}

// StartFromPlan generates a mixed question set for a plan slot. MCQs route to
// ready, keeping leftover open-ended questions for later continuation; only
// open-ended routes straight there; both empty returns to selection with an
// error and nothing retained.
func (s *Session) StartFromPlan(ctx context.Context, req model.PlanPracticeRequest) error {
	s.mu.Lock()
	if s.mode != ModeSelection {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrBusy
	}
	if !exam.ValidSubject(req.Subject) {
		s.mu.Unlock()
		return fmt.Errorf("%w: unknown subject %q", ErrInvalidInput, req.Subject)
	}
	s.inFlight = true
	s.mode = ModeGeneratingFromPlan
	gen := s.gen
	s.mu.Unlock()

	test, err := s.gateway.MixedPracticeTest(ctx, req.Subject, req.Topic, req.NumMcq, req.NumOpenEnded)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.inFlight = false
	if err != nil {
		s.clearLocked()
		return err
	}
	if len(test.Mcq) == 0 && len(test.OpenEnded) == 0 {
		s.clearLocked()
		return ErrEmptyGeneration
	}
	s.subject = req.Subject
	s.title = fmt.Sprintf("Luyện tập: %s", req.Topic)
	s.openEnded = test.OpenEnded
	s.oeIndex = 0
	if len(test.Mcq) > 0 {
		s.questions = test.Mcq
		s.answers = map[int]string{}
		s.index = 0
		s.fromMixed = len(test.OpenEnded) > 0
		s.mode = ModeReady
	} else {
		s.mode = ModeQuizOpenEnded
	}
	return nil
}
