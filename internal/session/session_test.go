package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/exam"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
)

type fakeGateway struct {
	explainCalls   int
	recommendCalls int
	generateCalls  int
	gradeCalls     int
	imageCalls     int
	followUpCalls  int
	mixedCalls     int

	lastWeakTopics []string

	quiz      *model.GeneratedQuiz
	openEnded *model.GeneratedOpenEnded
	feedback  *model.OpenEndedFeedback
	followUps []model.PracticeQuestion
	mixed     *model.MixedTest

	explainErr error
	gradeErr   error
	mixedErr   error
}

func (f *fakeGateway) ExplainIncorrectAnswer(ctx context.Context, question, userAnswer, correctAnswer string) (string, error) {
	f.explainCalls++
	if f.explainErr != nil {
		return "", f.explainErr
	}
	return "giải thích: " + question, nil
}

func (f *fakeGateway) PracticeRecommendations(ctx context.Context, weakTopics []string) (string, error) {
	f.recommendCalls++
	f.lastWeakTopics = weakTopics
	return "lời khuyên", nil
}

func (f *fakeGateway) PracticeQuestionsFromFile(ctx context.Context, data []byte, mimeType string, numQuestions int) (*model.GeneratedQuiz, error) {
	f.generateCalls++
	return f.quiz, nil
}

func (f *fakeGateway) OpenEndedQuestionsFromFile(ctx context.Context, data []byte, mimeType string) (*model.GeneratedOpenEnded, error) {
	f.generateCalls++
	return f.openEnded, nil
}

func (f *fakeGateway) GradeOpenEndedAnswer(ctx context.Context, question model.OpenEndedQuestion, answer string) (*model.OpenEndedFeedback, error) {
	f.gradeCalls++
	if f.gradeErr != nil {
		return nil, f.gradeErr
	}
	return f.feedback, nil
}

func (f *fakeGateway) GradeOpenEndedImageAnswer(ctx context.Context, question model.OpenEndedQuestion, image []byte, mimeType string) (*model.OpenEndedFeedback, error) {
	f.imageCalls++
	return f.feedback, nil
}

func (f *fakeGateway) FollowUpExercises(ctx context.Context, subject, topic string, weaknesses []string) ([]model.PracticeQuestion, error) {
	f.followUpCalls++
	return f.followUps, nil
}

func (f *fakeGateway) MixedPracticeTest(ctx context.Context, subject, topic string, numMcq, numOpenEnded int) (*model.MixedTest, error) {
	f.mixedCalls++
	if f.mixedErr != nil {
		return nil, f.mixedErr
	}
	return f.mixed, nil
}

func mcq(n int) []model.PracticeQuestion {
	out := make([]model.PracticeQuestion, n)
	for i := range out {
		out[i] = model.PracticeQuestion{
			Question:      fmt.Sprintf("câu %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Topic:         fmt.Sprintf("chủ đề %d", i%2),
		}
	}
	return out
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{7, 10, 70},
		{1, 3, 33},
		{2, 3, 67},
		{25, 25, 100},
		{0, 10, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestBundledEnglishExamFullMarks(t *testing.T) {
	gw := &fakeGateway{}
	var recorded []*model.PracticeAttempt
	s := New(gw, func(a *model.PracticeAttempt) error {
		recorded = append(recorded, a)
		return nil
	})

	if err := s.SelectSubject(exam.SubjectEnglish); err != nil {
		t.Fatalf("SelectSubject: %v", err)
	}
	exams, err := s.SelectPeriod(exam.PeriodMidterm1)
	if err != nil {
		t.Fatalf("SelectPeriod: %v", err)
	}
	if len(exams) == 0 {
		t.Fatal("no bundled exams for Tiếng Anh midterm1")
	}
	if err := s.SelectExam("ta9-gk1-de1-mcq"); err != nil {
		t.Fatalf("SelectExam: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	questions := s.Snapshot().Questions
	if len(questions) != 25 {
		t.Fatalf("exam has %d questions, want 25", len(questions))
	}
	for _, q := range questions {
		if err := s.Answer(context.Background(), q.CorrectAnswer); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	snap := s.Snapshot()
	if snap.Mode != ModeResults {
		t.Fatalf("mode = %q, want results", snap.Mode)
	}
	if snap.Score != 25 || snap.Total != 25 {
		t.Errorf("score = %d/%d, want 25/25", snap.Score, snap.Total)
	}
	if snap.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", snap.Percentage)
	}
	if gw.explainCalls != 0 {
		t.Errorf("explanation calls = %d, want 0 for a perfect score", gw.explainCalls)
	}
	if gw.recommendCalls != 1 {
		t.Errorf("recommendation calls = %d, want exactly 1", gw.recommendCalls)
	}
	if len(recorded) != 1 {
		t.Fatalf("recorded %d attempts, want exactly 1", len(recorded))
	}
	if recorded[0].Score != 25 || recorded[0].Total != 25 {
		t.Errorf("attempt score = %d/%d, want 25/25", recorded[0].Score, recorded[0].Total)
	}
}

func startQuiz(t *testing.T, gw *fakeGateway, complete OnComplete, questions []model.PracticeQuestion) *Session {
	t.Helper()
	s := New(gw, complete)
	s.mu.Lock()
	s.subject = exam.SubjectMath
	s.title = "Luyện tập"
	s.questions = questions
	s.answers = map[int]string{}
	s.mode = ModeQuiz
	s.mu.Unlock()
	return s
}

func TestResultsScoreAndExplanations(t *testing.T) {
	gw := &fakeGateway{}
	var recorded []*model.PracticeAttempt
	s := startQuiz(t, gw, func(a *model.PracticeAttempt) error {
		recorded = append(recorded, a)
		return nil
	}, mcq(4))

	// Questions 0 and 2 right, 1 and 3 wrong. Both wrong share topic set
	// {chủ đề 1}, so the recommendation call sees one distinct topic.
	answers := []string{"A", "B", "A", "C"}
	for _, a := range answers {
		if err := s.Answer(context.Background(), a); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	snap := s.Snapshot()
	if snap.Score != 2 || snap.Total != 4 {
		t.Errorf("score = %d/%d, want 2/4", snap.Score, snap.Total)
	}
	if gw.explainCalls != 2 {
		t.Errorf("explanation calls = %d, want 2", gw.explainCalls)
	}
	if len(gw.lastWeakTopics) != 1 || gw.lastWeakTopics[0] != "chủ đề 1" {
		t.Errorf("weak topics = %v, want [chủ đề 1]", gw.lastWeakTopics)
	}
	if len(snap.Explanations) != 2 {
		t.Errorf("stored %d explanations, want 2", len(snap.Explanations))
	}
	if len(recorded) != 1 {
		t.Fatalf("recorded %d attempts, want 1", len(recorded))
	}
	got, err := recorded[0].GetAnswers()
	if err != nil {
		t.Fatalf("GetAnswers: %v", err)
	}
	if got[1] != "B" || got[3] != "C" {
		t.Errorf("stored answers = %v", got)
	}
}

func TestExplanationFailureSubstitutesPlaceholder(t *testing.T) {
	gw := &fakeGateway{explainErr: errors.New("boom")}
	s := startQuiz(t, gw, nil, mcq(2))

	for _, a := range []string{"B", "A"} {
		if err := s.Answer(context.Background(), a); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	snap := s.Snapshot()
	if snap.Mode != ModeResults {
		t.Fatalf("mode = %q, want results", snap.Mode)
	}
	if snap.Explanations[0] != explanationPlaceholder {
		t.Errorf("explanation = %q, want placeholder", snap.Explanations[0])
	}
}

func TestResetIsIdempotentFromAnyMode(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, nil)

	if err := s.SelectSubject(exam.SubjectScience); err != nil {
		t.Fatalf("SelectSubject: %v", err)
	}
	if _, err := s.SelectPeriod(exam.PeriodMidterm1); err != nil {
		t.Fatalf("SelectPeriod: %v", err)
	}
	for i := 0; i < 3; i++ {
		s.Reset()
		snap := s.Snapshot()
		if snap.Mode != ModeSelection {
			t.Fatalf("after reset %d: mode = %q, want selection", i, snap.Mode)
		}
		if len(snap.Questions) != 0 || len(snap.Answers) != 0 || snap.InFlight {
			t.Fatalf("after reset %d: state not empty: %+v", i, snap)
		}
	}
}

func TestOversizedUploadMakesNoGatewayCall(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, nil)
	if err := s.StartUpload(ModePdfUpload); err != nil {
		t.Fatalf("StartUpload: %v", err)
	}

	big := make([]byte, MaxUploadSize+1)
	if err := s.AttachFile(big, "application/pdf"); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("AttachFile err = %v, want ErrFileTooLarge", err)
	}
	if s.Mode() != ModePdfUpload {
		t.Errorf("mode = %q, want pdf_upload unchanged", s.Mode())
	}
	if gw.generateCalls != 0 {
		t.Errorf("gateway calls = %d, want 0", gw.generateCalls)
	}
}

func TestQuestionCountBounds(t *testing.T) {
	gw := &fakeGateway{quiz: &model.GeneratedQuiz{Subject: exam.SubjectMath, Questions: mcq(5)}}
	s := New(gw, nil)
	if err := s.StartUpload(ModePdfUpload); err != nil {
		t.Fatalf("StartUpload: %v", err)
	}
	if err := s.AttachFile([]byte("pdf"), "application/pdf"); err != nil {
		t.Fatalf("AttachFile: %v", err)
	}
	for _, n := range []int{0, 21, -3} {
		if err := s.Generate(context.Background(), exam.TypeMCQ, n); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Generate(%d) err = %v, want ErrInvalidInput", n, err)
		}
	}
	if gw.generateCalls != 0 {
		t.Errorf("gateway calls = %d, want 0 for out-of-range counts", gw.generateCalls)
	}
	if err := s.Generate(context.Background(), exam.TypeMCQ, 5); err != nil {
		t.Fatalf("Generate(5): %v", err)
	}
	if s.Mode() != ModeReady {
		t.Errorf("mode = %q, want ready", s.Mode())
	}
}

func TestMixedGenerationRouting(t *testing.T) {
	t.Run("only open-ended goes straight to the open-ended quiz", func(t *testing.T) {
		gw := &fakeGateway{mixed: &model.MixedTest{
			OpenEnded: []model.OpenEndedQuestion{{Question: "q", SuggestedAnswer: "a", Topic: "t"}},
		}}
		s := New(gw, nil)
		req := model.PlanPracticeRequest{Subject: exam.SubjectMath, Topic: "Hàm số", NumMcq: 10, NumOpenEnded: 2}
		if err := s.StartFromPlan(context.Background(), req); err != nil {
			t.Fatalf("StartFromPlan: %v", err)
		}
		if s.Mode() != ModeQuizOpenEnded {
			t.Errorf("mode = %q, want quiz_open_ended", s.Mode())
		}
	})

	t.Run("both empty returns to selection with nothing retained", func(t *testing.T) {
		gw := &fakeGateway{mixed: &model.MixedTest{}}
		s := New(gw, nil)
		req := model.PlanPracticeRequest{Subject: exam.SubjectMath, Topic: "Hàm số", NumMcq: 10, NumOpenEnded: 2}
		err := s.StartFromPlan(context.Background(), req)
		if !errors.Is(err, ErrEmptyGeneration) {
			t.Fatalf("err = %v, want ErrEmptyGeneration", err)
		}
		snap := s.Snapshot()
		if snap.Mode != ModeSelection {
			t.Errorf("mode = %q, want selection", snap.Mode)
		}
		if len(snap.Questions) != 0 || len(snap.OpenEnded) != 0 {
			t.Error("question state retained after empty generation")
		}
	})

	t.Run("mcqs present keeps leftover open-ended for continuation", func(t *testing.T) {
		gw := &fakeGateway{mixed: &model.MixedTest{
			Mcq:       mcq(3),
			OpenEnded: []model.OpenEndedQuestion{{Question: "q", SuggestedAnswer: "a", Topic: "t"}},
		}}
		s := New(gw, nil)
		req := model.PlanPracticeRequest{Subject: exam.SubjectMath, Topic: "Hàm số", NumMcq: 10, NumOpenEnded: 2}
		if err := s.StartFromPlan(context.Background(), req); err != nil {
			t.Fatalf("StartFromPlan: %v", err)
		}
		if s.Mode() != ModeReady {
			t.Fatalf("mode = %q, want ready", s.Mode())
		}
		if err := s.Start(); err != nil {
			t.Fatalf("Start: %v", err)
		}
		for i := 0; i < 3; i++ {
			if err := s.Answer(context.Background(), "A"); err != nil {
				t.Fatalf("Answer: %v", err)
			}
		}
		if !s.Snapshot().HasOpenEnded {
			t.Fatal("results should offer open-ended continuation")
		}
		if err := s.ContinueOpenEnded(); err != nil {
			t.Fatalf("ContinueOpenEnded: %v", err)
		}
		if s.Mode() != ModeQuizOpenEnded {
			t.Errorf("mode = %q, want quiz_open_ended", s.Mode())
		}
	})
}

func TestRetryReusesQuestionsWithFreshAnswers(t *testing.T) {
	gw := &fakeGateway{}
	s := startQuiz(t, gw, nil, mcq(3))
	for i := 0; i < 3; i++ {
		if err := s.Answer(context.Background(), "B"); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	before := s.Snapshot().Questions
	if err := s.Retry(); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	snap := s.Snapshot()
	if snap.Mode != ModeQuiz {
		t.Fatalf("mode = %q, want quiz", snap.Mode)
	}
	if len(snap.Questions) != len(before) {
		t.Fatalf("question count changed: %d vs %d", len(snap.Questions), len(before))
	}
	for i := range before {
		if snap.Questions[i].Question != before[i].Question {
			t.Errorf("question %d changed on retry", i)
		}
	}
	if len(snap.Answers) != 0 || snap.Index != 0 {
		t.Error("retry did not clear answers")
	}
}

func TestLoadAttemptReconstructsSnapshot(t *testing.T) {
	questions := mcq(4)
	attempt := &model.PracticeAttempt{Title: "Đề cũ", Subject: exam.SubjectMath, Score: 1, Total: 4}
	if err := attempt.SetQuestions(questions); err != nil {
		t.Fatalf("SetQuestions: %v", err)
	}
	if err := attempt.SetAnswers(map[int]string{0: "B", 1: "B", 2: "B", 3: "A"}); err != nil {
		t.Fatalf("SetAnswers: %v", err)
	}

	s := New(&fakeGateway{}, nil)
	if err := s.LoadAttempt(attempt); err != nil {
		t.Fatalf("LoadAttempt: %v", err)
	}
	snap := s.Snapshot()
	if snap.Mode != ModeReady {
		t.Fatalf("mode = %q, want ready", snap.Mode)
	}
	if len(snap.Questions) != 4 {
		t.Fatalf("loaded %d questions, want 4", len(snap.Questions))
	}
	for i := range questions {
		if snap.Questions[i].Question != questions[i].Question {
			t.Errorf("question %d differs from stored attempt", i)
		}
	}
	if len(snap.Answers) != 0 {
		t.Error("answer map must start empty")
	}
}

func TestOpenEndedGradingWithFollowUps(t *testing.T) {
	gw := &fakeGateway{
		feedback: &model.OpenEndedFeedback{
			Score:      6,
			Feedback:   "khá",
			Weaknesses: []string{"lập luận"},
		},
		followUps: mcq(2),
	}
	s := New(gw, nil)
	s.mu.Lock()
	s.subject = exam.SubjectLiterature
	s.openEnded = []model.OpenEndedQuestion{{Question: "q1", SuggestedAnswer: "a1", Topic: "t"}}
	s.mode = ModeQuizOpenEnded
	s.mu.Unlock()

	if err := s.SubmitOpenEndedAnswer(context.Background(), ""); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("empty answer err = %v, want ErrEmptyAnswer", err)
	}
	if err := s.SubmitOpenEndedAnswer(context.Background(), "bài làm"); err != nil {
		t.Fatalf("SubmitOpenEndedAnswer: %v", err)
	}
	snap := s.Snapshot()
	if snap.Mode != ModeResultsOpenEnded {
		t.Fatalf("mode = %q, want results_open_ended", snap.Mode)
	}
	if gw.followUpCalls != 1 || len(snap.FollowUps) != 2 {
		t.Errorf("followUpCalls = %d, followUps = %d, want 1 and 2", gw.followUpCalls, len(snap.FollowUps))
	}

	// Last question, so advancing resets the whole run.
	if err := s.NextOpenEnded(); err != nil {
		t.Fatalf("NextOpenEnded: %v", err)
	}
	if s.Mode() != ModeSelection {
		t.Errorf("mode = %q, want selection after last question", s.Mode())
	}
}

func TestGradingFailureKeepsAnswer(t *testing.T) {
	gw := &fakeGateway{gradeErr: errors.New("upstream down")}
	s := New(gw, nil)
	s.mu.Lock()
	s.openEnded = []model.OpenEndedQuestion{{Question: "q1", SuggestedAnswer: "a1", Topic: "t"}}
	s.mode = ModeQuizOpenEnded
	s.mu.Unlock()

	if err := s.SubmitOpenEndedAnswer(context.Background(), "bài làm"); err == nil {
		t.Fatal("expected grading error")
	}
	snap := s.Snapshot()
	if snap.Mode != ModeQuizOpenEnded {
		t.Errorf("mode = %q, want quiz_open_ended", snap.Mode)
	}
	if snap.OpenEndedAnswer != "bài làm" {
		t.Errorf("answer = %q, want preserved", snap.OpenEndedAnswer)
	}
}

func TestExamAnswerTextImageExclusive(t *testing.T) {
	gw := &fakeGateway{feedback: &model.OpenEndedFeedback{Score: 8}}
	s := New(gw, nil)
	if err := s.SelectSubject(exam.SubjectScience); err != nil {
		t.Fatalf("SelectSubject: %v", err)
	}
	if _, err := s.SelectPeriod(exam.PeriodMidterm1); err != nil {
		t.Fatalf("SelectPeriod: %v", err)
	}
	if err := s.SelectExam("khtn9-gk1-de1-oe"); err != nil {
		t.Fatalf("SelectExam: %v", err)
	}
	if s.Mode() != ModeSolveOpenEndedExam {
		t.Fatalf("mode = %q, want solve_open_ended_exam", s.Mode())
	}

	// Grading with no answer makes no gateway call.
	if err := s.GradeExamAnswer(context.Background(), 0); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("err = %v, want ErrEmptyAnswer", err)
	}
	if gw.gradeCalls+gw.imageCalls != 0 {
		t.Fatalf("grading calls = %d, want 0", gw.gradeCalls+gw.imageCalls)
	}

	if err := s.SetExamAnswerText(0, "bài viết"); err != nil {
		t.Fatalf("SetExamAnswerText: %v", err)
	}
	if err := s.SetExamAnswerImage(0, []byte{1, 2}, "image/jpeg"); err != nil {
		t.Fatalf("SetExamAnswerImage: %v", err)
	}
	if err := s.GradeExamAnswer(context.Background(), 0); err != nil {
		t.Fatalf("GradeExamAnswer: %v", err)
	}
	if gw.imageCalls != 1 || gw.gradeCalls != 0 {
		t.Errorf("image grading must win after the photo replaced the text: image=%d text=%d", gw.imageCalls, gw.gradeCalls)
	}

	// Feedback is retained while navigating within the exam.
	if err := s.SelectExamQuestion(1); err != nil {
		t.Fatalf("SelectExamQuestion: %v", err)
	}
	if s.Snapshot().ExamFeedback[0] == nil {
		t.Error("feedback for question 0 lost after navigation")
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(&fakeGateway{}, nil)
	id, s := m.Create()
	if s.Mode() != ModeSelection {
		t.Fatalf("new session mode = %q, want selection", s.Mode())
	}
	got, err := m.Get(id)
	if err != nil || got != s {
		t.Fatalf("Get(%q) = %v, %v", id, got, err)
	}
	m.Delete(id)
	if _, err := m.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}
