package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantQuota bool
	}{
		{"http 429", errors.New("googleapi: Error 429: quota exceeded"), true},
		{"resource exhausted", errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), true},
		{"other failure", errors.New("rpc error: code = Unavailable"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if errors.Is(got, ErrQuotaExceeded) != tt.wantQuota {
				t.Errorf("translateError(%v) quota = %v, want %v", tt.err, !tt.wantQuota, tt.wantQuota)
			}
		})
	}
}

func TestSanitizeMCQs(t *testing.T) {
	in := []model.PracticeQuestion{
		{Question: "ok", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b", Topic: "t"},
		{Question: "three options", Options: []string{"a", "b", "c"}, CorrectAnswer: "a", Topic: "t"},
		{Question: "answer missing", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "e", Topic: "t"},
		{Question: "ok too", Options: []string{"w", "x", "y", "z"}, CorrectAnswer: "z", Topic: "t"},
	}
	out := sanitizeMCQs(in, "Toán")
	if len(out) != 2 {
		t.Fatalf("kept %d questions, want 2", len(out))
	}
	for _, q := range out {
		if q.Subject != "Toán" || q.Grade != 9 {
			t.Errorf("question %q not stamped: subject=%q grade=%d", q.Question, q.Subject, q.Grade)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{7.5, 7.5},
		{10, 10},
		{11.2, 10},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePlanFillsAllSevenDays(t *testing.T) {
	partial := model.WeeklyPlan{
		{DayOfWeek: "Thứ Tư", Morning: &model.StudyPlanSession{Subject: "Toán", Topic: "Hàm số", Activity: "Luyện tập"}},
		{DayOfWeek: "Chủ Nhật"},
	}
	got := normalizePlan(partial)
	if len(got) != 7 {
		t.Fatalf("normalized plan has %d days, want 7", len(got))
	}
	for i, day := range canonicalDays {
		if got[i].DayOfWeek != day {
			t.Errorf("day %d = %q, want %q", i, got[i].DayOfWeek, day)
		}
	}
	if got[2].Morning == nil || got[2].Morning.Topic != "Hàm số" {
		t.Error("kept slot lost during normalization")
	}
	if got[0].Morning != nil || got[0].Evening != nil {
		t.Error("missing day should have empty slots")
	}
}

func TestPracticeRecommendationsWithoutWeakTopics(t *testing.T) {
	svc := &geminiService{}
	got, err := svc.PracticeRecommendations(context.Background(), nil)
	if err != nil {
		t.Fatalf("PracticeRecommendations: %v", err)
	}
	if got != encouragementMessage {
		t.Errorf("got %q, want the fixed encouragement message", got)
	}
}

func TestOperationsUnavailableWithoutClient(t *testing.T) {
	svc := &geminiService{}
	ctx := context.Background()
	if _, err := svc.StepByStepSolution(ctx, 9, "Toán", "2x=4"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("StepByStepSolution err = %v, want ErrUnavailable", err)
	}
	if _, err := svc.MixedPracticeTest(ctx, "Toán", "Hàm số", 10, 2); !errors.Is(err, ErrUnavailable) {
		t.Errorf("MixedPracticeTest err = %v, want ErrUnavailable", err)
	}
	if _, err := svc.GenerateWeeklyPlan(ctx, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateWeeklyPlan err = %v, want ErrUnavailable", err)
	}
}
