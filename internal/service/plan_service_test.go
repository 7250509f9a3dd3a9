package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
)

type fakePlanRepo struct {
	record *model.WeeklyPlanRecord
}

func (r *fakePlanRepo) Get() (*model.WeeklyPlanRecord, error) { return r.record, nil }

func (r *fakePlanRepo) Save(record *model.WeeklyPlanRecord) error {
	r.record = record
	return nil
}

type fakePlanGemini struct {
	GeminiService
	plan model.WeeklyPlan
}

func (g *fakePlanGemini) GenerateWeeklyPlan(ctx context.Context, weakTopics []string) (model.WeeklyPlan, error) {
	return g.plan, nil
}

type fakePractice struct {
	PracticeService
	weakTopics []string
}

func (p *fakePractice) WeakTopics() ([]string, error) { return p.weakTopics, nil }

func sevenDayPlan() model.WeeklyPlan {
	plan := make(model.WeeklyPlan, 7)
	days := []string{"Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy", "Chủ Nhật"}
	for i := range plan {
		plan[i].DayOfWeek = days[i]
	}
	plan[0].Morning = &model.StudyPlanSession{Subject: "Toán", Topic: "Hàm số bậc nhất", Activity: "Làm bài tập"}
	return plan
}

func TestPlanGetWithoutPlan(t *testing.T) {
	svc := NewPlanService(&fakePlanGemini{}, &fakePractice{}, &fakePlanRepo{})
	if _, err := svc.Get(); !errors.Is(err, ErrNoPlan) {
		t.Fatalf("err = %v, want ErrNoPlan", err)
	}
}

func TestPlanGenerateReplacesAndPersists(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := NewPlanService(&fakePlanGemini{plan: sevenDayPlan()}, &fakePractice{weakTopics: []string{"Hàm số"}}, repo)

	plan, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	if repo.record == nil {
		t.Fatal("plan not persisted")
	}
	stored, err := svc.Get()
	if err != nil {
		t.Fatalf("Get after Generate: %v", err)
	}
	if stored[0].Morning == nil || stored[0].Morning.Topic != "Hàm số bậc nhất" {
		t.Errorf("stored plan slot = %+v", stored[0].Morning)
	}
}

func TestPlanEditSessionClearsSlot(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := NewPlanService(&fakePlanGemini{plan: sevenDayPlan()}, &fakePractice{}, repo)
	if _, err := svc.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	plan, err := svc.EditSession(0, PeriodMorning, nil)
	if err != nil {
		t.Fatalf("EditSession: %v", err)
	}
	if plan[0].Morning != nil {
		t.Error("slot not cleared")
	}

	updated := &model.StudyPlanSession{Subject: "Tiếng Anh", Topic: "Thì hiện tại hoàn thành", Activity: "Ôn tập"}
	plan, err = svc.EditSession(2, PeriodEvening, updated)
	if err != nil {
		t.Fatalf("EditSession: %v", err)
	}
	if plan[2].Evening == nil || plan[2].Evening.Subject != "Tiếng Anh" {
		t.Errorf("slot = %+v", plan[2].Evening)
	}
}

func TestPlanPracticeRequest(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := NewPlanService(&fakePlanGemini{plan: sevenDayPlan()}, &fakePractice{}, repo)
	if _, err := svc.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req, err := svc.PracticeRequest(0, PeriodMorning)
	if err != nil {
		t.Fatalf("PracticeRequest: %v", err)
	}
	if req.Subject != "Toán" || req.Topic != "Hàm số bậc nhất" {
		t.Errorf("request = %+v", req)
	}
	if req.NumMcq != 10 || req.NumOpenEnded != 2 {
		t.Errorf("counts = %d mcq, %d open-ended, want 10 and 2", req.NumMcq, req.NumOpenEnded)
	}

	if _, err := svc.PracticeRequest(0, PeriodEvening); !errors.Is(err, ErrEmptySlot) {
		t.Errorf("empty slot err = %v, want ErrEmptySlot", err)
	}
	if _, err := svc.PracticeRequest(7, PeriodMorning); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("out of range err = %v, want ErrInvalidSlot", err)
	}
	if _, err := svc.PracticeRequest(0, "afternoon"); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("bad period err = %v, want ErrInvalidSlot", err)
	}
}
