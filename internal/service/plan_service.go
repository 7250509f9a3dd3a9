package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/repository"
)

var (
	// ErrNoPlan means no weekly plan has been generated yet.
	ErrNoPlan = errors.New("plan: no plan exists yet")
	// ErrEmptySlot means the addressed plan slot has no study session.
	ErrEmptySlot = errors.New("plan: slot is empty")
	// ErrInvalidSlot means the day index or period does not address a slot.
	ErrInvalidSlot = errors.New("plan: invalid slot")
)

const (
	PeriodMorning = "morning"
	PeriodEvening = "evening"
)

// Counts used when a practice run is started straight from a plan slot.
const (
	planPracticeMcqCount       = 10
	planPracticeOpenEndedCount = 2
)

// PlanService manages the single weekly study plan.
type PlanService interface {
	Get() (model.WeeklyPlan, error)
	Generate(ctx context.Context) (model.WeeklyPlan, error)
	UpdateByChat(ctx context.Context, request string) (*model.PlanUpdate, error)
	EditSession(dayIndex int, period string, studySession *model.StudyPlanSession) (model.WeeklyPlan, error)
	PracticeRequest(dayIndex int, period string) (model.PlanPracticeRequest, error)
}

type planService struct {
	gemini   GeminiService
	practice PracticeService
	planRepo repository.PlanRepository
}

func NewPlanService(gemini GeminiService, practice PracticeService, planRepo repository.PlanRepository) PlanService {
	return &planService{gemini: gemini, practice: practice, planRepo: planRepo}
}

func (s *planService) Get() (model.WeeklyPlan, error) {
	record, err := s.planRepo.Get()
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNoPlan
	}
	return record.GetPlan()
}

// Generate builds a plan around the student's weak topics and persists it,
// replacing any previous plan.
func (s *planService) Generate(ctx context.Context) (model.WeeklyPlan, error) {
	weakTopics, err := s.practice.WeakTopics()
	if err != nil {
		return nil, err
	}
	plan, err := s.gemini.GenerateWeeklyPlan(ctx, weakTopics)
	if err != nil {
		return nil, err
	}
	if err := s.save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) UpdateByChat(ctx context.Context, request string) (*model.PlanUpdate, error) {
	plan, err := s.Get()
	if err != nil {
		return nil, err
	}
	update, err := s.gemini.UpdateWeeklyPlan(ctx, plan, request)
	if err != nil {
		return nil, err
	}
	if err := s.save(update.UpdatedPlan); err != nil {
		return nil, err
	}
	return update, nil
}

// EditSession replaces one slot by hand. A nil session clears the slot.
func (s *planService) EditSession(dayIndex int, period string, studySession *model.StudyPlanSession) (model.WeeklyPlan, error) {
	plan, err := s.Get()
	if err != nil {
		return nil, err
	}
	if err := validateSlot(plan, dayIndex, period); err != nil {
		return nil, err
	}
	switch period {
	case PeriodMorning:
		plan[dayIndex].Morning = studySession
	case PeriodEvening:
		plan[dayIndex].Evening = studySession
	}
	if err := s.save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// PracticeRequest turns a filled plan slot into the request handed to the
// practice flow's plan-driven entry.
func (s *planService) PracticeRequest(dayIndex int, period string) (model.PlanPracticeRequest, error) {
	plan, err := s.Get()
	if err != nil {
		return model.PlanPracticeRequest{}, err
	}
	if err := validateSlot(plan, dayIndex, period); err != nil {
		return model.PlanPracticeRequest{}, err
	}
	var slot *model.StudyPlanSession
	if period == PeriodMorning {
		slot = plan[dayIndex].Morning
	} else {
		slot = plan[dayIndex].Evening
	}
	if slot == nil {
		return model.PlanPracticeRequest{}, ErrEmptySlot
	}
	return model.PlanPracticeRequest{
		Subject:      slot.Subject,
		Topic:        slot.Topic,
		NumMcq:       planPracticeMcqCount,
		NumOpenEnded: planPracticeOpenEndedCount,
	}, nil
}

func validateSlot(plan model.WeeklyPlan, dayIndex int, period string) error {
	if dayIndex < 0 || dayIndex >= len(plan) {
		return fmt.Errorf("%w: day index %d out of range", ErrInvalidSlot, dayIndex)
	}
	if period != PeriodMorning && period != PeriodEvening {
		return fmt.Errorf("%w: unknown period %q", ErrInvalidSlot, period)
	}
	return nil
}

func (s *planService) save(plan model.WeeklyPlan) error {
	record, err := s.planRepo.Get()
	if err != nil {
		return err
	}
	if record == nil {
		record = &model.WeeklyPlanRecord{}
	}
	if err := record.SetPlan(plan); err != nil {
		return err
	}
	return s.planRepo.Save(record)
}
