package service

import (
	"errors"
	"fmt"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrInvalidView = errors.New("app: unknown view")

// Views the client can restore on startup.
var validViews = []string{"dashboard", "practice", "homework", "tools", "tutor", "planner"}

// BootstrapState is everything the client needs to restore itself.
type BootstrapState struct {
	State           *model.AppState             `json:"state"`
	PracticeHistory []model.PracticeAttempt     `json:"practiceHistory"`
	SolutionHistory []model.SolutionHistoryItem `json:"solutionHistory"`
	ToolHistory     []model.AIToolHistoryItem   `json:"aiToolHistory"`
	TutorSessions   []model.TutorSession        `json:"tutorSessions"`
	Plan            model.WeeklyPlan            `json:"weeklyPlan,omitempty"`
}

// AppService loads and persists the app shell state.
type AppService interface {
	Bootstrap() (*BootstrapState, error)
	SetActiveView(view string) error
}

type appService struct {
	stateRepo    repository.StateRepository
	attemptRepo  repository.AttemptRepository
	solutionRepo repository.SolutionHistoryRepository
	toolRepo     repository.AIToolHistoryRepository
	tutor        TutorService
	planRepo     repository.PlanRepository
}

func NewAppService(
	stateRepo repository.StateRepository,
	attemptRepo repository.AttemptRepository,
	solutionRepo repository.SolutionHistoryRepository,
	toolRepo repository.AIToolHistoryRepository,
	tutor TutorService,
	planRepo repository.PlanRepository,
) AppService {
	return &appService{
		stateRepo:    stateRepo,
		attemptRepo:  attemptRepo,
		solutionRepo: solutionRepo,
		toolRepo:     toolRepo,
		tutor:        tutor,
		planRepo:     planRepo,
	}
}

// Bootstrap loads the persisted state once, defaulting every absent piece and
// auto-creating a tutor session when none exists.
func (s *appService) Bootstrap() (*BootstrapState, error) {
	state, err := s.stateRepo.Get()
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = &model.AppState{ActiveView: "dashboard"}
		if err := s.stateRepo.Save(state); err != nil {
			return nil, err
		}
	}

	attempts, err := s.attemptRepo.FindAll()
	if err != nil {
		return nil, err
	}
	solutions, err := s.solutionRepo.FindRecent()
	if err != nil {
		return nil, err
	}
	tools, err := s.toolRepo.FindRecent()
	if err != nil {
		return nil, err
	}

	// Guarantees at least one tutor session and a valid active pointer.
	if _, err := s.tutor.Active(); err != nil {
		return nil, err
	}
	sessions, err := s.tutor.List()
	if err != nil {
		return nil, err
	}
	state, err = s.stateRepo.Get()
	if err != nil {
		return nil, err
	}

	var plan model.WeeklyPlan
	record, err := s.planRepo.Get()
	if err != nil {
		return nil, err
	}
	if record != nil {
		if plan, err = record.GetPlan(); err != nil {
			log.Warn().Err(err).Msg("Stored weekly plan is malformed, ignoring")
			plan = nil
		}
	}

	return &BootstrapState{
		State:           state,
		PracticeHistory: attempts,
		SolutionHistory: solutions,
		ToolHistory:     tools,
		TutorSessions:   sessions,
		Plan:            plan,
	}, nil
}

func (s *appService) SetActiveView(view string) error {
	valid := false
	for _, v := range validViews {
		if v == view {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w %q", ErrInvalidView, view)
	}
	state, err := s.stateRepo.Get()
	if err != nil {
		return err
	}
	if state == nil {
		state = &model.AppState{}
	}
	state.ActiveView = view
	return s.stateRepo.Save(state)
}
