package service

import (
	"context"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/repository"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/session"
	"github.com/rs/zerolog/log"
)

// PracticeService owns the live practice sessions and the attempt history
// they feed into.
type PracticeService interface {
	Sessions() *session.Manager
	History() ([]model.PracticeAttempt, error)
	Attempt(id uint) (*model.PracticeAttempt, error)
	Retry(attemptID uint) (string, error)
	WeakTopics() ([]string, error)
	TopicQuestions(ctx context.Context, subject, topic string, numQuestions int) ([]model.PracticeQuestion, error)
}

type practiceService struct {
	gemini      GeminiService
	manager     *session.Manager
	attemptRepo repository.AttemptRepository
}

func NewPracticeService(gemini GeminiService, attemptRepo repository.AttemptRepository) PracticeService {
	svc := &practiceService{gemini: gemini, attemptRepo: attemptRepo}
	svc.manager = session.NewManager(gemini, func(attempt *model.PracticeAttempt) error {
		return attemptRepo.Create(attempt)
	})
	return svc
}

func (s *practiceService) Sessions() *session.Manager {
	return s.manager
}

func (s *practiceService) History() ([]model.PracticeAttempt, error) {
	return s.attemptRepo.FindAll()
}

func (s *practiceService) Attempt(id uint) (*model.PracticeAttempt, error) {
	return s.attemptRepo.FindByID(id)
}

// Retry opens a fresh session preloaded with the stored attempt's questions.
func (s *practiceService) Retry(attemptID uint) (string, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return "", err
	}
	id, sess := s.manager.Create()
	if err := sess.LoadAttempt(attempt); err != nil {
		s.manager.Delete(id)
		return "", err
	}
	return id, nil
}

// TopicQuestions generates a standalone MCQ set for one topic, outside the
// session flow. Used for quick drills started from the dashboard.
func (s *practiceService) TopicQuestions(ctx context.Context, subject, topic string, numQuestions int) ([]model.PracticeQuestion, error) {
	return s.gemini.PracticeQuestionsFromTopic(ctx, subject, topic, numQuestions)
}

// WeakTopics collects the distinct topics of incorrectly answered questions
// across the whole practice history, most recent attempts first.
func (s *practiceService) WeakTopics() ([]string, error) {
	attempts, err := s.attemptRepo.FindAll()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var topics []string
	for i := range attempts {
		questions, err := attempts[i].GetQuestions()
		if err != nil {
			log.Warn().Err(err).Uint("attempt", attempts[i].ID).Msg("Skipping attempt with malformed questions")
			continue
		}
		answers, err := attempts[i].GetAnswers()
		if err != nil {
			log.Warn().Err(err).Uint("attempt", attempts[i].ID).Msg("Skipping attempt with malformed answers")
			continue
		}
		for j, q := range questions {
			if q.IsCorrect(answers[j]) || q.Topic == "" || seen[q.Topic] {
				continue
			}
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics, nil
}
