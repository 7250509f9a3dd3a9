package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/markdown"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrAttachmentTooLarge rejects oversized uploads before any gateway call.
var ErrAttachmentTooLarge = errors.New("attachment exceeds the 15MB limit")

// Attachment is an uploaded document or photo accompanying a request.
type Attachment struct {
	Data     []byte
	MimeType string
	FileName string
}

const (
	defaultTutorTitle = "Cuộc trò chuyện mới"
	tutorTitleLimit   = 30
)

// TutorService manages chat threads with the AI tutor.
type TutorService interface {
	List() ([]model.TutorSession, error)
	Get(id string) (*model.TutorSession, error)
	Create() (*model.TutorSession, error)
	Select(id string) error
	Delete(id string) (*model.TutorSession, error)
	Send(ctx context.Context, id, text string, attachment *Attachment) (*model.TutorSession, error)
	Active() (*model.TutorSession, error)
}

type tutorService struct {
	gemini    GeminiService
	tutorRepo repository.TutorSessionRepository
	stateRepo repository.StateRepository
}

func NewTutorService(gemini GeminiService, tutorRepo repository.TutorSessionRepository, stateRepo repository.StateRepository) TutorService {
	return &tutorService{gemini: gemini, tutorRepo: tutorRepo, stateRepo: stateRepo}
}

func (s *tutorService) List() ([]model.TutorSession, error) {
	return s.tutorRepo.FindAll()
}

func (s *tutorService) Get(id string) (*model.TutorSession, error) {
	return s.tutorRepo.FindByID(id)
}

func (s *tutorService) Create() (*model.TutorSession, error) {
	session := &model.TutorSession{ID: uuid.NewString(), Title: defaultTutorTitle}
	if err := s.tutorRepo.Create(session); err != nil {
		return nil, err
	}
	if err := s.setActive(session.ID); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *tutorService) Select(id string) error {
	if _, err := s.tutorRepo.FindByID(id); err != nil {
		return err
	}
	return s.setActive(id)
}

// Delete removes a thread. The active session falls back to the most recent
// remaining thread, or a fresh one when none is left.
func (s *tutorService) Delete(id string) (*model.TutorSession, error) {
	if err := s.tutorRepo.Delete(id); err != nil {
		return nil, err
	}
	next, err := s.tutorRepo.MostRecent()
	if err != nil {
		return s.Create()
	}
	if err := s.setActive(next.ID); err != nil {
		return nil, err
	}
	return next, nil
}

// Active returns the current thread, auto-creating one if none exists.
func (s *tutorService) Active() (*model.TutorSession, error) {
	state, err := s.stateRepo.Get()
	if err != nil {
		return nil, err
	}
	if state != nil && state.ActiveTutorSessionID != "" {
		if session, err := s.tutorRepo.FindByID(state.ActiveTutorSessionID); err == nil {
			return session, nil
		}
	}
	if session, err := s.tutorRepo.MostRecent(); err == nil {
		if err := s.setActive(session.ID); err != nil {
			return nil, err
		}
		return session, nil
	}
	return s.Create()
}

// Send appends the student's message, asks the model and appends its reply.
// An attachment routes to file solving; plain text gets a step-by-step answer.
func (s *tutorService) Send(ctx context.Context, id, text string, attachment *Attachment) (*model.TutorSession, error) {
	session, err := s.tutorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if attachment != nil && len(attachment.Data) > model.MaxUploadBytes {
		return nil, ErrAttachmentTooLarge
	}

	userMsg := &model.TutorMessage{SessionID: id, Role: model.TutorRoleUser, Text: text}
	if attachment != nil {
		userMsg.FileName = attachment.FileName
	}
	if err := s.tutorRepo.AppendMessage(userMsg); err != nil {
		return nil, err
	}
	if len(session.Messages) == 0 {
		if title := truncateTitle(text); title != "" {
			if err := s.tutorRepo.UpdateTitle(id, title); err != nil {
				log.Warn().Err(err).Str("session", id).Msg("Failed to update tutor session title")
			}
		}
	}

	var reply string
	if attachment != nil {
		reply, err = s.gemini.SolutionFromFile(ctx, attachment.Data, attachment.MimeType, text)
	} else {
		reply, err = s.gemini.StepByStepSolution(ctx, 9, "", text)
	}
	if err != nil {
		return nil, err
	}
	modelMsg := &model.TutorMessage{
		SessionID: id,
		Role:      model.TutorRoleModel,
		Text:      reply,
		HTML:      markdown.Render(reply),
	}
	if err := s.tutorRepo.AppendMessage(modelMsg); err != nil {
		return nil, err
	}
	return s.tutorRepo.FindByID(id)
}

func (s *tutorService) setActive(id string) error {
	state, err := s.stateRepo.Get()
	if err != nil {
		return err
	}
	if state == nil {
		state = &model.AppState{}
	}
	state.ActiveTutorSessionID = id
	return s.stateRepo.Save(state)
}

// truncateTitle derives a thread title from the first user message.
func truncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= tutorTitleLimit {
		return text
	}
	return string(runes[:tutorTitleLimit])
}
