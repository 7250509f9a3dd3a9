package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/repository"
)

// ToolsService runs the standalone study tools and records each run in the
// AI tool history with its kind tag.
type ToolsService interface {
	ExtractText(ctx context.Context, attachment Attachment) (*model.AIToolHistoryItem, error)
	Analyze(ctx context.Context, attachment Attachment) (*model.AIToolHistoryItem, error)
	Flashcards(ctx context.Context, text string) ([]model.Flashcard, error)
	Summary(ctx context.Context, text string) (*model.AIToolHistoryItem, error)
	History() ([]model.AIToolHistoryItem, error)
}

type toolsService struct {
	gemini      GeminiService
	historyRepo repository.AIToolHistoryRepository
}

func NewToolsService(gemini GeminiService, historyRepo repository.AIToolHistoryRepository) ToolsService {
	return &toolsService{gemini: gemini, historyRepo: historyRepo}
}

func (s *toolsService) ExtractText(ctx context.Context, attachment Attachment) (*model.AIToolHistoryItem, error) {
	if len(attachment.Data) > model.MaxUploadBytes {
		return nil, ErrAttachmentTooLarge
	}
	text, err := s.gemini.ExtractText(ctx, attachment.Data, attachment.MimeType)
	if err != nil {
		return nil, err
	}
	item := &model.AIToolHistoryItem{
		Kind:   model.ToolKindExtract,
		Input:  attachment.FileName,
		Output: text,
	}
	if err := s.historyRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Analyze summarizes the study content of an uploaded document or photo.
func (s *toolsService) Analyze(ctx context.Context, attachment Attachment) (*model.AIToolHistoryItem, error) {
	if len(attachment.Data) > model.MaxUploadBytes {
		return nil, ErrAttachmentTooLarge
	}
	var (
		analysis string
		err      error
	)
	if strings.HasPrefix(attachment.MimeType, "image/") {
		analysis, err = s.gemini.AnalyzeImage(ctx, attachment.Data, attachment.MimeType)
	} else {
		analysis, err = s.gemini.AnalyzeDocument(ctx, attachment.Data)
	}
	if err != nil {
		return nil, err
	}
	item := &model.AIToolHistoryItem{
		Kind:   model.ToolKindAnalyze,
		Input:  attachment.FileName,
		Output: analysis,
	}
	if err := s.historyRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *toolsService) Flashcards(ctx context.Context, text string) ([]model.Flashcard, error) {
	cards, err := s.gemini.GenerateFlashcards(ctx, text)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(cards)
	if err != nil {
		return nil, err
	}
	item := &model.AIToolHistoryItem{
		Kind:   model.ToolKindFlashcards,
		Input:  text,
		Output: string(encoded),
	}
	if err := s.historyRepo.Create(item); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *toolsService) Summary(ctx context.Context, text string) (*model.AIToolHistoryItem, error) {
	summary, err := s.gemini.GenerateSummary(ctx, text)
	if err != nil {
		return nil, err
	}
	item := &model.AIToolHistoryItem{
		Kind:   model.ToolKindSummary,
		Input:  text,
		Output: summary,
	}
	if err := s.historyRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *toolsService) History() ([]model.AIToolHistoryItem, error) {
	return s.historyRepo.FindRecent()
}
