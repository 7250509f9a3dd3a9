package service

import (
	"context"
	"strings"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/markdown"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/repository"
)

// History subject tags for file-based solutions. UI categorization only;
// they are not real subjects and never reach the grading logic.
const (
	pdfHistorySubject   = "Bài tập PDF"
	imageHistorySubject = "Bài tập Ảnh"
)

// HomeworkService solves typed or uploaded problems and records each success
// in the solution history.
type HomeworkService interface {
	SolveText(ctx context.Context, grade int, subject, problem string, quick bool) (*model.SolutionHistoryItem, error)
	SolveFile(ctx context.Context, attachment Attachment, note string) (*model.SolutionHistoryItem, error)
	FollowUp(ctx context.Context, problem, solution, question string) (string, error)
	History() ([]model.SolutionHistoryItem, error)
}

type homeworkService struct {
	gemini      GeminiService
	historyRepo repository.SolutionHistoryRepository
}

func NewHomeworkService(gemini GeminiService, historyRepo repository.SolutionHistoryRepository) HomeworkService {
	return &homeworkService{gemini: gemini, historyRepo: historyRepo}
}

func (s *homeworkService) SolveText(ctx context.Context, grade int, subject, problem string, quick bool) (*model.SolutionHistoryItem, error) {
	var (
		solution string
		err      error
	)
	if quick {
		solution, err = s.gemini.QuickAnswer(ctx, grade, subject, problem)
	} else {
		solution, err = s.gemini.StepByStepSolution(ctx, grade, subject, problem)
	}
	if err != nil {
		return nil, err
	}
	item := &model.SolutionHistoryItem{
		Kind:         model.SolutionKindText,
		Subject:      subject,
		Grade:        grade,
		Problem:      problem,
		Solution:     solution,
		SolutionHTML: markdown.Render(solution),
	}
	if err := s.historyRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *homeworkService) SolveFile(ctx context.Context, attachment Attachment, note string) (*model.SolutionHistoryItem, error) {
	if len(attachment.Data) > model.MaxUploadBytes {
		return nil, ErrAttachmentTooLarge
	}
	solution, err := s.gemini.SolutionFromFile(ctx, attachment.Data, attachment.MimeType, note)
	if err != nil {
		return nil, err
	}
	kind, subject := model.SolutionKindPDF, pdfHistorySubject
	if strings.HasPrefix(attachment.MimeType, "image/") {
		kind, subject = model.SolutionKindImage, imageHistorySubject
	}
	item := &model.SolutionHistoryItem{
		Kind:         kind,
		Subject:      subject,
		Grade:        9,
		Problem:      note,
		Solution:     solution,
		SolutionHTML: markdown.Render(solution),
		FileName:     attachment.FileName,
	}
	if err := s.historyRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *homeworkService) FollowUp(ctx context.Context, problem, solution, question string) (string, error) {
	return s.gemini.FollowUpAnswer(ctx, problem, solution, question)
}

func (s *homeworkService) History() ([]model.SolutionHistoryItem, error) {
	return s.historyRepo.FindRecent()
}
