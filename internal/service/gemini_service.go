package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/quangkhoi2628-alt/Learn-Together-123/config"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	flashModel = "gemini-2.5-flash"
	proModel   = "gemini-2.5-pro"
)

var (
	// ErrUnavailable means the client was never initialized (missing API key).
	ErrUnavailable = errors.New("gemini: client not available")
	// ErrQuotaExceeded wraps upstream 429 / RESOURCE_EXHAUSTED failures.
	ErrQuotaExceeded = errors.New("gemini: quota exceeded")
	// ErrEmptyResponse means the model returned no usable text.
	ErrEmptyResponse = errors.New("gemini: empty response")
	// ErrGateway wraps every other upstream failure, including malformed
	// structured responses.
	ErrGateway = errors.New("gemini: upstream failure")
)

// QuotaMessage is shown to the student when ErrQuotaExceeded surfaces.
const QuotaMessage = "Lỗi: Bạn đã vượt quá hạn ngạch sử dụng API. Vui lòng kiểm tra gói dịch vụ và thông tin thanh toán của bạn."

// encouragementMessage is returned for recommendations when there is nothing
// to recommend, without calling the model at all.
const encouragementMessage = "Bạn đang làm rất tốt! Hãy tiếp tục cố gắng và luyện tập thêm bất kỳ chủ đề nào bạn muốn củng cố nhé."

// GeminiService is the single gateway to the Gemini API. Every operation
// returns (value, error); callers decide how failures surface to the student.
type GeminiService interface {
	StepByStepSolution(ctx context.Context, grade int, subject, problem string) (string, error)
	QuickAnswer(ctx context.Context, grade int, subject, problem string) (string, error)
	SolutionFromFile(ctx context.Context, data []byte, mimeType, note string) (string, error)
	AnalyzeDocument(ctx context.Context, data []byte) (string, error)
	AnalyzeImage(ctx context.Context, data []byte, mimeType string) (string, error)
	FollowUpAnswer(ctx context.Context, problem, solution, question string) (string, error)
	ExplainIncorrectAnswer(ctx context.Context, question, userAnswer, correctAnswer string) (string, error)
	PracticeRecommendations(ctx context.Context, weakTopics []string) (string, error)
	GenerateSummary(ctx context.Context, text string) (string, error)
	ExtractText(ctx context.Context, data []byte, mimeType string) (string, error)
	GenerateFlashcards(ctx context.Context, text string) ([]model.Flashcard, error)
	PracticeQuestionsFromTopic(ctx context.Context, subject, topic string, numQuestions int) ([]model.PracticeQuestion, error)
	PracticeQuestionsFromFile(ctx context.Context, data []byte, mimeType string, numQuestions int) (*model.GeneratedQuiz, error)
	OpenEndedQuestionsFromFile(ctx context.Context, data []byte, mimeType string) (*model.GeneratedOpenEnded, error)
	GradeOpenEndedAnswer(ctx context.Context, question model.OpenEndedQuestion, answer string) (*model.OpenEndedFeedback, error)
	GradeOpenEndedImageAnswer(ctx context.Context, question model.OpenEndedQuestion, image []byte, mimeType string) (*model.OpenEndedFeedback, error)
	FollowUpExercises(ctx context.Context, subject, topic string, weaknesses []string) ([]model.PracticeQuestion, error)
	MixedPracticeTest(ctx context.Context, subject, topic string, numMcq, numOpenEnded int) (*model.MixedTest, error)
	GenerateWeeklyPlan(ctx context.Context, weakTopics []string) (model.WeeklyPlan, error)
	UpdateWeeklyPlan(ctx context.Context, plan model.WeeklyPlan, request string) (*model.PlanUpdate, error)
}

type geminiService struct {
	client *genai.Client
}

// NewGeminiService creates the gateway. Without an API key the service still
// constructs, but every call returns ErrUnavailable.
func NewGeminiService(cfg *config.Config) GeminiService {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, AI features will be unavailable")
		return &geminiService{}
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return &geminiService{}
	}
	log.Info().Msg("Gemini client initialized")
	return &geminiService{client: client}
}

func (s *geminiService) textModel(name, systemInstruction string) *genai.GenerativeModel {
	m := s.client.GenerativeModel(name)
	if systemInstruction != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	}
	return m
}

func (s *geminiService) jsonModel(name string, schema *genai.Schema) *genai.GenerativeModel {
	m := s.client.GenerativeModel(name)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = schema
	return m
}

// translateError maps upstream quota failures onto ErrQuotaExceeded so
// handlers can answer with a dedicated status.
func translateError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %v", ErrGateway, err)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

func (s *geminiService) generate(ctx context.Context, m *genai.GenerativeModel, parts ...genai.Part) (string, error) {
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", translateError(err)
	}
	return responseText(resp)
}

func (s *geminiService) StepByStepSolution(ctx context.Context, grade int, subject, problem string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	scope := "giải bài tập"
	if subject != "" {
		scope = fmt.Sprintf("giải bài tập môn %s", subject)
	}
	system := fmt.Sprintf(
		"Bạn là một gia sư AI chuyên nghiệp, tận tâm cho học sinh lớp %d tại Việt Nam. "+
			"Nhiệm vụ của bạn là %s một cách chi tiết, rõ ràng, từng bước một. "+
			"Sử dụng ngôn ngữ đơn giản, dễ hiểu, phù hợp với trình độ học sinh lớp %d. "+
			"Trình bày bằng Markdown, dùng LaTeX cho công thức toán học (bọc trong dấu $).",
		grade, scope, grade)
	m := s.textModel(proModel, system)
	prompt := fmt.Sprintf("Hãy giải chi tiết bài tập sau:\n\n%s", problem)
	return s.generate(ctx, m, genai.Text(prompt))
}

func (s *geminiService) QuickAnswer(ctx context.Context, grade int, subject, problem string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	system := fmt.Sprintf(
		"Bạn là trợ lý học tập cho học sinh lớp %d tại Việt Nam, môn %s. "+
			"Trả lời ngắn gọn, đi thẳng vào đáp án và ý chính. Dùng Markdown và LaTeX khi cần.",
		grade, subject)
	m := s.textModel(flashModel, system)
	prompt := fmt.Sprintf("Cho đáp án ngắn gọn của bài sau:\n\n%s", problem)
	return s.generate(ctx, m, genai.Text(prompt))
}

func (s *geminiService) SolutionFromFile(ctx context.Context, data []byte, mimeType, note string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	source := "tệp tài liệu"
	if strings.HasPrefix(mimeType, "image/") {
		source = "hình ảnh"
	}
	prompt := fmt.Sprintf(
		"Bạn là gia sư AI cho học sinh lớp 9 tại Việt Nam. Hãy đọc đề bài trong %s đính kèm và giải chi tiết từng bước bằng tiếng Việt. "+
			"Trình bày bằng Markdown, dùng LaTeX cho công thức toán học (bọc trong dấu $).",
		source)
	if strings.TrimSpace(note) != "" {
		prompt += fmt.Sprintf("\n\nGhi chú của học sinh: %s", note)
	}
	m := s.textModel(proModel, "")
	return s.generate(ctx, m, genai.Blob{MIMEType: mimeType, Data: data}, genai.Text(prompt))
}

func (s *geminiService) AnalyzeDocument(ctx context.Context, data []byte) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	prompt := "Hãy phân tích nội dung tài liệu PDF này và tóm tắt những kiến thức chính bằng tiếng Việt, " +
		"trình bày bằng Markdown với các đề mục rõ ràng."
	m := s.textModel(flashModel, "")
	return s.generate(ctx, m, genai.Blob{MIMEType: "application/pdf", Data: data}, genai.Text(prompt))
}

func (s *geminiService) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	prompt := "Hãy mô tả và phân tích nội dung học tập trong hình ảnh này bằng tiếng Việt. " +
		"Nếu là bài tập, hãy giải chi tiết từng bước. Dùng Markdown và LaTeX khi cần."
	m := s.textModel(flashModel, "")
	return s.generate(ctx, m, genai.Blob{MIMEType: mimeType, Data: data}, genai.Text(prompt))
}

func (s *geminiService) FollowUpAnswer(ctx context.Context, problem, solution, question string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Học sinh vừa được giải bài tập sau:\n\nĐề bài: %s\n\nLời giải: %s\n\n"+
			"Bây giờ học sinh hỏi thêm: \"%s\"\n\n"+
			"Hãy trả lời câu hỏi này bằng tiếng Việt, ngắn gọn và dễ hiểu, bám sát lời giải ở trên. "+
			"Dùng Markdown và LaTeX khi cần.",
		problem, solution, question)
	m := s.textModel(flashModel, "")
	return s.generate(ctx, m, genai.Text(prompt))
}

func (s *geminiService) ExplainIncorrectAnswer(ctx context.Context, question, userAnswer, correctAnswer string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Một học sinh lớp 9 trả lời sai câu hỏi trắc nghiệm sau:\n\nCâu hỏi: %s\n"+
			"Học sinh chọn: %s\nĐáp án đúng: %s\n\n"+
			"Hãy giải thích ngắn gọn bằng tiếng Việt vì sao đáp án đúng là như vậy và học sinh đã nhầm ở đâu. "+
			"Dùng Markdown và LaTeX khi cần.",
		question, userAnswer, correctAnswer)
	m := s.textModel(flashModel, "")
	return s.generate(ctx, m, genai.Text(prompt))
}

func (s *geminiService) PracticeRecommendations(ctx context.Context, weakTopics []string) (string, error) {
	if len(weakTopics) == 0 {
		return encouragementMessage, nil
	}
	if s.client == nil {
		return "", ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Một học sinh lớp 9 đang yếu các chủ đề sau: %s.\n\n"+
			"Hãy đưa ra lời khuyên học tập ngắn gọn, động viên và gợi ý cách ôn luyện từng chủ đề bằng tiếng Việt. "+
			"Trình bày bằng Markdown.",
		strings.Join(weakTopics, ", "))
	m := s.textModel(flashModel, "")
	return s.generate(ctx, m, genai.Text(prompt))
}

func (s *geminiService) GenerateSummary(ctx context.Context, text string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Hãy tóm tắt văn bản sau bằng tiếng Việt, giữ lại các ý chính và trình bày bằng Markdown với gạch đầu dòng:\n\n%s",
		text)
	m := s.textModel(flashModel, "")
	return s.generate(ctx, m, genai.Text(prompt))
}

func (s *geminiService) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	prompt := "Hãy trích xuất toàn bộ văn bản trong tệp đính kèm. Chỉ trả về phần văn bản, giữ nguyên định dạng dòng, không thêm lời bình."
	m := s.textModel(flashModel, "")
	return s.generate(ctx, m, genai.Blob{MIMEType: mimeType, Data: data}, genai.Text(prompt))
}
