package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/exam"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
)

var mcqItemSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question":      {Type: genai.TypeString, Description: "Nội dung câu hỏi"},
		"options":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Đúng 4 phương án"},
		"correctAnswer": {Type: genai.TypeString, Description: "Phải trùng khớp với một trong các phương án"},
		"topic":         {Type: genai.TypeString, Description: "Chủ đề của câu hỏi"},
	},
	Required: []string{"question", "options", "correctAnswer", "topic"},
}

var mcqListSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: mcqItemSchema,
}

var openEndedItemSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question":        {Type: genai.TypeString, Description: "Đề bài tự luận"},
		"suggestedAnswer": {Type: genai.TypeString, Description: "Đáp án gợi ý hoặc dàn ý chấm"},
		"topic":           {Type: genai.TypeString, Description: "Chủ đề của câu hỏi"},
	},
	Required: []string{"question", "suggestedAnswer", "topic"},
}

var feedbackSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":                 {Type: genai.TypeNumber, Description: "Điểm từ 0 đến 10"},
		"feedback":              {Type: genai.TypeString, Description: "Nhận xét tổng quan"},
		"strengths":             {Type: genai.TypeString, Description: "Điểm mạnh của bài làm"},
		"weaknesses":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Các điểm yếu cần khắc phục"},
		"suggestedImprovements": {Type: genai.TypeString, Description: "Gợi ý cải thiện"},
	},
	Required: []string{"score", "feedback", "strengths", "weaknesses", "suggestedImprovements"},
}

var flashcardListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString},
			"answer":   {Type: genai.TypeString},
		},
		Required: []string{"question", "answer"},
	},
}

var generatedQuizSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"subject": {
			Type:        genai.TypeString,
			Enum:        []string{exam.SubjectMath, exam.SubjectLiterature, exam.SubjectEnglish, exam.SubjectScience},
			Description: "Môn học của tài liệu",
		},
		"questions": mcqListSchema,
	},
	Required: []string{"subject", "questions"},
}

var generatedOpenEndedSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"subject": {
			Type:        genai.TypeString,
			Enum:        []string{exam.SubjectMath, exam.SubjectLiterature, exam.SubjectEnglish, exam.SubjectScience},
			Description: "Môn học của tài liệu",
		},
		"questions": {Type: genai.TypeArray, Items: openEndedItemSchema},
	},
	Required: []string{"subject", "questions"},
}

var mixedTestSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"mcq":       mcqListSchema,
		"openEnded": {Type: genai.TypeArray, Items: openEndedItemSchema},
	},
	Required: []string{"mcq", "openEnded"},
}

var planSessionSchema = &genai.Schema{
	Type:     genai.TypeObject,
	Nullable: true,
	Properties: map[string]*genai.Schema{
		"subject":  {Type: genai.TypeString},
		"topic":    {Type: genai.TypeString},
		"activity": {Type: genai.TypeString},
	},
	Required: []string{"subject", "topic", "activity"},
}

var weeklyPlanSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dayOfWeek": {Type: genai.TypeString, Description: "Thứ Hai đến Chủ Nhật"},
			"morning":   planSessionSchema,
			"evening":   planSessionSchema,
		},
		Required: []string{"dayOfWeek", "morning", "evening"},
	},
}

var planUpdateSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"updatedPlan":  weeklyPlanSchema,
		"responseText": {Type: genai.TypeString, Description: "Trả lời ngắn gọn cho học sinh về thay đổi vừa thực hiện"},
	},
	Required: []string{"updatedPlan", "responseText"},
}

// generateJSON runs a schema-constrained call and unmarshals the reply into out.
func (s *geminiService) generateJSON(ctx context.Context, modelName string, schema *genai.Schema, out any, parts ...genai.Part) error {
	m := s.jsonModel(modelName, schema)
	raw, err := s.generate(ctx, m, parts...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: malformed structured response: %v", ErrGateway, err)
	}
	return nil
}

// sanitizeMCQs drops items that break the quiz contract: anything without
// exactly four options, or whose correct answer is not one of them. Surviving
// items get the subject and grade stamped on.
func sanitizeMCQs(questions []model.PracticeQuestion, subject string) []model.PracticeQuestion {
	out := make([]model.PracticeQuestion, 0, len(questions))
	for _, q := range questions {
		if len(q.Options) != 4 {
			continue
		}
		valid := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				valid = true
				break
			}
		}
		if !valid {
			continue
		}
		q.Subject = subject
		q.Grade = 9
		out = append(out, q)
	}
	return out
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(10, score))
}

// canonicalDays orders the plan week from Monday to Sunday.
var canonicalDays = []string{"Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy", "Chủ Nhật"}

// normalizePlan forces exactly seven days in canonical order. Days the model
// skipped come back with both slots empty.
func normalizePlan(plan model.WeeklyPlan) model.WeeklyPlan {
	byDay := make(map[string]model.StudyDayItem, len(plan))
	for _, d := range plan {
		byDay[strings.TrimSpace(d.DayOfWeek)] = d
	}
	out := make(model.WeeklyPlan, 0, len(canonicalDays))
	for _, day := range canonicalDays {
		if d, ok := byDay[day]; ok {
			d.DayOfWeek = day
			out = append(out, d)
			continue
		}
		out = append(out, model.StudyDayItem{DayOfWeek: day})
	}
	return out
}

func (s *geminiService) GenerateFlashcards(ctx context.Context, text string) ([]model.Flashcard, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Từ văn bản sau, hãy tạo bộ thẻ ghi nhớ (flashcard) bằng tiếng Việt. "+
			"Mỗi thẻ gồm một câu hỏi ngắn và câu trả lời tương ứng, bám sát kiến thức trong văn bản:\n\n%s",
		text)
	var cards []model.Flashcard
	if err := s.generateJSON(ctx, flashModel, flashcardListSchema, &cards, genai.Text(prompt)); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *geminiService) PracticeQuestionsFromTopic(ctx context.Context, subject, topic string, numQuestions int) ([]model.PracticeQuestion, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Hãy tạo đúng %d câu hỏi trắc nghiệm môn %s, chủ đề \"%s\", cho học sinh lớp 9 tại Việt Nam. "+
			"Mỗi câu có đúng 4 phương án và trường correctAnswer phải trùng khớp nguyên văn với một phương án. "+
			"Câu hỏi bằng tiếng Việt, độ khó phù hợp chương trình lớp 9.",
		numQuestions, subject, topic)
	if subject == exam.SubjectEnglish {
		prompt = fmt.Sprintf(
			"Create exactly %d multiple-choice English questions on the topic \"%s\" for grade 9 students in Vietnam. "+
				"Each question must have exactly 4 options and correctAnswer must match one option verbatim. "+
				"Write the questions and options in English.",
			numQuestions, topic)
	}
	var questions []model.PracticeQuestion
	if err := s.generateJSON(ctx, flashModel, mcqListSchema, &questions, genai.Text(prompt)); err != nil {
		return nil, err
	}
	return sanitizeMCQs(questions, subject), nil
}

func (s *geminiService) PracticeQuestionsFromFile(ctx context.Context, data []byte, mimeType string, numQuestions int) (*model.GeneratedQuiz, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	source := "tệp PDF"
	if strings.HasPrefix(mimeType, "image/") {
		source = "hình ảnh"
	}
	prompt := fmt.Sprintf(
		"Dựa trên nội dung %s đính kèm, hãy xác định môn học và tạo đúng %d câu hỏi trắc nghiệm bằng tiếng Việt "+
			"(nếu là môn Tiếng Anh thì câu hỏi bằng tiếng Anh) cho học sinh lớp 9. "+
			"Mỗi câu có đúng 4 phương án và correctAnswer phải trùng khớp nguyên văn với một phương án.",
		source, numQuestions)
	var quiz model.GeneratedQuiz
	if err := s.generateJSON(ctx, proModel, generatedQuizSchema, &quiz, genai.Blob{MIMEType: mimeType, Data: data}, genai.Text(prompt)); err != nil {
		return nil, err
	}
	if !exam.ValidSubject(quiz.Subject) {
		quiz.Subject = exam.SubjectMath
	}
	quiz.Questions = sanitizeMCQs(quiz.Questions, quiz.Subject)
	return &quiz, nil
}

func (s *geminiService) OpenEndedQuestionsFromFile(ctx context.Context, data []byte, mimeType string) (*model.GeneratedOpenEnded, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	source := "tệp PDF"
	if strings.HasPrefix(mimeType, "image/") {
		source = "hình ảnh"
	}
	prompt := fmt.Sprintf(
		"Dựa trên nội dung %s đính kèm, hãy xác định môn học và trích xuất hoặc tạo các câu hỏi tự luận "+
			"cho học sinh lớp 9, kèm đáp án gợi ý chi tiết để chấm bài. Dùng tiếng Việt.",
		source)
	var set model.GeneratedOpenEnded
	if err := s.generateJSON(ctx, proModel, generatedOpenEndedSchema, &set, genai.Blob{MIMEType: mimeType, Data: data}, genai.Text(prompt)); err != nil {
		return nil, err
	}
	if !exam.ValidSubject(set.Subject) {
		set.Subject = exam.SubjectMath
	}
	return &set, nil
}

func (s *geminiService) GradeOpenEndedAnswer(ctx context.Context, question model.OpenEndedQuestion, answer string) (*model.OpenEndedFeedback, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Bạn là giáo viên chấm bài tự luận cho học sinh lớp 9.\n\n"+
			"Đề bài: %s\n\nĐáp án gợi ý: %s\n\nBài làm của học sinh:\n%s\n\n"+
			"Hãy chấm điểm từ 0 đến 10 và nhận xét bằng tiếng Việt: điểm mạnh, các điểm yếu và gợi ý cải thiện cụ thể.",
		question.Question, question.SuggestedAnswer, answer)
	var fb model.OpenEndedFeedback
	if err := s.generateJSON(ctx, proModel, feedbackSchema, &fb, genai.Text(prompt)); err != nil {
		return nil, err
	}
	fb.Score = clampScore(fb.Score)
	return &fb, nil
}

func (s *geminiService) GradeOpenEndedImageAnswer(ctx context.Context, question model.OpenEndedQuestion, image []byte, mimeType string) (*model.OpenEndedFeedback, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Bạn là giáo viên chấm bài tự luận cho học sinh lớp 9. Bài làm viết tay nằm trong hình ảnh đính kèm.\n\n"+
			"Đề bài: %s\n\nĐáp án gợi ý: %s\n\n"+
			"Hãy đọc bài làm trong ảnh, chấm điểm từ 0 đến 10 và nhận xét bằng tiếng Việt: "+
			"điểm mạnh, các điểm yếu và gợi ý cải thiện cụ thể.",
		question.Question, question.SuggestedAnswer)
	var fb model.OpenEndedFeedback
	if err := s.generateJSON(ctx, proModel, feedbackSchema, &fb, genai.Blob{MIMEType: mimeType, Data: image}, genai.Text(prompt)); err != nil {
		return nil, err
	}
	fb.Score = clampScore(fb.Score)
	return &fb, nil
}

func (s *geminiService) FollowUpExercises(ctx context.Context, subject, topic string, weaknesses []string) ([]model.PracticeQuestion, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	prompt := fmt.Sprintf(
		"Một học sinh lớp 9 vừa làm bài tự luận môn %s, chủ đề \"%s\", và có các điểm yếu sau: %s.\n\n"+
			"Hãy tạo đúng 2 câu hỏi trắc nghiệm nhắm thẳng vào các điểm yếu đó để học sinh luyện lại. "+
			"Mỗi câu có đúng 4 phương án và correctAnswer phải trùng khớp nguyên văn với một phương án. Dùng tiếng Việt.",
		subject, topic, strings.Join(weaknesses, "; "))
	var questions []model.PracticeQuestion
	if err := s.generateJSON(ctx, flashModel, mcqListSchema, &questions, genai.Text(prompt)); err != nil {
		return nil, err
	}
	return sanitizeMCQs(questions, subject), nil
}

func (s *geminiService) MixedPracticeTest(ctx context.Context, subject, topic string, numMcq, numOpenEnded int) (*model.MixedTest, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	var prompt string
	if subject == exam.SubjectEnglish {
		prompt = fmt.Sprintf(
			"Create a practice test in English for grade 9 students in Vietnam on the topic \"%s\". "+
				"It must contain exactly %d multiple-choice questions (each with exactly 4 options, "+
				"correctAnswer matching one option verbatim) and exactly %d open-ended questions with suggested answers.",
			topic, numMcq, numOpenEnded)
	} else {
		prompt = fmt.Sprintf(
			"Hãy tạo một bài luyện tập môn %s, chủ đề \"%s\", cho học sinh lớp 9 tại Việt Nam gồm đúng %d câu trắc nghiệm "+
				"(mỗi câu đúng 4 phương án, correctAnswer trùng khớp nguyên văn với một phương án) "+
				"và đúng %d câu tự luận kèm đáp án gợi ý. Dùng tiếng Việt.",
			subject, topic, numMcq, numOpenEnded)
	}
	var test model.MixedTest
	if err := s.generateJSON(ctx, flashModel, mixedTestSchema, &test, genai.Text(prompt)); err != nil {
		return nil, err
	}
	test.Mcq = sanitizeMCQs(test.Mcq, subject)
	return &test, nil
}

func (s *geminiService) GenerateWeeklyPlan(ctx context.Context, weakTopics []string) (model.WeeklyPlan, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	focus := "phân bổ đều cả bốn môn Toán, Ngữ Văn, Tiếng Anh và Khoa học tự nhiên"
	if len(weakTopics) > 0 {
		focus = fmt.Sprintf("ưu tiên các chủ đề học sinh đang yếu: %s", strings.Join(weakTopics, ", "))
	}
	prompt := fmt.Sprintf(
		"Hãy lập kế hoạch học tập một tuần (từ Thứ Hai đến Chủ Nhật) cho học sinh lớp 9 tại Việt Nam, %s. "+
			"Mỗi ngày có hai buổi (sáng và tối), mỗi buổi hoặc là null hoặc gồm môn học, chủ đề và hoạt động cụ thể. "+
			"Đừng xếp kín cả tuần, hãy chừa thời gian nghỉ hợp lý. Dùng tiếng Việt.",
		focus)
	var plan model.WeeklyPlan
	if err := s.generateJSON(ctx, flashModel, weeklyPlanSchema, &plan, genai.Text(prompt)); err != nil {
		return nil, err
	}
	return normalizePlan(plan), nil
}

func (s *geminiService) UpdateWeeklyPlan(ctx context.Context, plan model.WeeklyPlan, request string) (*model.PlanUpdate, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	current, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(
		"Đây là kế hoạch học tập tuần hiện tại của một học sinh lớp 9 (JSON):\n%s\n\n"+
			"Học sinh yêu cầu: \"%s\"\n\n"+
			"Hãy cập nhật kế hoạch theo yêu cầu, giữ nguyên những phần không liên quan, "+
			"và viết một câu trả lời ngắn gọn bằng tiếng Việt xác nhận thay đổi.",
		string(current), request)
	var update model.PlanUpdate
	if err := s.generateJSON(ctx, flashModel, planUpdateSchema, &update, genai.Text(prompt)); err != nil {
		return nil, err
	}
	update.UpdatedPlan = normalizePlan(update.UpdatedPlan)
	return &update, nil
}
