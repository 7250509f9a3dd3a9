// Package controller exposes the HTTP surface. Handlers translate domain
// errors onto statuses: 400 validation or invalid transition, 404 unknown IDs,
// 409 busy, 429 quota, 502 upstream AI failure, 500 otherwise.
package controller

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/dto"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/service"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Controller struct {
	practiceSvc service.PracticeService
	planSvc     service.PlanService
	tutorSvc    service.TutorService
	homeworkSvc service.HomeworkService
	toolsSvc    service.ToolsService
	appSvc      service.AppService
}

func NewController(
	practiceSvc service.PracticeService,
	planSvc service.PlanService,
	tutorSvc service.TutorService,
	homeworkSvc service.HomeworkService,
	toolsSvc service.ToolsService,
	appSvc service.AppService,
) *Controller {
	return &Controller{
		practiceSvc: practiceSvc,
		planSvc:     planSvc,
		tutorSvc:    tutorSvc,
		homeworkSvc: homeworkSvc,
		toolsSvc:    toolsSvc,
		appSvc:      appSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		practice := apiV1.Group("/practice")
		practice.POST("/sessions", ctrl.CreateSessionHandler)
		practice.GET("/sessions/:id", ctrl.GetSessionHandler)
		practice.DELETE("/sessions/:id", ctrl.DeleteSessionHandler)
		practice.POST("/sessions/:id/reset", ctrl.ResetSessionHandler)
		practice.POST("/sessions/:id/subject", ctrl.SelectSubjectHandler)
		practice.POST("/sessions/:id/period", ctrl.SelectPeriodHandler)
		practice.POST("/sessions/:id/exam", ctrl.SelectExamHandler)
		practice.POST("/sessions/:id/upload-mode", ctrl.StartUploadHandler)
		practice.POST("/sessions/:id/file", ctrl.AttachFileHandler)
		practice.POST("/sessions/:id/generate", ctrl.GenerateQuizHandler)
		practice.POST("/sessions/:id/start", ctrl.StartQuizHandler)
		practice.POST("/sessions/:id/answer", ctrl.AnswerHandler)
		practice.POST("/sessions/:id/retry", ctrl.RetryHandler)
		practice.POST("/sessions/:id/continue-open-ended", ctrl.ContinueOpenEndedHandler)
		practice.POST("/sessions/:id/open-ended/answer", ctrl.OpenEndedAnswerHandler)
		practice.POST("/sessions/:id/open-ended/next", ctrl.OpenEndedNextHandler)
		practice.POST("/sessions/:id/exam-question", ctrl.SelectExamQuestionHandler)
		practice.POST("/sessions/:id/exam-answer/text", ctrl.ExamAnswerTextHandler)
		practice.POST("/sessions/:id/exam-answer/image", ctrl.ExamAnswerImageHandler)
		practice.POST("/sessions/:id/exam-answer/grade", ctrl.GradeExamAnswerHandler)
		practice.POST("/sessions/:id/plan-start", ctrl.PlanStartHandler)
		practice.POST("/topic-quiz", ctrl.TopicQuizHandler)
		practice.GET("/attempts", ctrl.GetAttemptsHandler)
		practice.GET("/attempts/:id", ctrl.GetAttemptHandler)
		practice.POST("/attempts/:id/retry", ctrl.RetryAttemptHandler)

		plan := apiV1.Group("/plan")
		plan.GET("", ctrl.GetPlanHandler)
		plan.POST("/generate", ctrl.GeneratePlanHandler)
		plan.POST("/chat", ctrl.PlanChatHandler)
		plan.PUT("/session", ctrl.EditPlanSessionHandler)
		plan.POST("/practice-request", ctrl.PlanPracticeRequestHandler)

		tutor := apiV1.Group("/tutor")
		tutor.GET("/sessions", ctrl.ListTutorSessionsHandler)
		tutor.POST("/sessions", ctrl.CreateTutorSessionHandler)
		tutor.GET("/sessions/active", ctrl.ActiveTutorSessionHandler)
		tutor.GET("/sessions/:id", ctrl.GetTutorSessionHandler)
		tutor.POST("/sessions/:id/select", ctrl.SelectTutorSessionHandler)
		tutor.DELETE("/sessions/:id", ctrl.DeleteTutorSessionHandler)
		tutor.POST("/sessions/:id/messages", ctrl.SendTutorMessageHandler)

		homework := apiV1.Group("/homework")
		homework.POST("/solve", ctrl.SolveTextHandler)
		homework.POST("/solve-file", ctrl.SolveFileHandler)
		homework.POST("/follow-up", ctrl.FollowUpHandler)
		homework.GET("/history", ctrl.SolutionHistoryHandler)

		tools := apiV1.Group("/tools")
		tools.POST("/extract-text", ctrl.ExtractTextHandler)
		tools.POST("/analyze", ctrl.AnalyzeHandler)
		tools.POST("/flashcards", ctrl.FlashcardsHandler)
		tools.POST("/summary", ctrl.SummaryHandler)
		tools.GET("/history", ctrl.ToolHistoryHandler)

		app := apiV1.Group("/app")
		app.GET("/bootstrap", ctrl.BootstrapHandler)
		app.PUT("/view", ctrl.SetViewHandler)
	}
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: service.QuotaMessage})
	case errors.Is(err, session.ErrBusy):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, service.ErrNoPlan):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrInvalidTransition),
		errors.Is(err, session.ErrInvalidInput),
		errors.Is(err, session.ErrFileTooLarge),
		errors.Is(err, session.ErrEmptyAnswer),
		errors.Is(err, session.ErrEmptyGeneration),
		errors.Is(err, service.ErrAttachmentTooLarge),
		errors.Is(err, service.ErrEmptySlot),
		errors.Is(err, service.ErrInvalidSlot),
		errors.Is(err, service.ErrInvalidView):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnavailable),
		errors.Is(err, service.ErrGateway),
		errors.Is(err, service.ErrEmptyResponse):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// readAttachment pulls one multipart file into memory.
func readAttachment(file *multipart.FileHeader) (service.Attachment, error) {
	f, err := file.Open()
	if err != nil {
		return service.Attachment{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return service.Attachment{}, err
	}
	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return service.Attachment{Data: data, MimeType: mimeType, FileName: file.Filename}, nil
}
