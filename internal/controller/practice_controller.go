package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/dto"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/exam"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/session"
	"github.com/rs/zerolog/log"
)

func (ctrl *Controller) lookupSession(c *gin.Context) (*session.Session, string, bool) {
	id := c.Param("id")
	s, err := ctrl.practiceSvc.Sessions().Get(id)
	if err != nil {
		respondError(c, err)
		return nil, "", false
	}
	return s, id, true
}

func sessionState(c *gin.Context, id string, s *session.Session) {
	c.JSON(http.StatusOK, dto.SessionResponse{SessionID: id, State: s.Snapshot()})
}

// CreateSessionHandler godoc
// @Summary Start a new practice session
// @Tags practice
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /practice/sessions [post]
func (ctrl *Controller) CreateSessionHandler(c *gin.Context) {
	id, s := ctrl.practiceSvc.Sessions().Create()
	c.JSON(http.StatusCreated, dto.SessionResponse{SessionID: id, State: s.Snapshot()})
}

// GetSessionHandler godoc
// @Summary Get the current state of a practice session
// @Tags practice
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /practice/sessions/{id} [get]
func (ctrl *Controller) GetSessionHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	sessionState(c, id, s)
}

// DeleteSessionHandler godoc
// @Summary Discard a practice session
// @Tags practice
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Router /practice/sessions/{id} [delete]
func (ctrl *Controller) DeleteSessionHandler(c *gin.Context) {
	ctrl.practiceSvc.Sessions().Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ResetSessionHandler godoc
// @Summary Reset a session back to subject selection
// @Tags practice
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/reset [post]
func (ctrl *Controller) ResetSessionHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	s.Reset()
	sessionState(c, id, s)
}

// SelectSubjectHandler godoc
// @Summary Choose a subject
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param subject body dto.SelectSubjectRequest true "Subject"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/subject [post]
func (ctrl *Controller) SelectSubjectHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.SelectSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.SelectSubject(req.Subject); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// SelectPeriodHandler godoc
// @Summary Choose an exam period and list the bundled exams for it
// @Description An empty exam list is a normal outcome, not an error.
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param period body dto.SelectPeriodRequest true "Period"
// @Success 200 {object} dto.ExamListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/period [post]
func (ctrl *Controller) SelectPeriodHandler(c *gin.Context) {
	s, _, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.SelectPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	exams, err := s.SelectPeriod(req.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExamListResponse{Exams: exams, State: s.Snapshot()})
}

// SelectExamHandler godoc
// @Summary Load a bundled exam
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param exam body dto.SelectExamRequest true "Exam ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/exam [post]
func (ctrl *Controller) SelectExamHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.SelectExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.SelectExam(req.ExamID); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// StartUploadHandler godoc
// @Summary Enter the PDF or photo upload flow
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param mode body dto.StartUploadRequest true "Upload mode"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/upload-mode [post]
func (ctrl *Controller) StartUploadHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.StartUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.StartUpload(session.Mode(req.Mode)); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// AttachFileHandler godoc
// @Summary Upload the source document or photo
// @Description Files over 15MB are rejected before anything reaches the AI service.
// @Tags practice
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "Source document or photo"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/file [post]
func (ctrl *Controller) AttachFileHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file is required"})
		return
	}
	attachment, err := readAttachment(file)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read uploaded file")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded file"})
		return
	}
	if err := s.AttachFile(attachment.Data, attachment.MimeType); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// GenerateQuizHandler godoc
// @Summary Generate questions from the uploaded file
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param config body dto.GenerateQuizRequest true "Question type and count"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Another operation is in flight"
// @Failure 429 {object} dto.ErrorResponse "AI quota exceeded"
// @Failure 502 {object} dto.ErrorResponse "AI service failure"
// @Router /practice/sessions/{id}/generate [post]
func (ctrl *Controller) GenerateQuizHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.Generate(c.Request.Context(), exam.Type(req.QuestionType), req.NumQuestions); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// StartQuizHandler godoc
// @Summary Start the loaded quiz
// @Tags practice
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/start [post]
func (ctrl *Controller) StartQuizHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	if err := s.Start(); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// AnswerHandler godoc
// @Summary Answer the current question and advance
// @Description Answering the last question computes the results, including
// explanations for wrong answers and practice recommendations.
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body dto.AnswerRequest true "Chosen option"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/answer [post]
func (ctrl *Controller) AnswerHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.Answer(c.Request.Context(), req.Answer); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// RetryHandler godoc
// @Summary Retake the current question set
// @Tags practice
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/retry [post]
func (ctrl *Controller) RetryHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	if err := s.Retry(); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// ContinueOpenEndedHandler godoc
// @Summary Continue from mixed-set results into the open-ended questions
// @Tags practice
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/continue-open-ended [post]
func (ctrl *Controller) ContinueOpenEndedHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	if err := s.ContinueOpenEnded(); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// OpenEndedAnswerHandler godoc
// @Summary Submit a free-text answer for grading
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body dto.OpenEndedAnswerRequest true "Answer text"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/open-ended/answer [post]
func (ctrl *Controller) OpenEndedAnswerHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.OpenEndedAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.SubmitOpenEndedAnswer(c.Request.Context(), req.Answer); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// OpenEndedNextHandler godoc
// @Summary Move to the next open-ended question
// @Tags practice
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/open-ended/next [post]
func (ctrl *Controller) OpenEndedNextHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	if err := s.NextOpenEnded(); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// SelectExamQuestionHandler godoc
// @Summary Navigate to a question within a bundled open-ended exam
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param question body dto.ExamQuestionRequest true "Question index"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/exam-question [post]
func (ctrl *Controller) SelectExamQuestionHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.ExamQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.SelectExamQuestion(req.Index); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// ExamAnswerTextHandler godoc
// @Summary Type an answer for an exam question
// @Description Replaces any captured photo for the same question.
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body dto.ExamAnswerTextRequest true "Question index and text"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/exam-answer/text [post]
func (ctrl *Controller) ExamAnswerTextHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.ExamAnswerTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.SetExamAnswerText(req.Index, req.Text); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// ExamAnswerImageHandler godoc
// @Summary Photograph a handwritten answer for an exam question
// @Description Replaces any typed text for the same question.
// @Tags practice
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param index formData int true "Question index"
// @Param file formData file true "Photo of the handwritten answer"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/exam-answer/image [post]
func (ctrl *Controller) ExamAnswerImageHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.PostForm("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid question index"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file is required"})
		return
	}
	attachment, err := readAttachment(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded file"})
		return
	}
	if err := s.SetExamAnswerImage(index, attachment.Data, attachment.MimeType); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// GradeExamAnswerHandler godoc
// @Summary Grade one exam question from the supplied answer
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param question body dto.ExamQuestionRequest true "Question index"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "No answer supplied"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/exam-answer/grade [post]
func (ctrl *Controller) GradeExamAnswerHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.ExamQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.GradeExamAnswer(c.Request.Context(), req.Index); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// PlanStartHandler godoc
// @Summary Start practice straight from a weekly plan slot
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param slot body dto.PlanSlotRequest true "Plan slot"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /practice/sessions/{id}/plan-start [post]
func (ctrl *Controller) PlanStartHandler(c *gin.Context) {
	s, id, ok := ctrl.lookupSession(c)
	if !ok {
		return
	}
	var req dto.PlanSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	practiceReq, err := ctrl.planSvc.PracticeRequest(req.DayIndex, req.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.StartFromPlan(c.Request.Context(), practiceReq); err != nil {
		respondError(c, err)
		return
	}
	sessionState(c, id, s)
}

// TopicQuizHandler godoc
// @Summary Generate a standalone drill for one topic
// @Tags practice
// @Accept json
// @Produce json
// @Param drill body dto.TopicQuizRequest true "Subject, topic and count"
// @Success 200 {array} model.PracticeQuestion
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /practice/topic-quiz [post]
func (ctrl *Controller) TopicQuizHandler(c *gin.Context) {
	var req dto.TopicQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	questions, err := ctrl.practiceSvc.TopicQuestions(c.Request.Context(), req.Subject, req.Topic, req.NumQuestions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetAttemptsHandler godoc
// @Summary Get the practice history
// @Tags practice
// @Produce json
// @Success 200 {array} model.PracticeAttempt
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice/attempts [get]
func (ctrl *Controller) GetAttemptsHandler(c *gin.Context) {
	attempts, err := ctrl.practiceSvc.History()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetAttemptHandler godoc
// @Summary Get one stored attempt
// @Tags practice
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} model.PracticeAttempt
// @Failure 404 {object} dto.ErrorResponse
// @Router /practice/attempts/{id} [get]
func (ctrl *Controller) GetAttemptHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid attempt ID"})
		return
	}
	attempt, err := ctrl.practiceSvc.Attempt(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// RetryAttemptHandler godoc
// @Summary Open a fresh session preloaded with a stored attempt's questions
// @Tags practice
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 201 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /practice/attempts/{id}/retry [post]
func (ctrl *Controller) RetryAttemptHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid attempt ID"})
		return
	}
	sessionID, err := ctrl.practiceSvc.Retry(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	s, err := ctrl.practiceSvc.Sessions().Get(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SessionResponse{SessionID: sessionID, State: s.Snapshot()})
}
