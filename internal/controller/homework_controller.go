package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/dto"
)

// SolveTextHandler godoc
// @Summary Solve a typed homework problem
// @Description Quick mode returns a short answer, otherwise a full worked solution.
// @Tags homework
// @Accept json
// @Produce json
// @Param problem body dto.SolveTextRequest true "Problem statement"
// @Success 200 {object} model.SolutionHistoryItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /homework/solve [post]
func (ctrl *Controller) SolveTextHandler(c *gin.Context) {
	var req dto.SolveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	item, err := ctrl.homeworkSvc.SolveText(c.Request.Context(), req.Grade, req.Subject, req.Problem, req.Quick)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// SolveFileHandler godoc
// @Summary Solve homework from an uploaded document or photo
// @Tags homework
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Homework document or photo"
// @Param note formData string false "Extra instructions"
// @Success 200 {object} model.SolutionHistoryItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /homework/solve-file [post]
func (ctrl *Controller) SolveFileHandler(c *gin.Context) {
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
	item, err := ctrl.homeworkSvc.SolveFile(c.Request.Context(), attachment, c.PostForm("note"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// FollowUpHandler godoc
// @Summary Ask a follow-up question about a delivered solution
// @Tags homework
// @Accept json
// @Produce json
// @Param question body dto.FollowUpRequest true "Original problem, solution and question"
// @Success 200 {object} dto.FollowUpResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /homework/follow-up [post]
func (ctrl *Controller) FollowUpHandler(c *gin.Context) {
	var req dto.FollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	answer, err := ctrl.homeworkSvc.FollowUp(c.Request.Context(), req.Problem, req.Solution, req.Question)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FollowUpResponse{Answer: answer})
}

// SolutionHistoryHandler godoc
// @Summary Get the recent homework solutions
// @Tags homework
// @Produce json
// @Success 200 {array} model.SolutionHistoryItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /homework/history [get]
func (ctrl *Controller) SolutionHistoryHandler(c *gin.Context) {
	items, err := ctrl.homeworkSvc.History()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
