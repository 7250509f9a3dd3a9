package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/dto"
)

// ExtractTextHandler godoc
// @Summary Extract the text from an uploaded document or photo
// @Tags tools
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document or photo"
// @Success 200 {object} model.AIToolHistoryItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /tools/extract-text [post]
func (ctrl *Controller) ExtractTextHandler(c *gin.Context) {
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
	item, err := ctrl.toolsSvc.ExtractText(c.Request.Context(), attachment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// AnalyzeHandler godoc
// @Summary Analyze and summarize an uploaded document or photo
// @Tags tools
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document or photo"
// @Success 200 {object} model.AIToolHistoryItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /tools/analyze [post]
func (ctrl *Controller) AnalyzeHandler(c *gin.Context) {
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
	item, err := ctrl.toolsSvc.Analyze(c.Request.Context(), attachment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// FlashcardsHandler godoc
// @Summary Turn study text into flashcards
// @Tags tools
// @Accept json
// @Produce json
// @Param text body dto.TextToolRequest true "Study text"
// @Success 200 {object} dto.FlashcardsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /tools/flashcards [post]
func (ctrl *Controller) FlashcardsHandler(c *gin.Context) {
	var req dto.TextToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	cards, err := ctrl.toolsSvc.Flashcards(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FlashcardsResponse{Cards: cards})
}

// SummaryHandler godoc
// @Summary Summarize study text
// @Tags tools
// @Accept json
// @Produce json
// @Param text body dto.TextToolRequest true "Study text"
// @Success 200 {object} model.AIToolHistoryItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /tools/summary [post]
func (ctrl *Controller) SummaryHandler(c *gin.Context) {
	var req dto.TextToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	item, err := ctrl.toolsSvc.Summary(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ToolHistoryHandler godoc
// @Summary Get the recent AI tool results
// @Tags tools
// @Produce json
// @Success 200 {array} model.AIToolHistoryItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /tools/history [get]
func (ctrl *Controller) ToolHistoryHandler(c *gin.Context) {
	items, err := ctrl.toolsSvc.History()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
