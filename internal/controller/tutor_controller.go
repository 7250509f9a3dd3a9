package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/dto"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/service"
)

// ListTutorSessionsHandler godoc
// @Summary List tutor chat sessions, most recently active first
// @Tags tutor
// @Produce json
// @Success 200 {array} model.TutorSession
// @Failure 500 {object} dto.ErrorResponse
// @Router /tutor/sessions [get]
func (ctrl *Controller) ListTutorSessionsHandler(c *gin.Context) {
	sessions, err := ctrl.tutorSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// CreateTutorSessionHandler godoc
// @Summary Open a new tutor chat
// @Tags tutor
// @Produce json
// @Success 201 {object} model.TutorSession
// @Failure 500 {object} dto.ErrorResponse
// @Router /tutor/sessions [post]
func (ctrl *Controller) CreateTutorSessionHandler(c *gin.Context) {
	ts, err := ctrl.tutorSvc.Create()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ts)
}

// ActiveTutorSessionHandler godoc
// @Summary Get the active tutor chat, creating one when none exists
// @Tags tutor
// @Produce json
// @Success 200 {object} model.TutorSession
// @Failure 500 {object} dto.ErrorResponse
// @Router /tutor/sessions/active [get]
func (ctrl *Controller) ActiveTutorSessionHandler(c *gin.Context) {
	ts, err := ctrl.tutorSvc.Active()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

// GetTutorSessionHandler godoc
// @Summary Get one tutor chat with its messages
// @Tags tutor
// @Produce json
// @Param id path string true "Tutor session ID"
// @Success 200 {object} model.TutorSession
// @Failure 404 {object} dto.ErrorResponse
// @Router /tutor/sessions/{id} [get]
func (ctrl *Controller) GetTutorSessionHandler(c *gin.Context) {
	ts, err := ctrl.tutorSvc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

// SelectTutorSessionHandler godoc
// @Summary Make a tutor chat the active one
// @Tags tutor
// @Param id path string true "Tutor session ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /tutor/sessions/{id}/select [post]
func (ctrl *Controller) SelectTutorSessionHandler(c *gin.Context) {
	if err := ctrl.tutorSvc.Select(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTutorSessionHandler godoc
// @Summary Delete a tutor chat
// @Description Returns the session that became active afterwards, which is a
// fresh one when the deleted chat was the last.
// @Tags tutor
// @Produce json
// @Param id path string true "Tutor session ID"
// @Success 200 {object} model.TutorSession
// @Failure 404 {object} dto.ErrorResponse
// @Router /tutor/sessions/{id} [delete]
func (ctrl *Controller) DeleteTutorSessionHandler(c *gin.Context) {
	ts, err := ctrl.tutorSvc.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

// SendTutorMessageHandler godoc
// @Summary Send a message, optionally with a photo or document attached
// @Tags tutor
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Tutor session ID"
// @Param text formData string false "Message text"
// @Param file formData file false "Attached photo or document"
// @Success 200 {object} model.TutorSession
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /tutor/sessions/{id}/messages [post]
func (ctrl *Controller) SendTutorMessageHandler(c *gin.Context) {
	text := c.PostForm("text")
	var attachment *service.Attachment
	if file, err := c.FormFile("file"); err == nil {
		read, err := readAttachment(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded file"})
			return
		}
		attachment = &read
	}
	if text == "" && attachment == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "message text or file is required"})
		return
	}
	ts, err := ctrl.tutorSvc.Send(c.Request.Context(), c.Param("id"), text, attachment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}
